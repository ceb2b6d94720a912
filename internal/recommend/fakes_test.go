package recommend

import (
	"context"
	"sort"
	"time"

	types "github.com/yungbote/carryhelper-backend/internal/domain"
)

type fakeRules struct {
	rules     []*types.ActivityItemRule
	byType    map[string][]string
	byShoeID  map[uint][]string
	err       error
	ruleCalls int
}

func (f *fakeRules) Rules(_ context.Context, activity string) ([]*types.ActivityItemRule, error) {
	f.ruleCalls++
	if f.err != nil {
		return nil, f.err
	}
	var out []*types.ActivityItemRule
	for _, r := range f.rules {
		if r.ActType == activity {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRules) RulesForShoe(ctx context.Context, activity, shoe string) ([]*types.ActivityItemRule, error) {
	all, err := f.Rules(ctx, activity)
	if err != nil {
		return nil, err
	}
	var out []*types.ActivityItemRule
	for _, r := range all {
		if r.AppliesTo(shoe) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRules) ShoeCommonItems(_ context.Context, shoe ShoeRef) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	if shoe.ID != nil {
		if items := f.byShoeID[*shoe.ID]; len(items) > 0 {
			return items, nil
		}
	}
	return f.byType[shoe.Type], nil
}

type fakeSchedule struct {
	users      map[uint]bool
	shoes      map[uint]*types.UserShoe
	events     []*types.Event
	encounters []*types.EncounterRule
	err        error
}

func (f *fakeSchedule) UserExists(_ context.Context, userID uint) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.users[userID], nil
}

func (f *fakeSchedule) UpcomingEvents(_ context.Context, userID uint, notBefore time.Time, limit int) ([]*types.Event, error) {
	out := f.from([]uint{userID}, notBefore)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeSchedule) EncounterRules(_ context.Context, userID uint) ([]*types.EncounterRule, error) {
	var out []*types.EncounterRule
	for _, r := range f.encounters {
		if r.OwnerUserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeSchedule) EventsByOwners(_ context.Context, userIDs []uint, notBefore time.Time) ([]*types.Event, error) {
	return f.from(userIDs, notBefore), nil
}

func (f *fakeSchedule) ShoeForUser(_ context.Context, userID, shoeID uint) (*types.UserShoe, error) {
	s := f.shoes[shoeID]
	if s == nil || s.UserID != userID {
		return nil, nil
	}
	return s, nil
}

func (f *fakeSchedule) from(userIDs []uint, notBefore time.Time) []*types.Event {
	owners := map[uint]bool{}
	for _, id := range userIDs {
		owners[id] = true
	}
	var out []*types.Event
	for _, ev := range f.events {
		if !owners[ev.UserID] || ev.StartTime == nil || ev.StartTime.Before(notBefore) {
			continue
		}
		out = append(out, ev)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].StartTime.Before(*out[j].StartTime) })
	return out
}

func rule(id uint, act, item string, priority int, shoe string, isDefault bool) *types.ActivityItemRule {
	r := &types.ActivityItemRule{ID: id, ActType: act, ItemName: item, BasePriority: &priority, IsDefault: isDefault}
	if shoe != "" {
		r.ShoeType = &shoe
	}
	return r
}

func event(id, userID uint, act, place string, start, end time.Time) *types.Event {
	ev := &types.Event{ID: id, UserID: userID, Title: act, StartTime: &start, EndTime: &end}
	if act != "" {
		ev.ActType = &act
	}
	if place != "" {
		ev.Location = &place
	}
	return ev
}
