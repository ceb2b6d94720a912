package recommend

import types "github.com/yungbote/carryhelper-backend/internal/domain"

// EncounterItems returns, in rule order, the item of every rule whose
// counterpart has an event that overlaps one of the owner's events in time at
// the same non-empty place. Each item is returned once.
func EncounterItems(ownerID uint, events []*types.Event, rules []*types.EncounterRule) []string {
	if len(rules) == 0 || len(events) == 0 {
		return nil
	}
	byOwner := map[uint][]*types.Event{}
	for _, ev := range events {
		if ev != nil {
			byOwner[ev.UserID] = append(byOwner[ev.UserID], ev)
		}
	}
	mine := byOwner[ownerID]
	if len(mine) == 0 {
		return nil
	}

	seen := map[string]struct{}{}
	var out []string
	for _, r := range rules {
		if r == nil || r.CounterpartUserID == ownerID {
			continue
		}
		if _, ok := seen[r.ItemName]; ok {
			continue
		}
		if meets(mine, byOwner[r.CounterpartUserID]) {
			seen[r.ItemName] = struct{}{}
			out = append(out, r.ItemName)
		}
	}
	return out
}

func meets(mine, theirs []*types.Event) bool {
	for _, a := range mine {
		place := a.Place()
		if place == "" {
			continue
		}
		for _, b := range theirs {
			if b.Place() == place && a.Overlaps(b) {
				return true
			}
		}
	}
	return false
}

// counterparts lists the distinct counterpart ids of rules, excluding owner.
func counterparts(ownerID uint, rules []*types.EncounterRule) []uint {
	seen := map[uint]struct{}{}
	var out []uint
	for _, r := range rules {
		if r == nil || r.CounterpartUserID == ownerID {
			continue
		}
		if _, ok := seen[r.CounterpartUserID]; ok {
			continue
		}
		seen[r.CounterpartUserID] = struct{}{}
		out = append(out, r.CounterpartUserID)
	}
	return out
}
