package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/yungbote/carryhelper-backend/internal/data/repos"
	types "github.com/yungbote/carryhelper-backend/internal/domain"
	"github.com/yungbote/carryhelper-backend/internal/recommend"
)

type ruleStore struct {
	db        *gorm.DB
	rules     repos.ActivityItemRuleRepo
	shoeItems repos.ShoeCommonItemRepo
}

// NewRuleStore serves the engine's rule reads from the rule repos.
func NewRuleStore(db *gorm.DB, rules repos.ActivityItemRuleRepo, shoeItems repos.ShoeCommonItemRepo) recommend.RuleStore {
	return &ruleStore{db: db, rules: rules, shoeItems: shoeItems}
}

func (s *ruleStore) Rules(ctx context.Context, activity string) ([]*types.ActivityItemRule, error) {
	return s.rules.ListByActivity(ctx, s.db, activity)
}

func (s *ruleStore) RulesForShoe(ctx context.Context, activity, shoe string) ([]*types.ActivityItemRule, error) {
	return s.rules.ListByActivityAndShoe(ctx, s.db, activity, shoe)
}

// ShoeCommonItems prefers rows keyed by the concrete shoe and falls back to
// rows keyed by its type.
func (s *ruleStore) ShoeCommonItems(ctx context.Context, shoe recommend.ShoeRef) ([]string, error) {
	var rows []*types.ShoeCommonItem
	if shoe.ID != nil {
		byID, err := s.shoeItems.ListByShoeID(ctx, s.db, *shoe.ID)
		if err != nil {
			return nil, err
		}
		rows = byID
	}
	if len(rows) == 0 && shoe.Type != "" {
		byType, err := s.shoeItems.ListByShoeType(ctx, s.db, shoe.Type)
		if err != nil {
			return nil, err
		}
		rows = byType
	}
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.ItemName)
	}
	return out, nil
}

type scheduleStore struct {
	db         *gorm.DB
	users      repos.UserRepo
	shoes      repos.UserShoeRepo
	events     repos.EventRepo
	encounters repos.EncounterRuleRepo
}

func NewScheduleStore(
	db *gorm.DB,
	users repos.UserRepo,
	shoes repos.UserShoeRepo,
	events repos.EventRepo,
	encounters repos.EncounterRuleRepo,
) recommend.ScheduleStore {
	return &scheduleStore{db: db, users: users, shoes: shoes, events: events, encounters: encounters}
}

func (s *scheduleStore) UserExists(ctx context.Context, userID uint) (bool, error) {
	return s.users.Exists(ctx, s.db, userID)
}

func (s *scheduleStore) UpcomingEvents(ctx context.Context, userID uint, notBefore time.Time, limit int) ([]*types.Event, error) {
	return s.events.Upcoming(ctx, s.db, userID, notBefore, limit)
}

func (s *scheduleStore) EncounterRules(ctx context.Context, userID uint) ([]*types.EncounterRule, error) {
	return s.encounters.ListByOwner(ctx, s.db, userID)
}

func (s *scheduleStore) EventsByOwners(ctx context.Context, userIDs []uint, notBefore time.Time) ([]*types.Event, error) {
	return s.events.ListByUsersFrom(ctx, s.db, userIDs, notBefore)
}

func (s *scheduleStore) ShoeForUser(ctx context.Context, userID, shoeID uint) (*types.UserShoe, error) {
	return s.shoes.GetForUser(ctx, s.db, userID, shoeID)
}
