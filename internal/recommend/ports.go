package recommend

import (
	"context"
	"time"

	types "github.com/yungbote/carryhelper-backend/internal/domain"
)

// ShoeRef identifies the worn shoe. ID is set when the caller resolved a
// concrete registered shoe; Type is always set.
type ShoeRef struct {
	ID   *uint
	Type string
}

// RuleStore is the read side of the rule tables. Implementations must return
// rules in ascending id order.
type RuleStore interface {
	// Rules returns every rule for the activity.
	Rules(ctx context.Context, activity string) ([]*types.ActivityItemRule, error)
	// RulesForShoe returns the rules for the activity that are generic or bound
	// to shoe.
	RulesForShoe(ctx context.Context, activity, shoe string) ([]*types.ActivityItemRule, error)
	// ShoeCommonItems returns the ordered item names suggested for the shoe.
	ShoeCommonItems(ctx context.Context, shoe ShoeRef) ([]string, error)
}

// ScheduleStore is the read side of users, shoes and events. Events are
// returned in ascending start time.
type ScheduleStore interface {
	UserExists(ctx context.Context, userID uint) (bool, error)
	UpcomingEvents(ctx context.Context, userID uint, notBefore time.Time, limit int) ([]*types.Event, error)
	EncounterRules(ctx context.Context, userID uint) ([]*types.EncounterRule, error)
	EventsByOwners(ctx context.Context, userIDs []uint, notBefore time.Time) ([]*types.Event, error)
	// ShoeForUser returns nil, nil when the shoe does not exist or belongs to
	// someone else.
	ShoeForUser(ctx context.Context, userID, shoeID uint) (*types.UserShoe, error)
}
