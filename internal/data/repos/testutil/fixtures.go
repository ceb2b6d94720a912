package testutil

import (
	"context"
	"testing"
	"time"

	"gorm.io/gorm"

	types "github.com/yungbote/carryhelper-backend/internal/domain"
)

func Ptr[T any](v T) *T { return &v }

func SeedUser(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *types.User {
	tb.Helper()
	u := &types.User{Name: name}
	if err := tx.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedShoe(tb testing.TB, ctx context.Context, tx *gorm.DB, userID uint, shoeType string) *types.UserShoe {
	tb.Helper()
	s := &types.UserShoe{UserID: userID, ShoeType: shoeType}
	if err := tx.WithContext(ctx).Create(s).Error; err != nil {
		tb.Fatalf("seed shoe: %v", err)
	}
	return s
}

// SeedEvent creates an event for userID. An empty actType or location is
// stored as NULL.
func SeedEvent(tb testing.TB, ctx context.Context, tx *gorm.DB, userID uint, actType, location string, start, end time.Time) *types.Event {
	tb.Helper()
	ev := &types.Event{
		UserID:    userID,
		Title:     "event",
		StartTime: Ptr(start.UTC()),
		EndTime:   Ptr(end.UTC()),
	}
	if actType != "" {
		ev.ActType = Ptr(actType)
	}
	if location != "" {
		ev.Location = Ptr(location)
	}
	if err := tx.WithContext(ctx).Create(ev).Error; err != nil {
		tb.Fatalf("seed event: %v", err)
	}
	return ev
}

// SeedRule creates an activity rule. An empty shoeType means generic.
func SeedRule(tb testing.TB, ctx context.Context, tx *gorm.DB, actType, item string, priority int, shoeType string, isDefault bool) *types.ActivityItemRule {
	tb.Helper()
	r := &types.ActivityItemRule{
		ActType:      actType,
		ItemName:     item,
		BasePriority: Ptr(priority),
		IsDefault:    isDefault,
	}
	if shoeType != "" {
		r.ShoeType = Ptr(shoeType)
	}
	if err := tx.WithContext(ctx).Create(r).Error; err != nil {
		tb.Fatalf("seed rule: %v", err)
	}
	return r
}

func SeedShoeTypeItems(tb testing.TB, ctx context.Context, tx *gorm.DB, shoeType string, items ...string) {
	tb.Helper()
	for i, name := range items {
		row := &types.ShoeCommonItem{ShoeType: Ptr(shoeType), ItemName: name, Position: i}
		if err := tx.WithContext(ctx).Create(row).Error; err != nil {
			tb.Fatalf("seed shoe item: %v", err)
		}
	}
}

func SeedEncounterRule(tb testing.TB, ctx context.Context, tx *gorm.DB, ownerID, counterpartID uint, item string) *types.EncounterRule {
	tb.Helper()
	r := &types.EncounterRule{OwnerUserID: ownerID, CounterpartUserID: counterpartID, ItemName: item}
	if err := tx.WithContext(ctx).Create(r).Error; err != nil {
		tb.Fatalf("seed encounter rule: %v", err)
	}
	return r
}
