package db

import (
	"fmt"

	"gorm.io/gorm"

	types "github.com/yungbote/carryhelper-backend/internal/domain"
)

// Service is what the app needs from either backing database.
type Service interface {
	DB() *gorm.DB
	AutoMigrateAll() error
}

func AutoMigrateAll(db *gorm.DB) error {
	if err := db.AutoMigrate(types.Models()...); err != nil {
		return err
	}
	return EnsureScheduleIndexes(db)
}

// EnsureScheduleIndexes creates the composite indexes the recommendation read
// path depends on. The statements are valid on both postgres and sqlite.
func EnsureScheduleIndexes(db *gorm.DB) error {
	stmts := []struct {
		name string
		sql  string
	}{
		{
			// Upcoming events per user, ascending start.
			"idx_events_user_start",
			`CREATE INDEX IF NOT EXISTS idx_events_user_start ON events (user_id, start_time)`,
		},
		{
			"idx_rules_act_shoe_id",
			`CREATE INDEX IF NOT EXISTS idx_rules_act_shoe_id ON activity_item_rules (act_type, shoe_type, id)`,
		},
		{
			"idx_encounter_owner_counterpart",
			`CREATE INDEX IF NOT EXISTS idx_encounter_owner_counterpart ON encounter_rules (owner_user_id, counterpart_user_id)`,
		},
	}
	for _, s := range stmts {
		if err := db.Exec(s.sql).Error; err != nil {
			return fmt.Errorf("create %s: %w", s.name, err)
		}
	}
	return nil
}
