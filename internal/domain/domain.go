package domain

import (
	"github.com/yungbote/carryhelper-backend/internal/domain/rules"
	"github.com/yungbote/carryhelper-backend/internal/domain/schedule"
)

type User = schedule.User
type UserShoe = schedule.UserShoe
type Event = schedule.Event
type ReminderLog = schedule.ReminderLog
type CalendarSource = schedule.CalendarSource

type ActivityItemRule = rules.ActivityItemRule
type ShoeCommonItem = rules.ShoeCommonItem
type EncounterRule = rules.EncounterRule

// Models lists every persisted type in migration order.
func Models() []any {
	return []any{
		&User{},
		&UserShoe{},
		&CalendarSource{},
		&Event{},
		&ReminderLog{},
		&ActivityItemRule{},
		&ShoeCommonItem{},
		&EncounterRule{},
	}
}
