package repos

import (
	"github.com/yungbote/carryhelper-backend/internal/data/repos/rules"
	"github.com/yungbote/carryhelper-backend/internal/data/repos/schedule"
)

type UserRepo = schedule.UserRepo
type UserShoeRepo = schedule.UserShoeRepo
type EventRepo = schedule.EventRepo
type ReminderLogRepo = schedule.ReminderLogRepo
type CalendarSourceRepo = schedule.CalendarSourceRepo

type ActivityItemRuleRepo = rules.ActivityItemRuleRepo
type ShoeCommonItemRepo = rules.ShoeCommonItemRepo
type EncounterRuleRepo = rules.EncounterRuleRepo

var (
	NewUserRepo           = schedule.NewUserRepo
	NewUserShoeRepo       = schedule.NewUserShoeRepo
	NewEventRepo          = schedule.NewEventRepo
	NewReminderLogRepo    = schedule.NewReminderLogRepo
	NewCalendarSourceRepo = schedule.NewCalendarSourceRepo

	NewActivityItemRuleRepo = rules.NewActivityItemRuleRepo
	NewShoeCommonItemRepo   = rules.NewShoeCommonItemRepo
	NewEncounterRuleRepo    = rules.NewEncounterRuleRepo
)
