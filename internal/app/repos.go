package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/carryhelper-backend/internal/data/repos"
	"github.com/yungbote/carryhelper-backend/internal/platform/logger"
)

type Repos struct {
	User           repos.UserRepo
	UserShoe       repos.UserShoeRepo
	Event          repos.EventRepo
	ReminderLog    repos.ReminderLogRepo
	CalendarSource repos.CalendarSourceRepo

	ActivityItemRule repos.ActivityItemRuleRepo
	ShoeCommonItem   repos.ShoeCommonItemRepo
	EncounterRule    repos.EncounterRuleRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User:           repos.NewUserRepo(db, log),
		UserShoe:       repos.NewUserShoeRepo(db, log),
		Event:          repos.NewEventRepo(db, log),
		ReminderLog:    repos.NewReminderLogRepo(db, log),
		CalendarSource: repos.NewCalendarSourceRepo(db, log),

		ActivityItemRule: repos.NewActivityItemRuleRepo(db, log),
		ShoeCommonItem:   repos.NewShoeCommonItemRepo(db, log),
		EncounterRule:    repos.NewEncounterRuleRepo(db, log),
	}
}
