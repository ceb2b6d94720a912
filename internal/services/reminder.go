package services

import (
	"context"
	"encoding/json"
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/yungbote/carryhelper-backend/internal/data/repos"
	types "github.com/yungbote/carryhelper-backend/internal/domain"
	"github.com/yungbote/carryhelper-backend/internal/platform/logger"
)

type ReminderInput struct {
	UserID       uint
	EventID      uint
	ReminderText string
	TriggeredBy  *string
	Items        []string
}

type ReminderService interface {
	Create(ctx context.Context, in ReminderInput) (*types.ReminderLog, error)
	ListByUser(ctx context.Context, userID uint) ([]*types.ReminderLog, error)
}

type reminderService struct {
	db          *gorm.DB
	log         *logger.Logger
	userRepo    repos.UserRepo
	eventRepo   repos.EventRepo
	reminderRep repos.ReminderLogRepo
}

func NewReminderService(
	db *gorm.DB,
	baseLog *logger.Logger,
	userRepo repos.UserRepo,
	eventRepo repos.EventRepo,
	reminderRepo repos.ReminderLogRepo,
) ReminderService {
	return &reminderService{
		db:          db,
		log:         baseLog.With("service", "ReminderService"),
		userRepo:    userRepo,
		eventRepo:   eventRepo,
		reminderRep: reminderRepo,
	}
}

func (s *reminderService) Create(ctx context.Context, in ReminderInput) (*types.ReminderLog, error) {
	text := strings.TrimSpace(in.ReminderText)
	if text == "" {
		return nil, badRequest("invalid_reminder_text", "reminder_text is required")
	}
	if err := requireUser(ctx, s.userRepo, nil, in.UserID); err != nil {
		return nil, err
	}
	events, err := s.eventRepo.GetByIDs(ctx, nil, []uint{in.EventID})
	if err != nil {
		return nil, err
	}
	if len(events) == 0 || events[0].UserID != in.UserID {
		return nil, notFound("event_not_found", "event %d not found for user %d", in.EventID, in.UserID)
	}

	rl := &types.ReminderLog{
		UserID:       in.UserID,
		EventID:      in.EventID,
		ReminderText: text,
		TriggeredBy:  trimmedOrNil(in.TriggeredBy),
	}
	if len(in.Items) > 0 {
		raw, err := json.Marshal(in.Items)
		if err != nil {
			return nil, err
		}
		rl.Items = datatypes.JSON(raw)
	}
	created, err := s.reminderRep.Create(ctx, nil, []*types.ReminderLog{rl})
	if err != nil {
		return nil, mapWriteError(err, "reminder_exists")
	}
	return created[0], nil
}

func (s *reminderService) ListByUser(ctx context.Context, userID uint) ([]*types.ReminderLog, error) {
	if err := requireUser(ctx, s.userRepo, nil, userID); err != nil {
		return nil, err
	}
	return s.reminderRep.ListByUser(ctx, nil, userID)
}
