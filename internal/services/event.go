package services

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/yungbote/carryhelper-backend/internal/data/repos"
	types "github.com/yungbote/carryhelper-backend/internal/domain"
	"github.com/yungbote/carryhelper-backend/internal/platform/logger"
)

type EventInput struct {
	UserID    uint
	Title     string
	ActType   *string
	Location  *string
	StartTime *time.Time
	EndTime   *time.Time
}

type EventService interface {
	Create(ctx context.Context, in EventInput) (*types.Event, error)
	List(ctx context.Context, offset, limit int) ([]*types.Event, error)
	Get(ctx context.Context, eventID uint) (*types.Event, error)
	ListByUser(ctx context.Context, userID uint) ([]*types.Event, error)
}

type eventService struct {
	db        *gorm.DB
	log       *logger.Logger
	userRepo  repos.UserRepo
	eventRepo repos.EventRepo
}

func NewEventService(db *gorm.DB, baseLog *logger.Logger, userRepo repos.UserRepo, eventRepo repos.EventRepo) EventService {
	return &eventService{
		db:        db,
		log:       baseLog.With("service", "EventService"),
		userRepo:  userRepo,
		eventRepo: eventRepo,
	}
}

func (s *eventService) Create(ctx context.Context, in EventInput) (*types.Event, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, badRequest("invalid_title", "title is required")
	}
	if in.StartTime != nil && in.EndTime != nil && in.EndTime.Before(*in.StartTime) {
		return nil, badRequest("invalid_time_range", "end_time must not be before start_time")
	}
	if err := requireUser(ctx, s.userRepo, nil, in.UserID); err != nil {
		return nil, err
	}

	ev := &types.Event{
		UserID:    in.UserID,
		Title:     title,
		ActType:   normalizeTag(in.ActType),
		Location:  trimmedOrNil(in.Location),
		StartTime: utcPtr(in.StartTime),
		EndTime:   utcPtr(in.EndTime),
	}
	created, err := s.eventRepo.Create(ctx, nil, []*types.Event{ev})
	if err != nil {
		s.log.Warn("create event failed", "error", err, "user_id", in.UserID)
		return nil, mapWriteError(err, "event_exists")
	}
	return created[0], nil
}

func (s *eventService) List(ctx context.Context, offset, limit int) ([]*types.Event, error) {
	return s.eventRepo.List(ctx, nil, offset, limit)
}

func (s *eventService) Get(ctx context.Context, eventID uint) (*types.Event, error) {
	found, err := s.eventRepo.GetByIDs(ctx, nil, []uint{eventID})
	if err != nil {
		return nil, err
	}
	if len(found) == 0 || found[0] == nil {
		return nil, notFound("event_not_found", "event %d not found", eventID)
	}
	return found[0], nil
}

func (s *eventService) ListByUser(ctx context.Context, userID uint) ([]*types.Event, error) {
	if err := requireUser(ctx, s.userRepo, nil, userID); err != nil {
		return nil, err
	}
	return s.eventRepo.ListByUser(ctx, nil, userID)
}

// normalizeTag lowercases and trims an activity tag; blank becomes nil.
func normalizeTag(v *string) *string {
	if v == nil {
		return nil
	}
	t := strings.ToLower(strings.TrimSpace(*v))
	if t == "" {
		return nil
	}
	return &t
}

func trimmedOrNil(v *string) *string {
	if v == nil {
		return nil
	}
	t := strings.TrimSpace(*v)
	if t == "" {
		return nil
	}
	return &t
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
