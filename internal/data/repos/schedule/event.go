package schedule

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/yungbote/carryhelper-backend/internal/domain"
	"github.com/yungbote/carryhelper-backend/internal/platform/logger"
)

type EventRepo interface {
	Create(ctx context.Context, tx *gorm.DB, events []*types.Event) ([]*types.Event, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, ids []uint) ([]*types.Event, error)
	List(ctx context.Context, tx *gorm.DB, offset, limit int) ([]*types.Event, error)
	ListByUser(ctx context.Context, tx *gorm.DB, userID uint) ([]*types.Event, error)
	// Upcoming returns the user's events starting at or after notBefore,
	// ascending by start time then id.
	Upcoming(ctx context.Context, tx *gorm.DB, userID uint, notBefore time.Time, limit int) ([]*types.Event, error)
	ListByUsersFrom(ctx context.Context, tx *gorm.DB, userIDs []uint, notBefore time.Time) ([]*types.Event, error)
	// UpsertExternal inserts imported events, refreshing rows that already
	// exist for the same (user_id, external_uid, start_time).
	UpsertExternal(ctx context.Context, tx *gorm.DB, events []*types.Event) (int64, error)
}

type eventRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewEventRepo(db *gorm.DB, baseLog *logger.Logger) EventRepo {
	repoLog := baseLog.With("repo", "EventRepo")
	return &eventRepo{db: db, log: repoLog}
}

func (r *eventRepo) Create(ctx context.Context, tx *gorm.DB, events []*types.Event) ([]*types.Event, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(events) == 0 {
		return []*types.Event{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uint) ([]*types.Event, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Event
	if len(ids) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("id IN ?", ids).
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *eventRepo) List(ctx context.Context, tx *gorm.DB, offset, limit int) ([]*types.Event, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Event
	if err := transaction.WithContext(ctx).
		Order("start_time IS NULL").
		Order("start_time ASC").
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *eventRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uint) ([]*types.Event, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Event
	if userID == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_time IS NULL").
		Order("start_time ASC").
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *eventRepo) Upcoming(ctx context.Context, tx *gorm.DB, userID uint, notBefore time.Time, limit int) ([]*types.Event, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Event
	if userID == 0 || limit <= 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("user_id = ? AND start_time >= ?", userID, notBefore.UTC()).
		Order("start_time ASC").
		Order("id ASC").
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *eventRepo) ListByUsersFrom(ctx context.Context, tx *gorm.DB, userIDs []uint, notBefore time.Time) ([]*types.Event, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Event
	if len(userIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("user_id IN ? AND start_time >= ?", userIDs, notBefore.UTC()).
		Order("start_time ASC").
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *eventRepo) UpsertExternal(ctx context.Context, tx *gorm.DB, events []*types.Event) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(events) == 0 {
		return 0, nil
	}

	res := transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "external_uid"}, {Name: "start_time"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"title", "act_type", "location", "end_time", "calendar_source_id",
			}),
		}).
		CreateInBatches(&events, 200)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
