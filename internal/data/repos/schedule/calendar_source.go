package schedule

import (
	"context"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	types "github.com/yungbote/carryhelper-backend/internal/domain"
	"github.com/yungbote/carryhelper-backend/internal/platform/logger"
)

type CalendarSourceRepo interface {
	Create(ctx context.Context, tx *gorm.DB, sources []*types.CalendarSource) ([]*types.CalendarSource, error)
	ListByUser(ctx context.Context, tx *gorm.DB, userID uint) ([]*types.CalendarSource, error)
	ListAll(ctx context.Context, tx *gorm.DB) ([]*types.CalendarSource, error)
	UpdateSyncState(ctx context.Context, tx *gorm.DB, id uint, etag, lastModified string, syncedAt time.Time, meta datatypes.JSON) error
}

type calendarSourceRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCalendarSourceRepo(db *gorm.DB, baseLog *logger.Logger) CalendarSourceRepo {
	repoLog := baseLog.With("repo", "CalendarSourceRepo")
	return &calendarSourceRepo{db: db, log: repoLog}
}

func (r *calendarSourceRepo) Create(ctx context.Context, tx *gorm.DB, sources []*types.CalendarSource) ([]*types.CalendarSource, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(sources) == 0 {
		return []*types.CalendarSource{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&sources).Error; err != nil {
		return nil, err
	}
	return sources, nil
}

func (r *calendarSourceRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uint) ([]*types.CalendarSource, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.CalendarSource
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *calendarSourceRepo) ListAll(ctx context.Context, tx *gorm.DB) ([]*types.CalendarSource, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.CalendarSource
	if err := transaction.WithContext(ctx).
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *calendarSourceRepo) UpdateSyncState(ctx context.Context, tx *gorm.DB, id uint, etag, lastModified string, syncedAt time.Time, meta datatypes.JSON) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	return transaction.WithContext(ctx).
		Model(&types.CalendarSource{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"etag":           etag,
			"last_modified":  lastModified,
			"last_synced_at": syncedAt.UTC(),
			"last_sync_meta": meta,
		}).Error
}
