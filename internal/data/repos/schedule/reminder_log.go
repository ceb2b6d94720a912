package schedule

import (
	"context"

	"gorm.io/gorm"

	types "github.com/yungbote/carryhelper-backend/internal/domain"
	"github.com/yungbote/carryhelper-backend/internal/platform/logger"
)

type ReminderLogRepo interface {
	Create(ctx context.Context, tx *gorm.DB, logs []*types.ReminderLog) ([]*types.ReminderLog, error)
	ListByUser(ctx context.Context, tx *gorm.DB, userID uint) ([]*types.ReminderLog, error)
}

type reminderLogRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewReminderLogRepo(db *gorm.DB, baseLog *logger.Logger) ReminderLogRepo {
	repoLog := baseLog.With("repo", "ReminderLogRepo")
	return &reminderLogRepo{db: db, log: repoLog}
}

func (r *reminderLogRepo) Create(ctx context.Context, tx *gorm.DB, logs []*types.ReminderLog) ([]*types.ReminderLog, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(logs) == 0 {
		return []*types.ReminderLog{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *reminderLogRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uint) ([]*types.ReminderLog, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.ReminderLog
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
