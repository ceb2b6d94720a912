package rules

import (
	"context"

	"gorm.io/gorm"

	types "github.com/yungbote/carryhelper-backend/internal/domain"
	"github.com/yungbote/carryhelper-backend/internal/platform/logger"
)

type ShoeCommonItemRepo interface {
	Create(ctx context.Context, tx *gorm.DB, items []*types.ShoeCommonItem) ([]*types.ShoeCommonItem, error)
	ListByShoeID(ctx context.Context, tx *gorm.DB, shoeID uint) ([]*types.ShoeCommonItem, error)
	// ListByShoeType returns rows keyed by type only (shoe_id IS NULL).
	ListByShoeType(ctx context.Context, tx *gorm.DB, shoeType string) ([]*types.ShoeCommonItem, error)
}

type shoeCommonItemRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewShoeCommonItemRepo(db *gorm.DB, baseLog *logger.Logger) ShoeCommonItemRepo {
	repoLog := baseLog.With("repo", "ShoeCommonItemRepo")
	return &shoeCommonItemRepo{db: db, log: repoLog}
}

func (r *shoeCommonItemRepo) Create(ctx context.Context, tx *gorm.DB, items []*types.ShoeCommonItem) ([]*types.ShoeCommonItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(items) == 0 {
		return []*types.ShoeCommonItem{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *shoeCommonItemRepo) ListByShoeID(ctx context.Context, tx *gorm.DB, shoeID uint) ([]*types.ShoeCommonItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.ShoeCommonItem
	if err := transaction.WithContext(ctx).
		Where("shoe_id = ?", shoeID).
		Order("position ASC").
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *shoeCommonItemRepo) ListByShoeType(ctx context.Context, tx *gorm.DB, shoeType string) ([]*types.ShoeCommonItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.ShoeCommonItem
	if shoeType == "" {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("shoe_id IS NULL AND shoe_type = ?", shoeType).
		Order("position ASC").
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
