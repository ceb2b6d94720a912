package rules

import (
	"context"

	"gorm.io/gorm"

	types "github.com/yungbote/carryhelper-backend/internal/domain"
	"github.com/yungbote/carryhelper-backend/internal/platform/logger"
)

// ActivityItemRuleRepo reads are always ordered by id so that "first matching
// rule" is stable across calls and databases.
type ActivityItemRuleRepo interface {
	Create(ctx context.Context, tx *gorm.DB, rules []*types.ActivityItemRule) ([]*types.ActivityItemRule, error)
	List(ctx context.Context, tx *gorm.DB, offset, limit int) ([]*types.ActivityItemRule, error)
	ListByActivity(ctx context.Context, tx *gorm.DB, actType string) ([]*types.ActivityItemRule, error)
	// ListByActivityAndShoe returns generic rules plus rules bound to shoeType.
	ListByActivityAndShoe(ctx context.Context, tx *gorm.DB, actType, shoeType string) ([]*types.ActivityItemRule, error)
}

type activityItemRuleRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewActivityItemRuleRepo(db *gorm.DB, baseLog *logger.Logger) ActivityItemRuleRepo {
	repoLog := baseLog.With("repo", "ActivityItemRuleRepo")
	return &activityItemRuleRepo{db: db, log: repoLog}
}

func (r *activityItemRuleRepo) Create(ctx context.Context, tx *gorm.DB, rules []*types.ActivityItemRule) ([]*types.ActivityItemRule, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(rules) == 0 {
		return []*types.ActivityItemRule{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&rules).Error; err != nil {
		return nil, err
	}
	return rules, nil
}

func (r *activityItemRuleRepo) List(ctx context.Context, tx *gorm.DB, offset, limit int) ([]*types.ActivityItemRule, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.ActivityItemRule
	if err := transaction.WithContext(ctx).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *activityItemRuleRepo) ListByActivity(ctx context.Context, tx *gorm.DB, actType string) ([]*types.ActivityItemRule, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.ActivityItemRule
	if actType == "" {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("act_type = ?", actType).
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *activityItemRuleRepo) ListByActivityAndShoe(ctx context.Context, tx *gorm.DB, actType, shoeType string) ([]*types.ActivityItemRule, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.ActivityItemRule
	if actType == "" {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("act_type = ?", actType).
		Where("shoe_type IS NULL OR shoe_type = ?", shoeType).
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
