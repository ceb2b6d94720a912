package rules

import (
	"context"

	"gorm.io/gorm"

	types "github.com/yungbote/carryhelper-backend/internal/domain"
	"github.com/yungbote/carryhelper-backend/internal/platform/logger"
)

type EncounterRuleRepo interface {
	Create(ctx context.Context, tx *gorm.DB, rules []*types.EncounterRule) ([]*types.EncounterRule, error)
	ListByOwner(ctx context.Context, tx *gorm.DB, ownerUserID uint) ([]*types.EncounterRule, error)
}

type encounterRuleRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewEncounterRuleRepo(db *gorm.DB, baseLog *logger.Logger) EncounterRuleRepo {
	repoLog := baseLog.With("repo", "EncounterRuleRepo")
	return &encounterRuleRepo{db: db, log: repoLog}
}

func (r *encounterRuleRepo) Create(ctx context.Context, tx *gorm.DB, rules []*types.EncounterRule) ([]*types.EncounterRule, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(rules) == 0 {
		return []*types.EncounterRule{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&rules).Error; err != nil {
		return nil, err
	}
	return rules, nil
}

func (r *encounterRuleRepo) ListByOwner(ctx context.Context, tx *gorm.DB, ownerUserID uint) ([]*types.EncounterRule, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.EncounterRule
	if err := transaction.WithContext(ctx).
		Where("owner_user_id = ?", ownerUserID).
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
