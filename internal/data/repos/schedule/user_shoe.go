package schedule

import (
	"context"
	"errors"

	"gorm.io/gorm"

	types "github.com/yungbote/carryhelper-backend/internal/domain"
	"github.com/yungbote/carryhelper-backend/internal/platform/logger"
)

type UserShoeRepo interface {
	Create(ctx context.Context, tx *gorm.DB, shoes []*types.UserShoe) ([]*types.UserShoe, error)
	GetByID(ctx context.Context, tx *gorm.DB, shoeID uint) (*types.UserShoe, error)
	// GetForUser returns nil, nil when the shoe does not exist or belongs to
	// another user.
	GetForUser(ctx context.Context, tx *gorm.DB, userID, shoeID uint) (*types.UserShoe, error)
	ListByUser(ctx context.Context, tx *gorm.DB, userID uint) ([]*types.UserShoe, error)
}

type userShoeRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserShoeRepo(db *gorm.DB, baseLog *logger.Logger) UserShoeRepo {
	repoLog := baseLog.With("repo", "UserShoeRepo")
	return &userShoeRepo{db: db, log: repoLog}
}

func (r *userShoeRepo) Create(ctx context.Context, tx *gorm.DB, shoes []*types.UserShoe) ([]*types.UserShoe, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(shoes) == 0 {
		return []*types.UserShoe{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&shoes).Error; err != nil {
		return nil, err
	}
	return shoes, nil
}

func (r *userShoeRepo) GetByID(ctx context.Context, tx *gorm.DB, shoeID uint) (*types.UserShoe, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var shoe types.UserShoe
	err := transaction.WithContext(ctx).
		Where("id = ?", shoeID).
		First(&shoe).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &shoe, nil
}

func (r *userShoeRepo) GetForUser(ctx context.Context, tx *gorm.DB, userID, shoeID uint) (*types.UserShoe, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var shoe types.UserShoe
	err := transaction.WithContext(ctx).
		Where("id = ? AND user_id = ?", shoeID, userID).
		First(&shoe).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &shoe, nil
}

func (r *userShoeRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uint) ([]*types.UserShoe, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.UserShoe
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
