package services

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/yungbote/carryhelper-backend/internal/data/repos"
	types "github.com/yungbote/carryhelper-backend/internal/domain"
	"github.com/yungbote/carryhelper-backend/internal/platform/logger"
)

type ShoeService interface {
	Register(ctx context.Context, userID uint, shoeType string, label *string) (*types.UserShoe, error)
	ListByUser(ctx context.Context, userID uint) ([]*types.UserShoe, error)
}

type shoeService struct {
	db       *gorm.DB
	log      *logger.Logger
	userRepo repos.UserRepo
	shoeRepo repos.UserShoeRepo
}

func NewShoeService(db *gorm.DB, baseLog *logger.Logger, userRepo repos.UserRepo, shoeRepo repos.UserShoeRepo) ShoeService {
	return &shoeService{
		db:       db,
		log:      baseLog.With("service", "ShoeService"),
		userRepo: userRepo,
		shoeRepo: shoeRepo,
	}
}

func (s *shoeService) Register(ctx context.Context, userID uint, shoeType string, label *string) (*types.UserShoe, error) {
	shoeType = strings.ToLower(strings.TrimSpace(shoeType))
	if shoeType == "" {
		return nil, badRequest("invalid_shoe_type", "shoe_type is required")
	}
	if err := requireUser(ctx, s.userRepo, nil, userID); err != nil {
		return nil, err
	}
	shoe := &types.UserShoe{UserID: userID, ShoeType: shoeType}
	if l := trimmedOrNil(label); l != nil {
		shoe.Label = *l
	}
	created, err := s.shoeRepo.Create(ctx, nil, []*types.UserShoe{shoe})
	if err != nil {
		return nil, mapWriteError(err, "shoe_exists")
	}
	s.log.Info("shoe registered", "user_id", userID, "shoe_id", created[0].ID, "shoe_type", shoeType)
	return created[0], nil
}

func (s *shoeService) ListByUser(ctx context.Context, userID uint) ([]*types.UserShoe, error) {
	if err := requireUser(ctx, s.userRepo, nil, userID); err != nil {
		return nil, err
	}
	return s.shoeRepo.ListByUser(ctx, nil, userID)
}
