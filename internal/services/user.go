package services

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/yungbote/carryhelper-backend/internal/data/repos"
	types "github.com/yungbote/carryhelper-backend/internal/domain"
	"github.com/yungbote/carryhelper-backend/internal/platform/logger"
)

type UserService interface {
	Create(ctx context.Context, name string) (*types.User, error)
	List(ctx context.Context, offset, limit int) ([]*types.User, error)
	Get(ctx context.Context, userID uint) (*types.User, error)
}

type userService struct {
	db       *gorm.DB
	log      *logger.Logger
	userRepo repos.UserRepo
}

func NewUserService(db *gorm.DB, baseLog *logger.Logger, userRepo repos.UserRepo) UserService {
	return &userService{
		db:       db,
		log:      baseLog.With("service", "UserService"),
		userRepo: userRepo,
	}
}

func (s *userService) Create(ctx context.Context, name string) (*types.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, badRequest("invalid_name", "name is required")
	}
	created, err := s.userRepo.Create(ctx, nil, []*types.User{{Name: name}})
	if err != nil {
		s.log.Warn("create user failed", "error", err)
		return nil, mapWriteError(err, "user_exists")
	}
	return created[0], nil
}

func (s *userService) List(ctx context.Context, offset, limit int) ([]*types.User, error) {
	return s.userRepo.List(ctx, nil, offset, limit)
}

func (s *userService) Get(ctx context.Context, userID uint) (*types.User, error) {
	found, err := s.userRepo.GetByIDs(ctx, nil, []uint{userID})
	if err != nil {
		return nil, err
	}
	if len(found) == 0 || found[0] == nil {
		return nil, notFound("user_not_found", "user %d not found", userID)
	}
	return found[0], nil
}

// requireUser returns a 404 error when the user does not exist.
func requireUser(ctx context.Context, userRepo repos.UserRepo, tx *gorm.DB, userID uint) error {
	ok, err := userRepo.Exists(ctx, tx, userID)
	if err != nil {
		return err
	}
	if !ok {
		return notFound("user_not_found", "user %d not found", userID)
	}
	return nil
}
