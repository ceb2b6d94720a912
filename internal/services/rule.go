package services

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/yungbote/carryhelper-backend/internal/data/repos"
	types "github.com/yungbote/carryhelper-backend/internal/domain"
	"github.com/yungbote/carryhelper-backend/internal/platform/logger"
)

// CacheInvalidator is notified after every rule table write.
type CacheInvalidator interface {
	Invalidate(ctx context.Context)
}

type RuleInput struct {
	ActType      string
	ItemName     string
	BasePriority *int
	ShoeType     *string
	IsDefault    bool
	TimeTag      *string
}

// ShoeItemsInput targets either a registered shoe or a shoe type.
type ShoeItemsInput struct {
	ShoeID   *uint
	ShoeType *string
	Items    []string
}

type RuleService interface {
	CreateRule(ctx context.Context, in RuleInput) (*types.ActivityItemRule, error)
	ListRules(ctx context.Context, activity string, offset, limit int) ([]*types.ActivityItemRule, error)
	AddShoeItems(ctx context.Context, in ShoeItemsInput) ([]*types.ShoeCommonItem, error)
	ListShoeItems(ctx context.Context, shoeID *uint, shoeType string) ([]*types.ShoeCommonItem, error)
	CreateEncounterRule(ctx context.Context, ownerID, counterpartID uint, item string) (*types.EncounterRule, error)
	ListEncounterRules(ctx context.Context, ownerID uint) ([]*types.EncounterRule, error)
}

type ruleService struct {
	db            *gorm.DB
	log           *logger.Logger
	userRepo      repos.UserRepo
	shoeRepo      repos.UserShoeRepo
	ruleRepo      repos.ActivityItemRuleRepo
	shoeItemRepo  repos.ShoeCommonItemRepo
	encounterRepo repos.EncounterRuleRepo
	cache         CacheInvalidator
}

func NewRuleService(
	db *gorm.DB,
	baseLog *logger.Logger,
	userRepo repos.UserRepo,
	shoeRepo repos.UserShoeRepo,
	ruleRepo repos.ActivityItemRuleRepo,
	shoeItemRepo repos.ShoeCommonItemRepo,
	encounterRepo repos.EncounterRuleRepo,
	cache CacheInvalidator,
) RuleService {
	return &ruleService{
		db:            db,
		log:           baseLog.With("service", "RuleService"),
		userRepo:      userRepo,
		shoeRepo:      shoeRepo,
		ruleRepo:      ruleRepo,
		shoeItemRepo:  shoeItemRepo,
		encounterRepo: encounterRepo,
		cache:         cache,
	}
}

func (s *ruleService) CreateRule(ctx context.Context, in RuleInput) (*types.ActivityItemRule, error) {
	act := strings.ToLower(strings.TrimSpace(in.ActType))
	item := strings.TrimSpace(in.ItemName)
	if act == "" || item == "" {
		return nil, badRequest("invalid_rule", "act_type and item_name are required")
	}
	if in.BasePriority != nil && *in.BasePriority < 0 {
		return nil, badRequest("invalid_priority", "base_priority must be >= 0")
	}
	r := &types.ActivityItemRule{
		ActType:      act,
		ItemName:     item,
		BasePriority: in.BasePriority,
		ShoeType:     normalizeTag(in.ShoeType),
		IsDefault:    in.IsDefault,
		TimeTag:      trimmedOrNil(in.TimeTag),
	}
	created, err := s.ruleRepo.Create(ctx, nil, []*types.ActivityItemRule{r})
	if err != nil {
		return nil, mapWriteError(err, "rule_exists")
	}
	s.invalidate(ctx)
	return created[0], nil
}

func (s *ruleService) ListRules(ctx context.Context, activity string, offset, limit int) ([]*types.ActivityItemRule, error) {
	if act := strings.ToLower(strings.TrimSpace(activity)); act != "" {
		return s.ruleRepo.ListByActivity(ctx, nil, act)
	}
	return s.ruleRepo.List(ctx, nil, offset, limit)
}

func (s *ruleService) AddShoeItems(ctx context.Context, in ShoeItemsInput) ([]*types.ShoeCommonItem, error) {
	shoeType := normalizeTag(in.ShoeType)
	if (in.ShoeID == nil) == (shoeType == nil) {
		return nil, badRequest("invalid_shoe_ref", "exactly one of shoe_id or shoe_type is required")
	}
	var names []string
	for _, it := range in.Items {
		if it = strings.TrimSpace(it); it != "" {
			names = append(names, it)
		}
	}
	if len(names) == 0 {
		return nil, badRequest("invalid_items", "items must not be empty")
	}

	var out []*types.ShoeCommonItem
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing []*types.ShoeCommonItem
		if in.ShoeID != nil {
			shoe, err := s.shoeRepo.GetByID(ctx, tx, *in.ShoeID)
			if err != nil {
				return err
			}
			if shoe == nil {
				return notFound("shoe_not_found", "shoe %d not found", *in.ShoeID)
			}
			if existing, err = s.shoeItemRepo.ListByShoeID(ctx, tx, *in.ShoeID); err != nil {
				return err
			}
		} else {
			var err error
			if existing, err = s.shoeItemRepo.ListByShoeType(ctx, tx, *shoeType); err != nil {
				return err
			}
		}

		rows := make([]*types.ShoeCommonItem, 0, len(names))
		for i, name := range names {
			rows = append(rows, &types.ShoeCommonItem{
				ShoeID:   in.ShoeID,
				ShoeType: shoeType,
				ItemName: name,
				Position: len(existing) + i,
			})
		}
		created, err := s.shoeItemRepo.Create(ctx, tx, rows)
		if err != nil {
			return mapWriteError(err, "shoe_item_exists")
		}
		out = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return out, nil
}

func (s *ruleService) ListShoeItems(ctx context.Context, shoeID *uint, shoeType string) ([]*types.ShoeCommonItem, error) {
	if shoeID != nil {
		return s.shoeItemRepo.ListByShoeID(ctx, nil, *shoeID)
	}
	st := strings.ToLower(strings.TrimSpace(shoeType))
	if st == "" {
		return nil, badRequest("invalid_shoe_ref", "shoe_id or shoe_type is required")
	}
	return s.shoeItemRepo.ListByShoeType(ctx, nil, st)
}

func (s *ruleService) CreateEncounterRule(ctx context.Context, ownerID, counterpartID uint, item string) (*types.EncounterRule, error) {
	item = strings.TrimSpace(item)
	if item == "" {
		return nil, badRequest("invalid_item", "item_name is required")
	}
	if ownerID == counterpartID {
		return nil, badRequest("invalid_counterpart", "counterpart must differ from owner")
	}
	if err := requireUser(ctx, s.userRepo, nil, ownerID); err != nil {
		return nil, err
	}
	if err := requireUser(ctx, s.userRepo, nil, counterpartID); err != nil {
		return nil, err
	}
	created, err := s.encounterRepo.Create(ctx, nil, []*types.EncounterRule{{
		OwnerUserID:       ownerID,
		CounterpartUserID: counterpartID,
		ItemName:          item,
	}})
	if err != nil {
		return nil, mapWriteError(err, "encounter_rule_exists")
	}
	return created[0], nil
}

func (s *ruleService) ListEncounterRules(ctx context.Context, ownerID uint) ([]*types.EncounterRule, error) {
	if err := requireUser(ctx, s.userRepo, nil, ownerID); err != nil {
		return nil, err
	}
	return s.encounterRepo.ListByOwner(ctx, nil, ownerID)
}

func (s *ruleService) invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
}
