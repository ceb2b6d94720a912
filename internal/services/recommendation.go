package services

import (
	"context"
	"errors"
	"time"

	"github.com/yungbote/carryhelper-backend/internal/data/repos"
	"github.com/yungbote/carryhelper-backend/internal/observability"
	"github.com/yungbote/carryhelper-backend/internal/platform/apierr"
	"github.com/yungbote/carryhelper-backend/internal/platform/logger"
	"github.com/yungbote/carryhelper-backend/internal/recommend"
)

type RecommendInput struct {
	UserID   uint
	ShoeType string
	At       *time.Time
}

type CommonItems struct {
	ShoeID   uint     `json:"shoe_id"`
	ShoeType string   `json:"shoe_type"`
	Items    []string `json:"items"`
}

type RecommendationService interface {
	Recommend(ctx context.Context, in RecommendInput) (*recommend.Result, error)
	// DetectShoe resolves a registered shoe of the user and recommends for now.
	DetectShoe(ctx context.Context, userID, shoeID uint) (*recommend.Result, error)
	CommonItems(ctx context.Context, shoeID uint) (*CommonItems, error)
}

type recommendationService struct {
	log      *logger.Logger
	engine   *recommend.Engine
	rules    recommend.RuleStore
	shoeRepo repos.UserShoeRepo
	metrics  *observability.Metrics
}

func NewRecommendationService(
	baseLog *logger.Logger,
	engine *recommend.Engine,
	rules recommend.RuleStore,
	shoeRepo repos.UserShoeRepo,
	metrics *observability.Metrics,
) RecommendationService {
	return &recommendationService{
		log:      baseLog.With("service", "RecommendationService"),
		engine:   engine,
		rules:    rules,
		shoeRepo: shoeRepo,
		metrics:  metrics,
	}
}

func (s *recommendationService) Recommend(ctx context.Context, in RecommendInput) (*recommend.Result, error) {
	shoe := normalizeTag(&in.ShoeType)
	if shoe == nil {
		return nil, badRequest("missing_shoe_type", "shoe_type is required")
	}
	return s.infer(ctx, recommend.Request{UserID: in.UserID, ShoeType: *shoe, At: in.At})
}

func (s *recommendationService) DetectShoe(ctx context.Context, userID, shoeID uint) (*recommend.Result, error) {
	return s.infer(ctx, recommend.Request{UserID: userID, ShoeID: &shoeID})
}

func (s *recommendationService) infer(ctx context.Context, req recommend.Request) (*recommend.Result, error) {
	start := time.Now()
	res, err := s.engine.Infer(ctx, req)
	dur := time.Since(start)

	switch {
	case errors.Is(err, recommend.ErrUserNotFound):
		s.metrics.ObserveRecommendation("not_found", 0, dur)
		return nil, apierr.NotFound("user_not_found", err)
	case errors.Is(err, recommend.ErrShoeNotFound):
		s.metrics.ObserveRecommendation("not_found", 0, dur)
		return nil, apierr.NotFound("shoe_not_found", err)
	case err != nil:
		s.metrics.ObserveRecommendation("error", 0, dur)
		s.log.Error("recommendation failed", "error", err, "user_id", req.UserID)
		return nil, err
	}

	outcome := "ok"
	if res.Current == nil {
		outcome = "empty"
	}
	s.metrics.ObserveRecommendation(outcome, len(res.Items), dur)
	return res, nil
}

func (s *recommendationService) CommonItems(ctx context.Context, shoeID uint) (*CommonItems, error) {
	shoe, err := s.shoeRepo.GetByID(ctx, nil, shoeID)
	if err != nil {
		return nil, err
	}
	if shoe == nil {
		return nil, notFound("shoe_not_found", "shoe %d not found", shoeID)
	}
	items, err := s.rules.ShoeCommonItems(ctx, recommend.ShoeRef{ID: &shoe.ID, Type: shoe.ShoeType})
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, notFound("common_items_not_found", "no common items for shoe %d", shoeID)
	}
	return &CommonItems{ShoeID: shoe.ID, ShoeType: shoe.ShoeType, Items: items}, nil
}
