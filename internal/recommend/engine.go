package recommend

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	types "github.com/yungbote/carryhelper-backend/internal/domain"
	"github.com/yungbote/carryhelper-backend/internal/platform/logger"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrShoeNotFound = errors.New("shoe not found for user")
)

// Request is the input of Infer. ShoeID, when set, must belong to UserID and
// its type overrides ShoeType. At defaults to the engine clock.
type Request struct {
	UserID   uint
	ShoeType string
	ShoeID   *uint
	At       *time.Time
}

// Result is computed per call and never stored. Next is nil unless it was
// folded into the recommendation.
type Result struct {
	ShoeType string       `json:"shoe_type"`
	Current  *types.Event `json:"current_event"`
	Next     *types.Event `json:"next_event"`
	Items    []string     `json:"items"`
}

type Engine struct {
	log      *logger.Logger
	rules    RuleStore
	schedule ScheduleStore
	cfg      Config
	now      func() time.Time
	tracer   trace.Tracer
}

type Option func(*Engine)

// WithClock replaces time.Now as the default reference time.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

func NewEngine(baseLog *logger.Logger, rules RuleStore, schedule ScheduleStore, cfg Config, opts ...Option) *Engine {
	if baseLog == nil {
		baseLog = logger.Nop()
	}
	e := &Engine{
		log:      baseLog.With("component", "RecommendEngine"),
		rules:    rules,
		schedule: schedule,
		cfg:      cfg,
		now:      time.Now,
		tracer:   otel.Tracer("carryhelper/recommend"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) Config() Config { return e.cfg }

func (e *Engine) Infer(ctx context.Context, req Request) (res *Result, err error) {
	ctx, span := e.tracer.Start(ctx, "recommend.Infer",
		trace.WithAttributes(attribute.Int64("user.id", int64(req.UserID))))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	ok, err := e.schedule.UserExists(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}
	if !ok {
		return nil, ErrUserNotFound
	}

	shoe := ShoeRef{Type: strings.ToLower(strings.TrimSpace(req.ShoeType))}
	if req.ShoeID != nil {
		us, err := e.schedule.ShoeForUser(ctx, req.UserID, *req.ShoeID)
		if err != nil {
			return nil, fmt.Errorf("resolve shoe: %w", err)
		}
		if us == nil {
			return nil, ErrShoeNotFound
		}
		id := us.ID
		shoe = ShoeRef{ID: &id, Type: strings.ToLower(strings.TrimSpace(us.ShoeType))}
	}

	ref := e.now().UTC()
	if req.At != nil {
		ref = req.At.UTC()
	}

	events, err := e.schedule.UpcomingEvents(ctx, req.UserID, ref, e.cfg.Lookahead)
	if err != nil {
		return nil, fmt.Errorf("upcoming events: %w", err)
	}
	current, next := SelectEvents(events)
	if current == nil {
		span.SetAttributes(attribute.Bool("schedule.empty", true))
		return &Result{ShoeType: shoe.Type, Items: []string{}}, nil
	}

	currentDefault, err := DefaultShoe(ctx, e.rules, current.Activity())
	if err != nil {
		return nil, err
	}
	nextDefault := ""
	if next != nil {
		if nextDefault, err = DefaultShoe(ctx, e.rules, next.Activity()); err != nil {
			return nil, err
		}
	}
	includeNext := ShouldContinue(shoe.Type, currentDefault, next, nextDefault)

	items := newItemList()
	items.add(e.cfg.FixedItems...)

	shoeItems, err := e.rules.ShoeCommonItems(ctx, shoe)
	if err != nil {
		return nil, fmt.Errorf("shoe items: %w", err)
	}
	items.add(shoeItems...)

	curScores, curDefaults, err := e.activityRules(ctx, current.Activity(), shoe.Type)
	if err != nil {
		return nil, err
	}
	scores := NewScores()
	scores.Merge(curScores)
	items.add(curDefaults...)

	overlap := map[string]struct{}{}
	if includeNext {
		nextScores, nextDefaults, err := e.activityRules(ctx, next.Activity(), shoe.Type)
		if err != nil {
			return nil, err
		}
		items.add(nextDefaults...)
		overlap = Overlap(curScores, nextScores)
		scores.Merge(nextScores)
	}
	items.add(RankExtras(scores, overlap, e.cfg)...)

	encounter, err := e.encounterItems(ctx, req.UserID, ref)
	if err != nil {
		return nil, err
	}
	items.add(encounter...)

	res = &Result{ShoeType: shoe.Type, Current: current, Items: items.list()}
	if includeNext {
		res.Next = next
	}

	span.SetAttributes(
		attribute.Bool("recommend.include_next", includeNext),
		attribute.Int("recommend.items", len(res.Items)),
	)
	e.log.Debug("recommendation inferred",
		"user_id", req.UserID,
		"shoe_type", shoe.Type,
		"current_event_id", current.ID,
		"include_next", includeNext,
		"items", len(res.Items),
	)
	return res, nil
}

func (e *Engine) activityRules(ctx context.Context, activity, worn string) (*Scores, []string, error) {
	if activity == "" {
		return NewScores(), nil, nil
	}
	rules, err := e.rules.RulesForShoe(ctx, activity, worn)
	if err != nil {
		return nil, nil, fmt.Errorf("rules for %q/%q: %w", activity, worn, err)
	}
	return ScoreRules(rules, worn), DefaultItems(rules, worn), nil
}

func (e *Engine) encounterItems(ctx context.Context, userID uint, ref time.Time) ([]string, error) {
	rules, err := e.schedule.EncounterRules(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("encounter rules: %w", err)
	}
	others := counterparts(userID, rules)
	if len(others) == 0 {
		return nil, nil
	}
	events, err := e.schedule.EventsByOwners(ctx, append([]uint{userID}, others...), ref)
	if err != nil {
		return nil, fmt.Errorf("encounter events: %w", err)
	}
	return EncounterItems(userID, events, rules), nil
}
