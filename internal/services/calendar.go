package services

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/yungbote/carryhelper-backend/internal/data/repos"
	types "github.com/yungbote/carryhelper-backend/internal/domain"
	"github.com/yungbote/carryhelper-backend/internal/ics"
	"github.com/yungbote/carryhelper-backend/internal/observability"
	"github.com/yungbote/carryhelper-backend/internal/platform/logger"
)

const (
	SyncStatusOK          = "ok"
	SyncStatusNotModified = "not_modified"
	SyncStatusError       = "error"
)

// FeedFetcher downloads an ICS feed.
type FeedFetcher interface {
	Fetch(ctx context.Context, req ics.FetchRequest) (ics.FetchResult, error)
}

type CalendarConfig struct {
	Horizon        time.Duration
	Concurrency    int
	MaxOccurrences int
	Now            func() time.Time
}

type SyncReport struct {
	SourceID    uint   `json:"source_id"`
	UserID      uint   `json:"user_id"`
	Status      string `json:"status"`
	Occurrences int    `json:"occurrences"`
	Upserted    int64  `json:"upserted"`
	Skipped     int    `json:"skipped"`
	Error       string `json:"error,omitempty"`
}

type CalendarService interface {
	AddSource(ctx context.Context, userID uint, feedURL string, defaultActivity *string) (*types.CalendarSource, error)
	ListSources(ctx context.Context, userID uint) ([]*types.CalendarSource, error)
	SyncUser(ctx context.Context, userID uint) ([]SyncReport, error)
	SyncAll(ctx context.Context) ([]SyncReport, error)
}

type calendarService struct {
	db         *gorm.DB
	log        *logger.Logger
	userRepo   repos.UserRepo
	eventRepo  repos.EventRepo
	sourceRepo repos.CalendarSourceRepo
	fetcher    FeedFetcher
	metrics    *observability.Metrics
	cfg        CalendarConfig
}

func NewCalendarService(
	db *gorm.DB,
	baseLog *logger.Logger,
	userRepo repos.UserRepo,
	eventRepo repos.EventRepo,
	sourceRepo repos.CalendarSourceRepo,
	fetcher FeedFetcher,
	metrics *observability.Metrics,
	cfg CalendarConfig,
) CalendarService {
	if cfg.Horizon <= 0 {
		cfg.Horizon = 30 * 24 * time.Hour
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 4
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &calendarService{
		db:         db,
		log:        baseLog.With("service", "CalendarService"),
		userRepo:   userRepo,
		eventRepo:  eventRepo,
		sourceRepo: sourceRepo,
		fetcher:    fetcher,
		metrics:    metrics,
		cfg:        cfg,
	}
}

func (s *calendarService) AddSource(ctx context.Context, userID uint, feedURL string, defaultActivity *string) (*types.CalendarSource, error) {
	feedURL = strings.TrimSpace(feedURL)
	u, err := url.Parse(feedURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https" && u.Scheme != "webcal") {
		return nil, badRequest("invalid_url", "url must be an absolute http(s) or webcal URL")
	}
	if u.Scheme == "webcal" {
		u.Scheme = "https"
		feedURL = u.String()
	}
	if err := requireUser(ctx, s.userRepo, nil, userID); err != nil {
		return nil, err
	}
	created, err := s.sourceRepo.Create(ctx, nil, []*types.CalendarSource{{
		UserID:          userID,
		URL:             feedURL,
		DefaultActivity: normalizeTag(defaultActivity),
	}})
	if err != nil {
		return nil, mapWriteError(err, "calendar_source_exists")
	}
	s.log.Info("calendar source added", "user_id", userID, "source_id", created[0].ID, "url", ics.RedactURL(feedURL))
	return created[0], nil
}

func (s *calendarService) ListSources(ctx context.Context, userID uint) ([]*types.CalendarSource, error) {
	if err := requireUser(ctx, s.userRepo, nil, userID); err != nil {
		return nil, err
	}
	return s.sourceRepo.ListByUser(ctx, nil, userID)
}

func (s *calendarService) SyncUser(ctx context.Context, userID uint) ([]SyncReport, error) {
	if err := requireUser(ctx, s.userRepo, nil, userID); err != nil {
		return nil, err
	}
	sources, err := s.sourceRepo.ListByUser(ctx, nil, userID)
	if err != nil {
		return nil, err
	}
	return s.syncSources(ctx, sources)
}

func (s *calendarService) SyncAll(ctx context.Context) ([]SyncReport, error) {
	sources, err := s.sourceRepo.ListAll(ctx, nil)
	if err != nil {
		return nil, err
	}
	return s.syncSources(ctx, sources)
}

// syncSources syncs every source concurrently. A failing feed is reported in
// its slot and does not abort the others.
func (s *calendarService) syncSources(ctx context.Context, sources []*types.CalendarSource) ([]SyncReport, error) {
	reports := make([]SyncReport, len(sources))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.Concurrency)
	for i, src := range sources {
		i, src := i, src
		g.Go(func() error {
			reports[i] = s.syncOne(gctx, src)
			return gctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return reports, err
	}
	return reports, nil
}

func (s *calendarService) syncOne(ctx context.Context, src *types.CalendarSource) SyncReport {
	rep := SyncReport{SourceID: src.ID, UserID: src.UserID}
	log := s.log.With("source_id", src.ID, "user_id", src.UserID)
	fail := func(err error) SyncReport {
		rep.Status = SyncStatusError
		rep.Error = err.Error()
		log.Warn("calendar sync failed", "url", ics.RedactURL(src.URL), "error", err)
		s.metrics.ObserveCalendarSync(rep.Status, 0)
		return rep
	}

	now := s.cfg.Now().UTC()
	res, err := s.fetcher.Fetch(ctx, ics.FetchRequest{URL: src.URL, ETag: src.ETag, LastModified: src.LastModified})
	if err != nil {
		return fail(err)
	}
	if res.NotModified {
		if err := s.sourceRepo.UpdateSyncState(ctx, nil, src.ID, res.ETag, res.LastModified, now, src.LastSyncMeta); err != nil {
			return fail(err)
		}
		rep.Status = SyncStatusNotModified
		s.metrics.ObserveCalendarSync(rep.Status, 0)
		return rep
	}

	parsed, skipped, err := ics.ParseICS(res.Body)
	if err != nil {
		return fail(err)
	}
	expanded, err := ics.Expand(parsed, now, now.Add(s.cfg.Horizon), s.cfg.MaxOccurrences)
	if err != nil {
		return fail(err)
	}
	rep.Skipped = skipped
	rep.Occurrences = len(expanded.Occurrences)

	events := make([]*types.Event, 0, len(expanded.Occurrences))
	for _, occ := range expanded.Occurrences {
		events = append(events, s.toEvent(src, occ))
	}

	meta, err := json.Marshal(map[string]any{
		"occurrences": rep.Occurrences,
		"skipped":     skipped,
		"truncated":   expanded.Truncated,
		"bad_rules":   expanded.BadRules,
	})
	if err != nil {
		return fail(err)
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		n, err := s.eventRepo.UpsertExternal(ctx, tx, events)
		if err != nil {
			return err
		}
		rep.Upserted = n
		return s.sourceRepo.UpdateSyncState(ctx, tx, src.ID, res.ETag, res.LastModified, now, datatypes.JSON(meta))
	})
	if err != nil {
		return fail(err)
	}

	rep.Status = SyncStatusOK
	s.metrics.ObserveCalendarSync(rep.Status, int(rep.Upserted))
	log.Info("calendar synced", "occurrences", rep.Occurrences, "upserted", rep.Upserted, "skipped", skipped)
	return rep
}

func (s *calendarService) toEvent(src *types.CalendarSource, occ ics.Occurrence) *types.Event {
	title := strings.TrimSpace(occ.Summary)
	if title == "" {
		title = "(untitled)"
	}
	start, end := occ.Start.UTC(), occ.End.UTC()
	uid := occ.UID
	sourceID := src.ID
	ev := &types.Event{
		UserID:           src.UserID,
		Title:            title,
		Location:         trimmedOrNil(&occ.Location),
		StartTime:        &start,
		EndTime:          &end,
		CalendarSourceID: &sourceID,
		ExternalUID:      &uid,
	}
	if occ.Activity != "" {
		act := occ.Activity
		ev.ActType = &act
	} else if src.DefaultActivity != nil {
		act := *src.DefaultActivity
		ev.ActType = &act
	}
	return ev
}
