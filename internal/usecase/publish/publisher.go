// Package publish implements the scheduled publisher: a background service
// that promotes draft articles to published once their scheduled timestamp
// elapses.
//
// Scheduling state lives entirely in the draft rows (scheduled_publish_at),
// not in the service, so a restart loses nothing: any article whose due time
// passed during downtime is picked up by the first pass after restart.
// The model is at-least-once, poll-based; there is no exactly-once guarantee
// and no per-article retry bookkeeping beyond "try again next interval".
package publish

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"resort-cms/internal/observability/metrics"
	"resort-cms/internal/repository"
)

// DefaultInterval is the delay between publish-check passes.
const DefaultInterval = 60 * time.Second

// Config holds the publisher's optional knobs. The zero value selects the
// 60 second interval and the real clock.
type Config struct {
	Interval time.Duration
	Clock    func() time.Time
}

// Publisher polls for due scheduled drafts and publishes them.
// Construct once at process start with New; Start and Stop manage the timer.
type Publisher struct {
	repo     repository.ArticleRepository
	logger   *slog.Logger
	clock    func() time.Time
	interval time.Duration

	mu      sync.Mutex
	cron    *cron.Cron
	running bool
}

// New creates a Publisher with the given repository and logger.
func New(repo repository.ArticleRepository, logger *slog.Logger, cfg Config) *Publisher {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	return &Publisher{
		repo:     repo,
		logger:   logger,
		clock:    cfg.Clock,
		interval: cfg.Interval,
	}
}

// Start runs one publish-check pass immediately, then repeats it on the
// configured interval until Stop is called. Calling Start while already
// running is a logged no-op.
func (p *Publisher) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.running {
		p.logger.Info("scheduled publisher already running")
		return nil
	}

	if err := p.RunOnce(ctx); err != nil {
		// A failed first pass is not fatal; the next tick retries.
		p.logger.Error("initial publish-check pass failed", slog.Any("error", err))
	}

	c := cron.New()
	if _, err := c.AddFunc(fmt.Sprintf("@every %s", p.interval), func() {
		if err := p.RunOnce(context.Background()); err != nil {
			p.logger.Error("publish-check pass failed", slog.Any("error", err))
		}
	}); err != nil {
		return fmt.Errorf("schedule publish checks: %w", err)
	}
	c.Start()

	p.cron = c
	p.running = true
	p.logger.Info("scheduled publisher started", slog.Duration("interval", p.interval))
	return nil
}

// Stop halts the interval timer. A pass already in flight finishes on its
// own; no new passes are started.
func (p *Publisher) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.running {
		return
	}
	p.cron.Stop()
	p.cron = nil
	p.running = false
	p.logger.Info("scheduled publisher stopped")
}

// Running reports whether the interval timer is active.
func (p *Publisher) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.running
}

// RunOnce performs a single publish-check pass: every draft whose
// scheduledPublishAt has elapsed is published with publishedAt set to this
// pass's evaluation time (not the original target time). Each article is
// updated independently; one failure is logged and does not abort the rest.
func (p *Publisher) RunOnce(ctx context.Context) error {
	start := time.Now()
	defer func() {
		metrics.PublishPassDuration.Observe(time.Since(start).Seconds())
	}()

	now := p.clock()
	due, err := p.repo.ListDueScheduled(ctx, now)
	if err != nil {
		metrics.PublishPassesTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("list due scheduled articles: %w", err)
	}
	metrics.PublishPassesTotal.WithLabelValues("success").Inc()

	if len(due) == 0 {
		return nil
	}
	p.logger.Info("found scheduled articles to publish", slog.Int("count", len(due)))

	for _, art := range due {
		if err := p.repo.MarkPublished(ctx, art.ID, now); err != nil {
			metrics.ArticlesPublishedTotal.WithLabelValues("error").Inc()
			p.logger.Error("failed to publish scheduled article",
				slog.Int64("article_id", art.ID),
				slog.String("slug", art.Slug),
				slog.Any("error", err))
			continue
		}
		metrics.ArticlesPublishedTotal.WithLabelValues("success").Inc()
		p.logger.Info("published scheduled article",
			slog.Int64("article_id", art.ID),
			slog.String("slug", art.Slug))
	}
	return nil
}
