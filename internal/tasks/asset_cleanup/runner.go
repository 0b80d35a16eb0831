// Package assetcleanup 重试在请求路径上失败的远端视频资产删除。
package assetcleanup

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bionicotaku/lingo-services-course/internal/clients/mux"
	"github.com/bionicotaku/lingo-services-course/internal/models/po"
	"github.com/bionicotaku/lingo-services-course/internal/repositories"

	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/cenkalti/backoff/v4"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/metric"
	"golang.org/x/sync/errgroup"
)

// Config 控制清理任务的调度节奏与重试策略。
type Config struct {
	TickInterval   time.Duration
	BatchSize      int
	Workers        int
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
	LockTTL        time.Duration
	DeleteTimeout  time.Duration
}

func (c Config) normalize() Config {
	if c.TickInterval <= 0 {
		c.TickInterval = 30 * time.Second
	}
	if c.BatchSize <= 0 {
		c.BatchSize = 20
	}
	if c.Workers <= 0 {
		c.Workers = 4
	}
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = 8
	}
	if c.InitialBackoff <= 0 {
		c.InitialBackoff = 30 * time.Second
	}
	if c.MaxBackoff < c.InitialBackoff {
		c.MaxBackoff = c.InitialBackoff
	}
	if c.LockTTL <= 0 {
		c.LockTTL = 2 * time.Minute
	}
	if c.DeleteTimeout <= 0 {
		c.DeleteTimeout = 10 * time.Second
	}
	return c
}

// JobStore 是 Runner 依赖的任务表能力。
type JobStore interface {
	ClaimPending(ctx context.Context, availableBefore, staleBefore time.Time, limit int, lockToken string) ([]*po.AssetCleanupJob, error)
	MarkCompleted(ctx context.Context, sess txmanager.Session, jobID uuid.UUID, lockToken string, completedAt time.Time) error
	Reschedule(ctx context.Context, sess txmanager.Session, jobID uuid.UUID, lockToken string, nextAvailable time.Time, lastErr string) error
	Abandon(ctx context.Context, sess txmanager.Session, jobID uuid.UUID, lockToken string, at time.Time, lastErr string) error
	CountPending(ctx context.Context) (int64, error)
}

// AssetDeleter 删除远端资产。
type AssetDeleter interface {
	DeleteAsset(ctx context.Context, assetID string) error
}

// RunnerParams 注入 Runner 所需依赖。
type RunnerParams struct {
	Store    JobStore
	Provider AssetDeleter
	Config   Config
	Logger   log.Logger
	Meter    metric.Meter
	Now      func() time.Time
}

// Runner 周期性领取到期任务并重试远端删除。
type Runner struct {
	store    JobStore
	provider AssetDeleter
	cfg      Config
	log      *log.Helper
	metrics  *metrics
	now      func() time.Time
}

// NewRunner 构造 Runner。
func NewRunner(params RunnerParams) (*Runner, error) {
	if params.Store == nil {
		return nil, fmt.Errorf("asset cleanup: job store is required")
	}
	if params.Provider == nil {
		return nil, fmt.Errorf("asset cleanup: provider is required")
	}
	logger := params.Logger
	if logger == nil {
		logger = log.DefaultLogger
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	return &Runner{
		store:    params.Store,
		provider: params.Provider,
		cfg:      params.Config.normalize(),
		log:      log.NewHelper(logger),
		metrics:  newMetrics(params.Meter),
		now:      now,
	}, nil
}

// Run 立即执行一轮，然后按 TickInterval 循环直到 ctx 结束。
func (r *Runner) Run(ctx context.Context) error {
	if r == nil {
		return nil
	}
	r.log.WithContext(ctx).Infof("asset cleanup runner started: batch_size=%d workers=%d tick=%s",
		r.cfg.BatchSize, r.cfg.Workers, r.cfg.TickInterval)

	ticker := time.NewTicker(r.cfg.TickInterval)
	defer ticker.Stop()
	for {
		if _, err := r.ProcessOnce(ctx); err != nil && !errors.Is(err, context.Canceled) {
			r.log.WithContext(ctx).Warnf("asset cleanup round failed: %v", err)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// ProcessOnce 领取一批到期任务并并发处理，返回领取数量。
func (r *Runner) ProcessOnce(ctx context.Context) (int, error) {
	now := r.now().UTC()
	lockToken := uuid.NewString()
	jobs, err := r.store.ClaimPending(ctx, now, now.Add(-r.cfg.LockTTL), r.cfg.BatchSize, lockToken)
	if err != nil {
		return 0, err
	}
	if len(jobs) > 0 {
		var g errgroup.Group
		g.SetLimit(r.cfg.Workers)
		for _, job := range jobs {
			g.Go(func() error {
				r.process(ctx, job, lockToken)
				return nil
			})
		}
		_ = g.Wait()
	}
	r.reportPending(ctx)
	return len(jobs), nil
}

// reportPending 在每轮结束后上报积压任务数，统计失败只记录日志。
func (r *Runner) reportPending(ctx context.Context) {
	pending, err := r.store.CountPending(ctx)
	if err != nil {
		r.log.WithContext(ctx).Warnf("count pending asset cleanup jobs failed: %v", err)
		return
	}
	r.metrics.recordPending(ctx, pending)
}

func (r *Runner) process(ctx context.Context, job *po.AssetCleanupJob, lockToken string) {
	deleteCtx, cancel := context.WithTimeout(ctx, r.cfg.DeleteTimeout)
	err := r.provider.DeleteAsset(deleteCtx, job.AssetID)
	cancel()

	now := r.now().UTC()
	switch {
	case err == nil:
		r.finish(ctx, job, r.store.MarkCompleted(ctx, nil, job.ID, lockToken, now), resultCompleted)
	case errors.Is(err, mux.ErrAssetNotFound):
		r.finish(ctx, job, r.store.MarkCompleted(ctx, nil, job.ID, lockToken, now), resultAlreadyGone)
	case int(job.Attempts)+1 >= r.cfg.MaxAttempts:
		r.log.WithContext(ctx).Errorf("asset cleanup abandoned: asset=%s chapter=%s attempts=%d err=%v",
			job.AssetID, job.ChapterID, job.Attempts+1, err)
		r.finish(ctx, job, r.store.Abandon(ctx, nil, job.ID, lockToken, now, err.Error()), resultAbandoned)
	default:
		next := now.Add(r.delay(int(job.Attempts) + 1))
		r.log.WithContext(ctx).Warnf("asset cleanup retry scheduled: asset=%s next=%s err=%v",
			job.AssetID, next.Format(time.RFC3339), err)
		r.finish(ctx, job, r.store.Reschedule(ctx, nil, job.ID, lockToken, next, err.Error()), resultRescheduled)
	}
}

func (r *Runner) finish(ctx context.Context, job *po.AssetCleanupJob, storeErr error, result string) {
	switch {
	case storeErr == nil:
		r.metrics.record(ctx, result)
	case errors.Is(storeErr, repositories.ErrCleanupLockLost):
		r.log.WithContext(ctx).Warnf("asset cleanup lock lost: job=%s", job.ID)
		r.metrics.record(ctx, resultLockLost)
	default:
		r.log.WithContext(ctx).Errorf("asset cleanup store update failed: job=%s err=%v", job.ID, storeErr)
		r.metrics.record(ctx, resultStoreError)
	}
}

// delay 返回第 attempt 次失败后的等待时间。
func (r *Runner) delay(attempt int) time.Duration {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = r.cfg.InitialBackoff
	b.MaxInterval = r.cfg.MaxBackoff
	b.MaxElapsedTime = 0
	b.Reset()

	d := b.InitialInterval
	for i := 0; i < attempt; i++ {
		d = b.NextBackOff()
	}
	return d
}
