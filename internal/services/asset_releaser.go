package services

import (
	"context"
	"errors"
	"time"

	"github.com/bionicotaku/lingo-services-course/internal/clients/mux"
	"github.com/bionicotaku/lingo-services-course/internal/models/po"
	"github.com/bionicotaku/lingo-services-course/internal/repositories"

	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
)

// VideoAssetConfig 控制视频资产同步行为。
type VideoAssetConfig struct {
	DeleteTimeout  time.Duration
	PlaybackPolicy []string
	VideoQuality   string
	// CleanupHandoff 为入队的清理任务对后台 Runner 延迟可见的时长。
	CleanupHandoff time.Duration
}

// PendingRelease 为已脱离本地记录、尚待远端删除的资产。
type PendingRelease struct {
	JobID     uuid.UUID
	AssetID   string
	ChapterID uuid.UUID
}

// AssetReleaser 释放章节当前的视频资产。
// Detach 在调用方会话内写入清理任务并删除本地记录；Flush 在提交后请求远端删除，
// 成功即关闭任务，失败则留给后台 Runner 在 handoff 之后重试。
type AssetReleaser struct {
	provider      VideoProvider
	assets        VideoAssetRepository
	cleanup       AssetCleanupEnqueuer
	deleteTimeout time.Duration
	handoff       time.Duration
	log           *log.Helper
	metrics       *releaseMetrics
	now           func() time.Time
}

// NewAssetReleaser 构造 AssetReleaser。
func NewAssetReleaser(provider VideoProvider, assets VideoAssetRepository, cleanup AssetCleanupEnqueuer, cfg VideoAssetConfig, logger log.Logger) *AssetReleaser {
	timeout := cfg.DeleteTimeout
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	handoff := cfg.CleanupHandoff
	if handoff <= 0 {
		handoff = time.Minute
	}
	return &AssetReleaser{
		provider:      provider,
		assets:        assets,
		cleanup:       cleanup,
		deleteTimeout: timeout,
		handoff:       handoff,
		log:           log.NewHelper(logger),
		metrics:       newReleaseMetrics(),
		now:           time.Now,
	}
}

// Detach 在 sess 内入队清理任务并删除本地资产记录，不访问远端。
func (r *AssetReleaser) Detach(ctx context.Context, sess txmanager.Session, asset *po.VideoAsset) (*PendingRelease, error) {
	if asset == nil {
		return nil, nil
	}
	jobID, err := r.cleanup.Enqueue(ctx, sess, repositories.AssetCleanupMessage{
		AssetID:     asset.AssetID,
		ChapterID:   asset.ChapterID,
		AvailableAt: r.now().Add(r.handoff),
	})
	if err != nil {
		return nil, err
	}
	if err := r.assets.Delete(ctx, sess, asset.ID); err != nil {
		return nil, err
	}
	return &PendingRelease{JobID: jobID, AssetID: asset.AssetID, ChapterID: asset.ChapterID}, nil
}

// Flush 请求远端删除；结果不返回给调用方。
func (r *AssetReleaser) Flush(ctx context.Context, pending *PendingRelease) {
	if pending == nil {
		return
	}

	deleteCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.deleteTimeout)
	err := r.provider.DeleteAsset(deleteCtx, pending.AssetID)
	cancel()

	switch {
	case err == nil:
		r.metrics.record(ctx, "deleted")
	case errors.Is(err, mux.ErrAssetNotFound):
		r.metrics.record(ctx, "already_gone")
	default:
		r.metrics.record(ctx, "deferred")
		r.log.WithContext(ctx).Warnf("remote asset delete failed, left to cleanup runner: asset=%s chapter=%s job=%s err=%v",
			pending.AssetID, pending.ChapterID, pending.JobID, err)
		return
	}

	resolveErr := r.cleanup.Resolve(context.WithoutCancel(ctx), nil, pending.JobID, r.now())
	switch {
	case resolveErr == nil:
	case errors.Is(resolveErr, repositories.ErrCleanupLockLost):
		// Runner 已领取该任务，重复删除按 404 收敛。
	default:
		r.log.WithContext(ctx).Warnf("resolve asset cleanup job failed: job=%s err=%v", pending.JobID, resolveErr)
	}
}

// Release 在无外部事务的路径上依次执行 Detach 与 Flush，只有本地写入失败才返回错误。
func (r *AssetReleaser) Release(ctx context.Context, sess txmanager.Session, asset *po.VideoAsset) error {
	pending, err := r.Detach(ctx, sess, asset)
	if err != nil {
		return err
	}
	r.Flush(ctx, pending)
	return nil
}
