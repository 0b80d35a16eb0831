package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bionicotaku/lingo-services-course/internal/models/po"
	"github.com/bionicotaku/lingo-services-course/internal/repositories/coursedb"
	"github.com/bionicotaku/lingo-services-course/internal/repositories/mappers"

	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrCleanupLockLost 表示任务租约已被其他 worker 接管或任务已完成。
var ErrCleanupLockLost = errors.New("asset cleanup job lock lost")

// AssetCleanupMessage 描述一次待补偿的远端资产删除。
type AssetCleanupMessage struct {
	AssetID     string
	ChapterID   uuid.UUID
	AvailableAt time.Time
	LastError   string
}

// AssetCleanupRepository 封装 course.asset_cleanup_jobs 的入队与租约操作。
type AssetCleanupRepository struct {
	db      *pgxpool.Pool
	queries *coursedb.Queries
	log     *log.Helper
}

// NewAssetCleanupRepository 构造清理任务仓储。
func NewAssetCleanupRepository(db *pgxpool.Pool, logger log.Logger) *AssetCleanupRepository {
	return &AssetCleanupRepository{
		db:      db,
		queries: coursedb.New(db),
		log:     log.NewHelper(logger),
	}
}

// Enqueue 在调用方会话内插入清理任务并返回任务 ID；AvailableAt 为空时立即可领取。
func (r *AssetCleanupRepository) Enqueue(ctx context.Context, sess txmanager.Session, msg AssetCleanupMessage) (uuid.UUID, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	availableAt := msg.AvailableAt
	if availableAt.IsZero() {
		availableAt = time.Now()
	}
	var lastErr pgtype.Text
	if msg.LastError != "" {
		lastErr = pgtype.Text{String: msg.LastError, Valid: true}
	}
	jobID := uuid.New()
	if err := queries.EnqueueAssetCleanupJob(ctx, coursedb.EnqueueAssetCleanupJobParams{
		ID:          jobID,
		AssetID:     msg.AssetID,
		ChapterID:   msg.ChapterID,
		AvailableAt: mappers.ToPgTimestamptz(availableAt),
		LastError:   lastErr,
	}); err != nil {
		r.log.WithContext(ctx).Errorf("enqueue asset cleanup failed: asset=%s err=%v", msg.AssetID, err)
		return uuid.Nil, fmt.Errorf("enqueue asset cleanup: %w", err)
	}
	return jobID, nil
}

// Resolve 关闭尚未被 Runner 领取的任务；已被领取或已完成时返回 ErrCleanupLockLost。
func (r *AssetCleanupRepository) Resolve(ctx context.Context, sess txmanager.Session, jobID uuid.UUID, completedAt time.Time) error {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	affected, err := queries.ResolveAssetCleanupJob(ctx, coursedb.ResolveAssetCleanupJobParams{
		CompletedAt: mappers.ToPgTimestamptz(completedAt),
		ID:          jobID,
	})
	if err != nil {
		return fmt.Errorf("resolve asset cleanup job: %w", err)
	}
	if affected == 0 {
		return ErrCleanupLockLost
	}
	return nil
}

// ClaimPending 以 lockToken 领取一批到期任务，锁定早于 staleBefore 的任务可被重新领取。
func (r *AssetCleanupRepository) ClaimPending(ctx context.Context, availableBefore, staleBefore time.Time, limit int, lockToken string) ([]*po.AssetCleanupJob, error) {
	rows, err := r.queries.ClaimAssetCleanupJobs(ctx, coursedb.ClaimAssetCleanupJobsParams{
		LockToken:       pgtype.Text{String: lockToken, Valid: true},
		AvailableBefore: mappers.ToPgTimestamptz(availableBefore),
		StaleBefore:     mappers.ToPgTimestamptz(staleBefore),
		BatchSize:       int32(limit),
	})
	if err != nil {
		return nil, fmt.Errorf("claim asset cleanup jobs: %w", err)
	}
	jobs := make([]*po.AssetCleanupJob, 0, len(rows))
	for _, row := range rows {
		jobs = append(jobs, mappers.AssetCleanupJobFromRow(row))
	}
	return jobs, nil
}

// MarkCompleted 标记任务完成。
func (r *AssetCleanupRepository) MarkCompleted(ctx context.Context, sess txmanager.Session, jobID uuid.UUID, lockToken string, completedAt time.Time) error {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	affected, err := queries.CompleteAssetCleanupJob(ctx, coursedb.CompleteAssetCleanupJobParams{
		CompletedAt: mappers.ToPgTimestamptz(completedAt),
		ID:          jobID,
		LockToken:   pgtype.Text{String: lockToken, Valid: true},
	})
	if err != nil {
		return fmt.Errorf("complete asset cleanup job: %w", err)
	}
	if affected == 0 {
		return ErrCleanupLockLost
	}
	return nil
}

// Reschedule 将任务推迟到 nextAvailable，并记录最近一次错误。
func (r *AssetCleanupRepository) Reschedule(ctx context.Context, sess txmanager.Session, jobID uuid.UUID, lockToken string, nextAvailable time.Time, lastErr string) error {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	affected, err := queries.RescheduleAssetCleanupJob(ctx, coursedb.RescheduleAssetCleanupJobParams{
		AvailableAt: mappers.ToPgTimestamptz(nextAvailable),
		LastError:   pgtype.Text{String: lastErr, Valid: true},
		ID:          jobID,
		LockToken:   pgtype.Text{String: lockToken, Valid: true},
	})
	if err != nil {
		return fmt.Errorf("reschedule asset cleanup job: %w", err)
	}
	if affected == 0 {
		return ErrCleanupLockLost
	}
	return nil
}

// Abandon 在重试耗尽后关闭任务，保留最后错误供排查。
func (r *AssetCleanupRepository) Abandon(ctx context.Context, sess txmanager.Session, jobID uuid.UUID, lockToken string, at time.Time, lastErr string) error {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	affected, err := queries.AbandonAssetCleanupJob(ctx, coursedb.AbandonAssetCleanupJobParams{
		CompletedAt: mappers.ToPgTimestamptz(at),
		LastError:   pgtype.Text{String: lastErr, Valid: true},
		ID:          jobID,
		LockToken:   pgtype.Text{String: lockToken, Valid: true},
	})
	if err != nil {
		return fmt.Errorf("abandon asset cleanup job: %w", err)
	}
	if affected == 0 {
		return ErrCleanupLockLost
	}
	return nil
}

// CountPending 返回未完成任务数量。
func (r *AssetCleanupRepository) CountPending(ctx context.Context) (int64, error) {
	count, err := r.queries.CountPendingAssetCleanupJobs(ctx)
	if err != nil {
		return 0, fmt.Errorf("count pending asset cleanup jobs: %w", err)
	}
	return count, nil
}
