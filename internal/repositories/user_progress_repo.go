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
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrUserProgressNotFound 表示用户尚未记录该章节进度。
var ErrUserProgressNotFound = errors.New("user progress not found")

// UserProgressRepository 提供访问 course.user_progress 的接口。
type UserProgressRepository struct {
	db      *pgxpool.Pool
	queries *coursedb.Queries
	log     *log.Helper
}

// NewUserProgressRepository 构造进度仓储。
func NewUserProgressRepository(db *pgxpool.Pool, logger log.Logger) *UserProgressRepository {
	return &UserProgressRepository{
		db:      db,
		queries: coursedb.New(db),
		log:     log.NewHelper(logger),
	}
}

// Get 查询 (user, chapter) 进度。
func (r *UserProgressRepository) Get(ctx context.Context, sess txmanager.Session, userID string, chapterID uuid.UUID) (*po.UserProgress, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	row, err := queries.GetUserProgress(ctx, coursedb.GetUserProgressParams{UserID: userID, ChapterID: chapterID})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserProgressNotFound
		}
		return nil, fmt.Errorf("get user progress: %w", err)
	}
	return mappers.UserProgressFromRow(row), nil
}

// Upsert 写入或更新进度；新行的 created_at 与 updated_at 相同。
func (r *UserProgressRepository) Upsert(ctx context.Context, sess txmanager.Session, userID string, chapterID uuid.UUID, completed bool, now time.Time) (*po.UserProgress, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	row, err := queries.UpsertUserProgress(ctx, coursedb.UpsertUserProgressParams{
		ID:          uuid.New(),
		UserID:      userID,
		ChapterID:   chapterID,
		IsCompleted: completed,
		Now:         mappers.ToPgTimestamptz(now),
	})
	if err != nil {
		r.log.WithContext(ctx).Errorf("upsert user progress failed: user=%s chapter=%s err=%v", userID, chapterID, err)
		return nil, fmt.Errorf("upsert user progress: %w", err)
	}
	return mappers.UserProgressFromRow(row), nil
}
