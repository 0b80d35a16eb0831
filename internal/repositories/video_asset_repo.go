package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/bionicotaku/lingo-services-course/internal/models/po"
	"github.com/bionicotaku/lingo-services-course/internal/repositories/coursedb"
	"github.com/bionicotaku/lingo-services-course/internal/repositories/mappers"

	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrVideoAssetNotFound 表示章节没有关联视频资产。
var ErrVideoAssetNotFound = errors.New("video asset not found")

// VideoAssetRepository 提供访问 course.video_assets 的接口。
type VideoAssetRepository struct {
	db      *pgxpool.Pool
	queries *coursedb.Queries
	log     *log.Helper
}

// NewVideoAssetRepository 构造视频资产仓储。
func NewVideoAssetRepository(db *pgxpool.Pool, logger log.Logger) *VideoAssetRepository {
	return &VideoAssetRepository{
		db:      db,
		queries: coursedb.New(db),
		log:     log.NewHelper(logger),
	}
}

// CreateVideoAssetInput 描述新视频资产。
type CreateVideoAssetInput struct {
	ChapterID  uuid.UUID
	AssetID    string
	PlaybackID *string
}

// GetByChapter 返回章节的视频资产。
func (r *VideoAssetRepository) GetByChapter(ctx context.Context, sess txmanager.Session, chapterID uuid.UUID) (*po.VideoAsset, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	row, err := queries.GetVideoAssetByChapter(ctx, chapterID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrVideoAssetNotFound
		}
		return nil, fmt.Errorf("get video asset: %w", err)
	}
	return mappers.VideoAssetFromRow(row), nil
}

// Create 写入视频资产，chapter_id 唯一约束保证一对一。
func (r *VideoAssetRepository) Create(ctx context.Context, sess txmanager.Session, input CreateVideoAssetInput) (*po.VideoAsset, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	row, err := queries.InsertVideoAsset(ctx, coursedb.InsertVideoAssetParams{
		ID:         uuid.New(),
		ChapterID:  input.ChapterID,
		AssetID:    input.AssetID,
		PlaybackID: mappers.ToPgText(input.PlaybackID),
	})
	if err != nil {
		r.log.WithContext(ctx).Errorf("insert video asset failed: chapter=%s asset=%s err=%v", input.ChapterID, input.AssetID, err)
		return nil, fmt.Errorf("insert video asset: %w", err)
	}
	return mappers.VideoAssetFromRow(row), nil
}

// Delete 删除视频资产记录；记录已不存在时视为成功。
func (r *VideoAssetRepository) Delete(ctx context.Context, sess txmanager.Session, id uuid.UUID) error {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	if _, err := queries.DeleteVideoAsset(ctx, id); err != nil {
		return fmt.Errorf("delete video asset: %w", err)
	}
	return nil
}
