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

// ErrChapterNotFound 表示章节不存在或不属于目标课程。
var ErrChapterNotFound = errors.New("chapter not found")

// ChapterRepository 提供访问 course.chapters 的接口。
type ChapterRepository struct {
	db      *pgxpool.Pool
	queries *coursedb.Queries
	log     *log.Helper
}

// NewChapterRepository 构造章节仓储。
func NewChapterRepository(db *pgxpool.Pool, logger log.Logger) *ChapterRepository {
	return &ChapterRepository{
		db:      db,
		queries: coursedb.New(db),
		log:     log.NewHelper(logger),
	}
}

// CreateChapterInput 描述新建章节所需字段。
type CreateChapterInput struct {
	ID       uuid.UUID
	CourseID uuid.UUID
	Title    string
	Position int32
}

// UpdateChapterInput 描述章节部分更新，nil 字段不修改。
type UpdateChapterInput struct {
	ChapterID   uuid.UUID
	Title       *string
	Description *string
	VideoURL    *string
	IsFree      *bool
}

// IsEmpty 判断是否没有任何待写入字段。
func (in UpdateChapterInput) IsEmpty() bool {
	return in.Title == nil && in.Description == nil && in.VideoURL == nil && in.IsFree == nil
}

// Create 插入新章节，默认未发布、非免费。
func (r *ChapterRepository) Create(ctx context.Context, sess txmanager.Session, input CreateChapterInput) (*po.Chapter, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	if input.ID == uuid.Nil {
		input.ID = uuid.New()
	}
	row, err := queries.InsertChapter(ctx, coursedb.InsertChapterParams{
		ID:       input.ID,
		CourseID: input.CourseID,
		Title:    input.Title,
		Position: input.Position,
	})
	if err != nil {
		r.log.WithContext(ctx).Errorf("insert chapter failed: course=%s err=%v", input.CourseID, err)
		return nil, fmt.Errorf("insert chapter: %w", err)
	}
	return mappers.ChapterFromRow(row), nil
}

// GetInCourse 查询属于指定课程的章节。
func (r *ChapterRepository) GetInCourse(ctx context.Context, sess txmanager.Session, courseID, chapterID uuid.UUID) (*po.Chapter, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	row, err := queries.GetChapterInCourse(ctx, coursedb.GetChapterInCourseParams{ID: chapterID, CourseID: courseID})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrChapterNotFound
		}
		return nil, fmt.Errorf("get chapter in course: %w", err)
	}
	return mappers.ChapterFromRow(row), nil
}

// GetPublishedInCourse 查询课程内已发布的章节。
func (r *ChapterRepository) GetPublishedInCourse(ctx context.Context, sess txmanager.Session, courseID, chapterID uuid.UUID) (*po.Chapter, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	row, err := queries.GetPublishedChapterInCourse(ctx, coursedb.GetPublishedChapterInCourseParams{ID: chapterID, CourseID: courseID})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrChapterNotFound
		}
		return nil, fmt.Errorf("get published chapter: %w", err)
	}
	return mappers.ChapterFromRow(row), nil
}

// FirstByPosition 返回课程中 position 最小的章节；课程为空时返回 ErrChapterNotFound。
func (r *ChapterRepository) FirstByPosition(ctx context.Context, sess txmanager.Session, courseID uuid.UUID) (*po.Chapter, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	row, err := queries.GetFirstChapterByPosition(ctx, courseID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrChapterNotFound
		}
		return nil, fmt.Errorf("get first chapter: %w", err)
	}
	return mappers.ChapterFromRow(row), nil
}

// NextPublished 返回 position 大于给定值的首个已发布章节。
func (r *ChapterRepository) NextPublished(ctx context.Context, sess txmanager.Session, courseID uuid.UUID, position int32) (*po.Chapter, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	row, err := queries.GetNextPublishedChapter(ctx, coursedb.GetNextPublishedChapterParams{CourseID: courseID, Position: position})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrChapterNotFound
		}
		return nil, fmt.Errorf("get next published chapter: %w", err)
	}
	return mappers.ChapterFromRow(row), nil
}

// ListByCourse 按 position、created_at、id 升序返回课程下所有章节。
func (r *ChapterRepository) ListByCourse(ctx context.Context, sess txmanager.Session, courseID uuid.UUID) ([]*po.Chapter, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	rows, err := queries.ListChaptersByCourse(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("list chapters: %w", err)
	}
	return mappers.ChaptersFromRows(rows), nil
}

// CountPublished 统计课程下已发布章节数量。
func (r *ChapterRepository) CountPublished(ctx context.Context, sess txmanager.Session, courseID uuid.UUID) (int64, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	count, err := queries.CountPublishedChapters(ctx, courseID)
	if err != nil {
		return 0, fmt.Errorf("count published chapters: %w", err)
	}
	return count, nil
}

// Update 执行部分字段更新。
func (r *ChapterRepository) Update(ctx context.Context, sess txmanager.Session, input UpdateChapterInput) (*po.Chapter, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	params := mappers.BuildUpdateChapterParams(input.ChapterID, input.Title, input.Description, input.VideoURL, input.IsFree)
	row, err := queries.UpdateChapter(ctx, params)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrChapterNotFound
		}
		r.log.WithContext(ctx).Errorf("update chapter failed: id=%s err=%v", input.ChapterID, err)
		return nil, fmt.Errorf("update chapter: %w", err)
	}
	return mappers.ChapterFromRow(row), nil
}

// SetPublished 修改章节发布状态。
func (r *ChapterRepository) SetPublished(ctx context.Context, sess txmanager.Session, chapterID uuid.UUID, published bool) (*po.Chapter, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	row, err := queries.SetChapterPublished(ctx, coursedb.SetChapterPublishedParams{ID: chapterID, IsPublished: published})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrChapterNotFound
		}
		return nil, fmt.Errorf("set chapter published: %w", err)
	}
	return mappers.ChapterFromRow(row), nil
}

// UpdatePosition 覆盖章节 position。
func (r *ChapterRepository) UpdatePosition(ctx context.Context, sess txmanager.Session, chapterID uuid.UUID, position int32) (*po.Chapter, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	row, err := queries.UpdateChapterPosition(ctx, coursedb.UpdateChapterPositionParams{ID: chapterID, Position: position})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrChapterNotFound
		}
		return nil, fmt.Errorf("update chapter position: %w", err)
	}
	return mappers.ChapterFromRow(row), nil
}

// Delete 删除章节，video_assets / user_progress 通过外键级联删除。
func (r *ChapterRepository) Delete(ctx context.Context, sess txmanager.Session, chapterID uuid.UUID) error {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	affected, err := queries.DeleteChapter(ctx, chapterID)
	if err != nil {
		r.log.WithContext(ctx).Errorf("delete chapter failed: id=%s err=%v", chapterID, err)
		return fmt.Errorf("delete chapter: %w", err)
	}
	if affected == 0 {
		return ErrChapterNotFound
	}
	return nil
}
