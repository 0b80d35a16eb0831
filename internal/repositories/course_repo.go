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

// ErrCourseNotFound 表示课程不存在或不属于调用方。
var ErrCourseNotFound = errors.New("course not found")

// CourseRepository 提供访问 course.courses 的接口。
type CourseRepository struct {
	db      *pgxpool.Pool
	queries *coursedb.Queries
	log     *log.Helper
}

// NewCourseRepository 构造课程仓储。
func NewCourseRepository(db *pgxpool.Pool, logger log.Logger) *CourseRepository {
	return &CourseRepository{
		db:      db,
		queries: coursedb.New(db),
		log:     log.NewHelper(logger),
	}
}

// CreateCourseInput 描述课程写入参数。
type CreateCourseInput struct {
	ID          uuid.UUID
	UserID      string
	Title       string
	PriceCents  *int64
	IsPublished bool
}

// Create 插入课程记录。课程管理不在本服务范围内，主要供测试与数据准备使用。
func (r *CourseRepository) Create(ctx context.Context, sess txmanager.Session, input CreateCourseInput) (*po.Course, error) {
	if input.ID == uuid.Nil {
		input.ID = uuid.New()
	}
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	row, err := queries.CreateCourse(ctx, coursedb.CreateCourseParams{
		ID:          input.ID,
		UserID:      input.UserID,
		Title:       input.Title,
		PriceCents:  mappers.ToPgInt8(input.PriceCents),
		IsPublished: input.IsPublished,
	})
	if err != nil {
		r.log.WithContext(ctx).Errorf("create course failed: id=%s err=%v", input.ID, err)
		return nil, fmt.Errorf("create course: %w", err)
	}
	return mappers.CourseFromRow(row), nil
}

// GetOwned 查询属于指定用户的课程，不属于该用户时同样返回 ErrCourseNotFound。
func (r *CourseRepository) GetOwned(ctx context.Context, sess txmanager.Session, courseID uuid.UUID, userID string) (*po.Course, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	row, err := queries.GetOwnedCourse(ctx, coursedb.GetOwnedCourseParams{ID: courseID, UserID: userID})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCourseNotFound
		}
		return nil, fmt.Errorf("get owned course: %w", err)
	}
	return mappers.CourseFromRow(row), nil
}

// GetPublished 查询已发布课程。
func (r *CourseRepository) GetPublished(ctx context.Context, sess txmanager.Session, courseID uuid.UUID) (*po.Course, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	row, err := queries.GetPublishedCourse(ctx, courseID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCourseNotFound
		}
		return nil, fmt.Errorf("get published course: %w", err)
	}
	return mappers.CourseFromRow(row), nil
}

// Unpublish 将课程标记为未发布。
func (r *CourseRepository) Unpublish(ctx context.Context, sess txmanager.Session, courseID uuid.UUID) error {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	affected, err := queries.UnpublishCourse(ctx, courseID)
	if err != nil {
		r.log.WithContext(ctx).Errorf("unpublish course failed: id=%s err=%v", courseID, err)
		return fmt.Errorf("unpublish course: %w", err)
	}
	if affected == 0 {
		return ErrCourseNotFound
	}
	return nil
}
