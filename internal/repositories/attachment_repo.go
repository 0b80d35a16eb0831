package repositories

import (
	"context"
	"fmt"

	"github.com/bionicotaku/lingo-services-course/internal/models/po"
	"github.com/bionicotaku/lingo-services-course/internal/repositories/coursedb"
	"github.com/bionicotaku/lingo-services-course/internal/repositories/mappers"

	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AttachmentRepository 提供访问 course.attachments 的接口。
type AttachmentRepository struct {
	db      *pgxpool.Pool
	queries *coursedb.Queries
	log     *log.Helper
}

// NewAttachmentRepository 构造附件仓储。
func NewAttachmentRepository(db *pgxpool.Pool, logger log.Logger) *AttachmentRepository {
	return &AttachmentRepository{
		db:      db,
		queries: coursedb.New(db),
		log:     log.NewHelper(logger),
	}
}

// Create 新增附件。
func (r *AttachmentRepository) Create(ctx context.Context, sess txmanager.Session, courseID uuid.UUID, name, url string) (*po.Attachment, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	row, err := queries.CreateAttachment(ctx, coursedb.CreateAttachmentParams{
		ID:       uuid.New(),
		CourseID: courseID,
		Name:     name,
		Url:      url,
	})
	if err != nil {
		return nil, fmt.Errorf("create attachment: %w", err)
	}
	return mappers.AttachmentFromRow(row), nil
}

// ListByCourse 返回课程全部附件。
func (r *AttachmentRepository) ListByCourse(ctx context.Context, sess txmanager.Session, courseID uuid.UUID) ([]*po.Attachment, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	rows, err := queries.ListAttachmentsByCourse(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("list attachments: %w", err)
	}
	items := make([]*po.Attachment, 0, len(rows))
	for _, row := range rows {
		items = append(items, mappers.AttachmentFromRow(row))
	}
	return items, nil
}
