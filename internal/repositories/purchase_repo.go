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

// ErrPurchaseNotFound 表示用户未购买课程。
var ErrPurchaseNotFound = errors.New("purchase not found")

// PurchaseRepository 提供访问 course.purchases 的接口。
type PurchaseRepository struct {
	db      *pgxpool.Pool
	queries *coursedb.Queries
	log     *log.Helper
}

// NewPurchaseRepository 构造购买记录仓储。
func NewPurchaseRepository(db *pgxpool.Pool, logger log.Logger) *PurchaseRepository {
	return &PurchaseRepository{
		db:      db,
		queries: coursedb.New(db),
		log:     log.NewHelper(logger),
	}
}

// Create 写入购买记录，同一 (user, course) 重复写入由唯一约束拒绝。
func (r *PurchaseRepository) Create(ctx context.Context, sess txmanager.Session, userID string, courseID uuid.UUID) (*po.Purchase, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	row, err := queries.CreatePurchase(ctx, coursedb.CreatePurchaseParams{
		ID:       uuid.New(),
		UserID:   userID,
		CourseID: courseID,
	})
	if err != nil {
		return nil, fmt.Errorf("create purchase: %w", err)
	}
	return mappers.PurchaseFromRow(row), nil
}

// Get 查询用户对课程的购买记录。
func (r *PurchaseRepository) Get(ctx context.Context, sess txmanager.Session, userID string, courseID uuid.UUID) (*po.Purchase, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	row, err := queries.GetPurchase(ctx, coursedb.GetPurchaseParams{UserID: userID, CourseID: courseID})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPurchaseNotFound
		}
		return nil, fmt.Errorf("get purchase: %w", err)
	}
	return mappers.PurchaseFromRow(row), nil
}
