package services

import (
	"context"
	"time"

	"github.com/bionicotaku/lingo-services-course/internal/clients/mux"
	"github.com/bionicotaku/lingo-services-course/internal/models/po"
	"github.com/bionicotaku/lingo-services-course/internal/models/vo"
	"github.com/bionicotaku/lingo-services-course/internal/repositories"

	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/google/uuid"
)

// CourseRepository 定义章节用例需要的课程读写能力。
type CourseRepository interface {
	GetOwned(ctx context.Context, sess txmanager.Session, courseID uuid.UUID, userID string) (*po.Course, error)
	GetPublished(ctx context.Context, sess txmanager.Session, courseID uuid.UUID) (*po.Course, error)
	Unpublish(ctx context.Context, sess txmanager.Session, courseID uuid.UUID) error
}

// ChapterRepository 定义章节持久化能力。
type ChapterRepository interface {
	Create(ctx context.Context, sess txmanager.Session, input repositories.CreateChapterInput) (*po.Chapter, error)
	GetInCourse(ctx context.Context, sess txmanager.Session, courseID, chapterID uuid.UUID) (*po.Chapter, error)
	GetPublishedInCourse(ctx context.Context, sess txmanager.Session, courseID, chapterID uuid.UUID) (*po.Chapter, error)
	FirstByPosition(ctx context.Context, sess txmanager.Session, courseID uuid.UUID) (*po.Chapter, error)
	NextPublished(ctx context.Context, sess txmanager.Session, courseID uuid.UUID, position int32) (*po.Chapter, error)
	ListByCourse(ctx context.Context, sess txmanager.Session, courseID uuid.UUID) ([]*po.Chapter, error)
	CountPublished(ctx context.Context, sess txmanager.Session, courseID uuid.UUID) (int64, error)
	Update(ctx context.Context, sess txmanager.Session, input repositories.UpdateChapterInput) (*po.Chapter, error)
	SetPublished(ctx context.Context, sess txmanager.Session, chapterID uuid.UUID, published bool) (*po.Chapter, error)
	UpdatePosition(ctx context.Context, sess txmanager.Session, chapterID uuid.UUID, position int32) (*po.Chapter, error)
	Delete(ctx context.Context, sess txmanager.Session, chapterID uuid.UUID) error
}

// PurchaseRepository 判定用户是否购买课程。
type PurchaseRepository interface {
	Get(ctx context.Context, sess txmanager.Session, userID string, courseID uuid.UUID) (*po.Purchase, error)
}

// AttachmentRepository 读取课程附件。
type AttachmentRepository interface {
	ListByCourse(ctx context.Context, sess txmanager.Session, courseID uuid.UUID) ([]*po.Attachment, error)
}

// UserProgressRepository 读写学习进度。
type UserProgressRepository interface {
	Get(ctx context.Context, sess txmanager.Session, userID string, chapterID uuid.UUID) (*po.UserProgress, error)
	Upsert(ctx context.Context, sess txmanager.Session, userID string, chapterID uuid.UUID, completed bool, now time.Time) (*po.UserProgress, error)
}

// VideoAssetRepository 读写章节视频资产。
type VideoAssetRepository interface {
	GetByChapter(ctx context.Context, sess txmanager.Session, chapterID uuid.UUID) (*po.VideoAsset, error)
	Create(ctx context.Context, sess txmanager.Session, input repositories.CreateVideoAssetInput) (*po.VideoAsset, error)
	Delete(ctx context.Context, sess txmanager.Session, id uuid.UUID) error
}

// AssetCleanupEnqueuer 记录待远端删除的资产；提交后远端删除成功时关闭任务。
type AssetCleanupEnqueuer interface {
	Enqueue(ctx context.Context, sess txmanager.Session, msg repositories.AssetCleanupMessage) (uuid.UUID, error)
	Resolve(ctx context.Context, sess txmanager.Session, jobID uuid.UUID, completedAt time.Time) error
}

// VideoProvider 抽象视频托管方。
type VideoProvider interface {
	CreateAsset(ctx context.Context, input mux.CreateAssetInput) (*mux.CreatedAsset, error)
	DeleteAsset(ctx context.Context, assetID string) error
}

// ChapterServiceInterface 抽象章节生命周期用例，便于控制器测试替换。
type ChapterServiceInterface interface {
	Get(ctx context.Context, input GetChapterInput) (*vo.ChapterDetail, error)
	Delete(ctx context.Context, input ChapterRef) error
	Publish(ctx context.Context, input ChapterRef) (*vo.Chapter, error)
	Unpublish(ctx context.Context, input ChapterRef) (*vo.Chapter, error)
	UpdateProgress(ctx context.Context, input UpdateProgressInput) (*vo.UserProgress, error)
	Reorder(ctx context.Context, input ReorderChaptersInput) ([]*vo.Chapter, error)
	Create(ctx context.Context, input CreateChapterInput) ([]*vo.Chapter, error)
	Update(ctx context.Context, input UpdateChapterInput) (*vo.Chapter, error)
}

var (
	_ CourseRepository       = (*repositories.CourseRepository)(nil)
	_ ChapterRepository      = (*repositories.ChapterRepository)(nil)
	_ PurchaseRepository     = (*repositories.PurchaseRepository)(nil)
	_ AttachmentRepository   = (*repositories.AttachmentRepository)(nil)
	_ UserProgressRepository = (*repositories.UserProgressRepository)(nil)
	_ VideoAssetRepository   = (*repositories.VideoAssetRepository)(nil)
	_ AssetCleanupEnqueuer   = (*repositories.AssetCleanupRepository)(nil)
	_ VideoProvider          = (*mux.Client)(nil)

	_ ChapterServiceInterface = (*ChapterService)(nil)
)
