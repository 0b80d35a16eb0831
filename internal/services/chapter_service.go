package services

import (
	"context"
	stdErrors "errors"
	"fmt"
	"strings"
	"time"

	"github.com/bionicotaku/lingo-services-course/internal/models/po"
	"github.com/bionicotaku/lingo-services-course/internal/models/vo"
	"github.com/bionicotaku/lingo-services-course/internal/repositories"

	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
)

// ChapterRef 定位课程中的一个章节，UserID 为调用方。
type ChapterRef struct {
	UserID    string
	CourseID  uuid.UUID
	ChapterID uuid.UUID
}

// GetChapterInput 描述章节详情查询参数。
type GetChapterInput = ChapterRef

// UpdateProgressInput 描述学习进度写入参数。
type UpdateProgressInput struct {
	UserID      string
	ChapterID   uuid.UUID
	IsCompleted bool
}

// ChapterPosition 为重排输入中的单项。
type ChapterPosition struct {
	ChapterID uuid.UUID
	Position  int32
}

// ReorderChaptersInput 描述章节重排参数。
type ReorderChaptersInput struct {
	UserID   string
	CourseID uuid.UUID
	Items    []ChapterPosition
}

// CreateChapterInput 描述新建章节参数。
type CreateChapterInput struct {
	UserID   string
	CourseID uuid.UUID
	Title    string
}

// UpdateChapterInput 描述章节部分更新参数。
type UpdateChapterInput struct {
	ChapterRef
	Ops []ChapterPatchOp
}

// ChapterService 编排章节生命周期：所有权校验、发布约束、课程发布状态联动与视频资产同步。
type ChapterService struct {
	courses     CourseRepository
	chapters    ChapterRepository
	purchases   PurchaseRepository
	attachments AttachmentRepository
	progress    UserProgressRepository
	assets      VideoAssetRepository
	releaser    *AssetReleaser
	videoSync   *VideoAssetSync
	txManager   txmanager.Manager
	log         *log.Helper
	now         func() time.Time
}

// NewChapterService 构造 ChapterService。
func NewChapterService(
	courses CourseRepository,
	chapters ChapterRepository,
	purchases PurchaseRepository,
	attachments AttachmentRepository,
	progress UserProgressRepository,
	assets VideoAssetRepository,
	releaser *AssetReleaser,
	videoSync *VideoAssetSync,
	tx txmanager.Manager,
	logger log.Logger,
) *ChapterService {
	return &ChapterService{
		courses:     courses,
		chapters:    chapters,
		purchases:   purchases,
		attachments: attachments,
		progress:    progress,
		assets:      assets,
		releaser:    releaser,
		videoSync:   videoSync,
		txManager:   tx,
		log:         log.NewHelper(logger),
		now:         time.Now,
	}
}

// Get 返回已发布课程中已发布章节的详情。
// 附件、视频资产与下一章仅在章节免费或用户已购买时返回。
func (s *ChapterService) Get(ctx context.Context, input GetChapterInput) (*vo.ChapterDetail, error) {
	var detail *vo.ChapterDetail
	err := s.txManager.WithinReadOnlyTx(ctx, txmanager.TxOptions{}, func(txCtx context.Context, sess txmanager.Session) error {
		course, err := s.courses.GetPublished(txCtx, sess, input.CourseID)
		if err != nil {
			return err
		}
		chapter, err := s.chapters.GetPublishedInCourse(txCtx, sess, input.CourseID, input.ChapterID)
		if err != nil {
			return err
		}

		purchase, err := s.purchases.Get(txCtx, sess, input.UserID, input.CourseID)
		if err != nil && !stdErrors.Is(err, repositories.ErrPurchaseNotFound) {
			return err
		}
		progress, err := s.progress.Get(txCtx, sess, input.UserID, input.ChapterID)
		if err != nil && !stdErrors.Is(err, repositories.ErrUserProgressNotFound) {
			return err
		}

		detail = &vo.ChapterDetail{
			Chapter:      vo.NewChapterFromPO(chapter),
			PriceCents:   course.PriceCents,
			Purchase:     toPurchaseVO(purchase),
			UserProgress: toUserProgressVO(progress),
			Attachments:  []vo.Attachment{},
		}

		if !chapter.IsFree && purchase == nil {
			return nil
		}

		attachments, err := s.attachments.ListByCourse(txCtx, sess, input.CourseID)
		if err != nil {
			return err
		}
		for _, a := range attachments {
			detail.Attachments = append(detail.Attachments, vo.Attachment{ID: a.ID.String(), Name: a.Name, URL: a.URL})
		}

		asset, err := s.assets.GetByChapter(txCtx, sess, chapter.ID)
		switch {
		case err == nil:
			detail.VideoAsset = &vo.VideoAsset{ID: asset.ID.String(), AssetID: asset.AssetID, PlaybackID: asset.PlaybackID}
		case !stdErrors.Is(err, repositories.ErrVideoAssetNotFound):
			return err
		}

		next, err := s.chapters.NextPublished(txCtx, sess, input.CourseID, chapter.Position)
		switch {
		case err == nil:
			detail.NextChapter = vo.NewChapterFromPO(next)
		case !stdErrors.Is(err, repositories.ErrChapterNotFound):
			return err
		}
		return nil
	})
	if err != nil {
		return nil, s.translate(ctx, "get chapter", err)
	}
	return detail, nil
}

// Delete 删除章节及其视频资产；课程不再有已发布章节时取消课程发布。
// 远端资产删除在提交后进行，失败时由事务内写入的清理任务兜底。
func (s *ChapterService) Delete(ctx context.Context, input ChapterRef) error {
	var pending *PendingRelease
	err := s.txManager.WithinTx(ctx, txmanager.TxOptions{}, func(txCtx context.Context, sess txmanager.Session) error {
		pending = nil
		chapter, err := s.loadOwnedChapter(txCtx, sess, input)
		if err != nil {
			return err
		}

		if chapter.VideoURL != nil {
			asset, err := s.assets.GetByChapter(txCtx, sess, chapter.ID)
			switch {
			case err == nil:
				if pending, err = s.releaser.Detach(txCtx, sess, asset); err != nil {
					return err
				}
			case !stdErrors.Is(err, repositories.ErrVideoAssetNotFound):
				return err
			}
		}

		if err := s.chapters.Delete(txCtx, sess, chapter.ID); err != nil {
			return err
		}
		return s.syncCoursePublication(txCtx, sess, input.CourseID)
	})
	if err != nil {
		return s.translate(ctx, "delete chapter", err)
	}
	s.releaser.Flush(ctx, pending)
	s.log.WithContext(ctx).Infof("chapter deleted: course=%s chapter=%s", input.CourseID, input.ChapterID)
	return nil
}

// Publish 校验描述、视频地址与视频资产齐备后发布章节，不修改课程发布状态。
func (s *ChapterService) Publish(ctx context.Context, input ChapterRef) (*vo.Chapter, error) {
	var published *po.Chapter
	err := s.txManager.WithinTx(ctx, txmanager.TxOptions{}, func(txCtx context.Context, sess txmanager.Session) error {
		chapter, err := s.loadOwnedChapter(txCtx, sess, input)
		if err != nil {
			return err
		}
		if chapter.Description == nil || chapter.VideoURL == nil {
			return ErrChapterMissingRequiredField
		}
		if _, err := s.assets.GetByChapter(txCtx, sess, chapter.ID); err != nil {
			if stdErrors.Is(err, repositories.ErrVideoAssetNotFound) {
				return ErrChapterMissingRequiredField
			}
			return err
		}
		published, err = s.chapters.SetPublished(txCtx, sess, chapter.ID, true)
		return err
	})
	if err != nil {
		return nil, s.translate(ctx, "publish chapter", err)
	}
	return vo.NewChapterFromPO(published), nil
}

// Unpublish 取消章节发布；若课程已无已发布章节则同时取消课程发布。
func (s *ChapterService) Unpublish(ctx context.Context, input ChapterRef) (*vo.Chapter, error) {
	var unpublished *po.Chapter
	err := s.txManager.WithinTx(ctx, txmanager.TxOptions{}, func(txCtx context.Context, sess txmanager.Session) error {
		chapter, err := s.loadOwnedChapter(txCtx, sess, input)
		if err != nil {
			return err
		}
		unpublished, err = s.chapters.SetPublished(txCtx, sess, chapter.ID, false)
		if err != nil {
			return err
		}
		return s.syncCoursePublication(txCtx, sess, input.CourseID)
	})
	if err != nil {
		return nil, s.translate(ctx, "unpublish chapter", err)
	}
	return vo.NewChapterFromPO(unpublished), nil
}

// UpdateProgress 写入 (user, chapter) 完成状态，不做所有权或发布校验。
func (s *ChapterService) UpdateProgress(ctx context.Context, input UpdateProgressInput) (*vo.UserProgress, error) {
	record, err := s.progress.Upsert(ctx, nil, input.UserID, input.ChapterID, input.IsCompleted, s.now().UTC())
	if err != nil {
		return nil, s.translate(ctx, "update progress", err)
	}
	return toUserProgressVO(record), nil
}

// Reorder 按输入顺序逐个覆盖章节 position，最后返回课程的完整章节列表。
// 写入不在同一事务内，中途失败时已写入的 position 保留。
func (s *ChapterService) Reorder(ctx context.Context, input ReorderChaptersInput) ([]*vo.Chapter, error) {
	if _, err := s.courses.GetOwned(ctx, nil, input.CourseID, input.UserID); err != nil {
		return nil, s.translate(ctx, "reorder chapters", err)
	}
	for _, item := range input.Items {
		if _, err := s.chapters.UpdatePosition(ctx, nil, item.ChapterID, item.Position); err != nil {
			return nil, s.translate(ctx, "reorder chapters", err)
		}
	}
	chapters, err := s.chapters.ListByCourse(ctx, nil, input.CourseID)
	if err != nil {
		return nil, s.translate(ctx, "reorder chapters", err)
	}
	return toChapterVOs(chapters), nil
}

// Create 新建章节，position 取课程中最小 position + 1，空课程为 1。
func (s *ChapterService) Create(ctx context.Context, input CreateChapterInput) ([]*vo.Chapter, error) {
	var chapters []*po.Chapter
	err := s.txManager.WithinTx(ctx, txmanager.TxOptions{}, func(txCtx context.Context, sess txmanager.Session) error {
		if _, err := s.courses.GetOwned(txCtx, sess, input.CourseID, input.UserID); err != nil {
			return err
		}
		// 归属校验先于参数校验，非所有者一律 NotFound。
		title := strings.TrimSpace(input.Title)
		if title == "" {
			return errors.BadRequest(ReasonChapterInvalidArgument, "title is required")
		}

		position := int32(1)
		first, err := s.chapters.FirstByPosition(txCtx, sess, input.CourseID)
		switch {
		case err == nil:
			position = first.Position + 1
		case !stdErrors.Is(err, repositories.ErrChapterNotFound):
			return err
		}

		if _, err := s.chapters.Create(txCtx, sess, repositories.CreateChapterInput{
			CourseID: input.CourseID,
			Title:    title,
			Position: position,
		}); err != nil {
			return err
		}
		chapters, err = s.chapters.ListByCourse(txCtx, sess, input.CourseID)
		return err
	})
	if err != nil {
		return nil, s.translate(ctx, "create chapter", err)
	}
	return toChapterVOs(chapters), nil
}

// Update 按顺序应用补丁操作，字段变更在最后一次性写入。
// videoUrl 操作会立即同步视频资产，托管方失败时整个更新中止且章节记录不被写入。
func (s *ChapterService) Update(ctx context.Context, input UpdateChapterInput) (*vo.Chapter, error) {
	chapter, err := s.loadOwnedChapter(ctx, nil, input.ChapterRef)
	if err != nil {
		return nil, s.translate(ctx, "update chapter", err)
	}

	pending := repositories.UpdateChapterInput{ChapterID: chapter.ID}
	for _, op := range input.Ops {
		if applyField(&pending, op) {
			continue
		}
		videoOp, ok := op.(SetChapterVideoURL)
		if !ok {
			continue
		}
		url := videoOp.VideoURL
		pending.VideoURL = &url
		if _, err := s.videoSync.Sync(ctx, nil, chapter.ID, url); err != nil {
			return nil, s.translate(ctx, "sync video asset", err)
		}
	}

	if pending.IsEmpty() {
		return vo.NewChapterFromPO(chapter), nil
	}
	updated, err := s.chapters.Update(ctx, nil, pending)
	if err != nil {
		return nil, s.translate(ctx, "update chapter", err)
	}
	return vo.NewChapterFromPO(updated), nil
}

func (s *ChapterService) loadOwnedChapter(ctx context.Context, sess txmanager.Session, ref ChapterRef) (*po.Chapter, error) {
	if _, err := s.courses.GetOwned(ctx, sess, ref.CourseID, ref.UserID); err != nil {
		return nil, err
	}
	return s.chapters.GetInCourse(ctx, sess, ref.CourseID, ref.ChapterID)
}

// syncCoursePublication 在课程没有已发布章节时取消课程发布；每次调用都重新统计。
func (s *ChapterService) syncCoursePublication(ctx context.Context, sess txmanager.Session, courseID uuid.UUID) error {
	count, err := s.chapters.CountPublished(ctx, sess, courseID)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	if err := s.courses.Unpublish(ctx, sess, courseID); err != nil {
		return err
	}
	s.log.WithContext(ctx).Infof("course unpublished: no published chapters left: course=%s", courseID)
	return nil
}

// translate 将仓储与基础设施错误映射为 kratos 错误。
func (s *ChapterService) translate(ctx context.Context, op string, err error) error {
	var kerr *errors.Error
	if stdErrors.As(err, &kerr) {
		return kerr
	}
	switch {
	case stdErrors.Is(err, repositories.ErrCourseNotFound):
		return ErrCourseNotFound
	case stdErrors.Is(err, repositories.ErrChapterNotFound):
		return ErrChapterNotFound
	case stdErrors.Is(err, context.DeadlineExceeded):
		s.log.WithContext(ctx).Warnf("%s timeout", op)
		return errors.GatewayTimeout(ReasonOperationTimeout, op+" timeout")
	}
	s.log.WithContext(ctx).Errorf("%s failed: err=%v", op, err)
	return errors.InternalServer(ReasonStoreFailure, "failed to "+op).WithCause(fmt.Errorf("%s: %w", op, err))
}

func toChapterVOs(chapters []*po.Chapter) []*vo.Chapter {
	out := make([]*vo.Chapter, 0, len(chapters))
	for _, c := range chapters {
		out = append(out, vo.NewChapterFromPO(c))
	}
	return out
}

func toPurchaseVO(p *po.Purchase) *vo.Purchase {
	if p == nil {
		return nil
	}
	return &vo.Purchase{ID: p.ID.String(), CreatedAt: p.CreatedAt}
}

func toUserProgressVO(p *po.UserProgress) *vo.UserProgress {
	if p == nil {
		return nil
	}
	return &vo.UserProgress{IsCompleted: p.IsCompleted, UpdatedAt: p.UpdatedAt}
}
