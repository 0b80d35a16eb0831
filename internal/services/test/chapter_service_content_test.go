package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/bionicotaku/lingo-services-course/internal/clients/mux"
	"github.com/bionicotaku/lingo-services-course/internal/models/po"
	"github.com/bionicotaku/lingo-services-course/internal/repositories"
	"github.com/bionicotaku/lingo-services-course/internal/services"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestChapterService_Create_Positions(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		first    *po.Chapter
		expected int32
	}{
		{name: "empty course", first: nil, expected: 1},
		{name: "after minimum", first: &po.Chapter{Position: 4}, expected: 5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newChapterFixture(t)
			courseID := uuid.New()
			created := &po.Chapter{ID: uuid.New(), CourseID: courseID, Title: "New", Position: tc.expected}

			f.courses.EXPECT().GetOwned(gomock.Any(), gomock.Any(), courseID, owner).Return(ownedCourse(courseID), nil)
			if tc.first == nil {
				f.chapters.EXPECT().FirstByPosition(gomock.Any(), gomock.Any(), courseID).Return(nil, repositories.ErrChapterNotFound)
			} else {
				f.chapters.EXPECT().FirstByPosition(gomock.Any(), gomock.Any(), courseID).Return(tc.first, nil)
			}
			f.chapters.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ interface{}, input repositories.CreateChapterInput) (*po.Chapter, error) {
					require.Equal(t, courseID, input.CourseID)
					require.Equal(t, "New", input.Title)
					require.Equal(t, tc.expected, input.Position)
					return created, nil
				})
			f.chapters.EXPECT().ListByCourse(gomock.Any(), gomock.Any(), courseID).Return([]*po.Chapter{created}, nil)

			out, err := f.svc.Create(context.Background(), services.CreateChapterInput{UserID: owner, CourseID: courseID, Title: "  New "})
			require.NoError(t, err)
			require.Len(t, out, 1)
			require.Equal(t, tc.expected, out[0].Position)
		})
	}
}

func TestChapterService_Create_BlankTitle(t *testing.T) {
	t.Parallel()

	f := newChapterFixture(t)
	courseID := uuid.New()
	f.courses.EXPECT().GetOwned(gomock.Any(), gomock.Any(), courseID, owner).Return(ownedCourse(courseID), nil)

	_, err := f.svc.Create(context.Background(), services.CreateChapterInput{UserID: owner, CourseID: courseID, Title: "   "})
	requireReason(t, err, 400, services.ReasonChapterInvalidArgument)
}

func TestChapterService_Reorder(t *testing.T) {
	t.Parallel()

	f := newChapterFixture(t)
	courseID := uuid.New()
	a := &po.Chapter{ID: uuid.New(), CourseID: courseID, Position: 2}
	b := &po.Chapter{ID: uuid.New(), CourseID: courseID, Position: 1}

	f.courses.EXPECT().GetOwned(gomock.Any(), gomock.Any(), courseID, owner).Return(ownedCourse(courseID), nil)
	gomock.InOrder(
		f.chapters.EXPECT().UpdatePosition(gomock.Any(), nil, a.ID, int32(2)).Return(a, nil),
		f.chapters.EXPECT().UpdatePosition(gomock.Any(), nil, b.ID, int32(1)).Return(b, nil),
		f.chapters.EXPECT().ListByCourse(gomock.Any(), nil, courseID).Return([]*po.Chapter{b, a}, nil),
	)

	out, err := f.svc.Reorder(context.Background(), services.ReorderChaptersInput{
		UserID:   owner,
		CourseID: courseID,
		Items: []services.ChapterPosition{
			{ChapterID: a.ID, Position: 2},
			{ChapterID: b.ID, Position: 1},
		},
	})
	require.NoError(t, err)
	require.Len(t, out, 2)
	require.Equal(t, b.ID.String(), out[0].ID)
	require.Equal(t, a.ID.String(), out[1].ID)
}

func TestChapterService_Reorder_UnknownChapterStopsAndKeepsEarlierWrites(t *testing.T) {
	t.Parallel()

	f := newChapterFixture(t)
	courseID := uuid.New()
	known := &po.Chapter{ID: uuid.New(), CourseID: courseID, Position: 3}
	unknown := uuid.New()

	f.courses.EXPECT().GetOwned(gomock.Any(), gomock.Any(), courseID, owner).Return(ownedCourse(courseID), nil)
	f.chapters.EXPECT().UpdatePosition(gomock.Any(), nil, known.ID, int32(3)).Return(known, nil)
	f.chapters.EXPECT().UpdatePosition(gomock.Any(), nil, unknown, int32(1)).Return(nil, repositories.ErrChapterNotFound)

	_, err := f.svc.Reorder(context.Background(), services.ReorderChaptersInput{
		UserID:   owner,
		CourseID: courseID,
		Items: []services.ChapterPosition{
			{ChapterID: known.ID, Position: 3},
			{ChapterID: unknown, Position: 1},
		},
	})
	requireReason(t, err, 404, services.ReasonChapterNotFound)
}

func TestChapterService_UpdateProgress(t *testing.T) {
	t.Parallel()

	f := newChapterFixture(t)
	chapterID := uuid.New()
	now := time.Now().UTC()

	f.progress.EXPECT().Upsert(gomock.Any(), nil, "learner", chapterID, true, gomock.Any()).
		Return(&po.UserProgress{ID: uuid.New(), UserID: "learner", ChapterID: chapterID, IsCompleted: true, UpdatedAt: now}, nil)

	out, err := f.svc.UpdateProgress(context.Background(), services.UpdateProgressInput{UserID: "learner", ChapterID: chapterID, IsCompleted: true})
	require.NoError(t, err)
	require.True(t, out.IsCompleted)
	require.Equal(t, now, out.UpdatedAt)
}

func TestChapterService_Update_FieldsWrittenOnce(t *testing.T) {
	t.Parallel()

	f := newChapterFixture(t)
	courseID := uuid.New()
	chapter := readyChapter(courseID)
	updated := *chapter
	updated.Title = "Second"
	updated.IsFree = true

	f.courses.EXPECT().GetOwned(gomock.Any(), gomock.Any(), courseID, owner).Return(ownedCourse(courseID), nil)
	f.chapters.EXPECT().GetInCourse(gomock.Any(), gomock.Any(), courseID, chapter.ID).Return(chapter, nil)
	f.chapters.EXPECT().Update(gomock.Any(), nil, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ interface{}, input repositories.UpdateChapterInput) (*po.Chapter, error) {
			require.Equal(t, chapter.ID, input.ChapterID)
			require.Equal(t, "Second", *input.Title)
			require.True(t, *input.IsFree)
			require.Nil(t, input.Description)
			require.Nil(t, input.VideoURL)
			return &updated, nil
		}).Times(1)

	out, err := f.svc.Update(context.Background(), services.UpdateChapterInput{
		ChapterRef: services.ChapterRef{UserID: owner, CourseID: courseID, ChapterID: chapter.ID},
		Ops: []services.ChapterPatchOp{
			services.SetChapterTitle{Title: "First"},
			services.SetChapterFree{IsFree: true},
			services.SetChapterTitle{Title: "Second"},
		},
	})
	require.NoError(t, err)
	require.Equal(t, "Second", out.Title)
	require.True(t, out.IsFree)
}

func TestChapterService_Update_NoOpsSkipsWrite(t *testing.T) {
	t.Parallel()

	f := newChapterFixture(t)
	courseID := uuid.New()
	chapter := readyChapter(courseID)

	f.courses.EXPECT().GetOwned(gomock.Any(), gomock.Any(), courseID, owner).Return(ownedCourse(courseID), nil)
	f.chapters.EXPECT().GetInCourse(gomock.Any(), gomock.Any(), courseID, chapter.ID).Return(chapter, nil)

	out, err := f.svc.Update(context.Background(), services.UpdateChapterInput{
		ChapterRef: services.ChapterRef{UserID: owner, CourseID: courseID, ChapterID: chapter.ID},
	})
	require.NoError(t, err)
	require.Equal(t, chapter.Title, out.Title)
}

func TestChapterService_Update_VideoURLTwiceReplacesAssetInOrder(t *testing.T) {
	t.Parallel()

	f := newChapterFixture(t)
	courseID := uuid.New()
	chapter := readyChapter(courseID)
	firstURL := "https://cdn.example.com/a.mp4"
	secondURL := "https://cdn.example.com/b.mp4"
	existing := &po.VideoAsset{ID: uuid.New(), ChapterID: chapter.ID, AssetID: "asset-0"}
	firstAsset := &po.VideoAsset{ID: uuid.New(), ChapterID: chapter.ID, AssetID: "asset-1", PlaybackID: ptrString("play-1")}
	secondAsset := &po.VideoAsset{ID: uuid.New(), ChapterID: chapter.ID, AssetID: "asset-2", PlaybackID: ptrString("play-2")}
	firstJob, secondJob := uuid.New(), uuid.New()

	f.courses.EXPECT().GetOwned(gomock.Any(), gomock.Any(), courseID, owner).Return(ownedCourse(courseID), nil)
	f.chapters.EXPECT().GetInCourse(gomock.Any(), gomock.Any(), courseID, chapter.ID).Return(chapter, nil)

	gomock.InOrder(
		f.assets.EXPECT().GetByChapter(gomock.Any(), nil, chapter.ID).Return(existing, nil),
		f.cleanup.EXPECT().Enqueue(gomock.Any(), nil, gomock.Any()).Return(firstJob, nil),
		f.assets.EXPECT().Delete(gomock.Any(), nil, existing.ID).Return(nil),
		f.provider.EXPECT().DeleteAsset(gomock.Any(), "asset-0").Return(nil),
		f.cleanup.EXPECT().Resolve(gomock.Any(), nil, firstJob, gomock.Any()).Return(nil),
		f.provider.EXPECT().CreateAsset(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, input mux.CreateAssetInput) (*mux.CreatedAsset, error) {
				require.Equal(t, firstURL, input.SourceURL)
				require.Equal(t, []string{mux.PlaybackPolicyPublic}, input.PlaybackPolicy)
				require.Equal(t, mux.VideoQualityBasic, input.VideoQuality)
				return &mux.CreatedAsset{AssetID: "asset-1", PlaybackIDs: []string{"play-1"}}, nil
			}),
		f.assets.EXPECT().Create(gomock.Any(), nil, repositories.CreateVideoAssetInput{ChapterID: chapter.ID, AssetID: "asset-1", PlaybackID: ptrString("play-1")}).Return(firstAsset, nil),
		f.assets.EXPECT().GetByChapter(gomock.Any(), nil, chapter.ID).Return(firstAsset, nil),
		f.cleanup.EXPECT().Enqueue(gomock.Any(), nil, gomock.Any()).Return(secondJob, nil),
		f.assets.EXPECT().Delete(gomock.Any(), nil, firstAsset.ID).Return(nil),
		f.provider.EXPECT().DeleteAsset(gomock.Any(), "asset-1").Return(nil),
		f.cleanup.EXPECT().Resolve(gomock.Any(), nil, secondJob, gomock.Any()).Return(nil),
		f.provider.EXPECT().CreateAsset(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, input mux.CreateAssetInput) (*mux.CreatedAsset, error) {
				require.Equal(t, secondURL, input.SourceURL)
				return &mux.CreatedAsset{AssetID: "asset-2", PlaybackIDs: []string{"play-2"}}, nil
			}),
		f.assets.EXPECT().Create(gomock.Any(), nil, repositories.CreateVideoAssetInput{ChapterID: chapter.ID, AssetID: "asset-2", PlaybackID: ptrString("play-2")}).Return(secondAsset, nil),
		f.chapters.EXPECT().Update(gomock.Any(), nil, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ interface{}, input repositories.UpdateChapterInput) (*po.Chapter, error) {
				require.Equal(t, secondURL, *input.VideoURL)
				out := *chapter
				out.VideoURL = &secondURL
				return &out, nil
			}),
	)

	out, err := f.svc.Update(context.Background(), services.UpdateChapterInput{
		ChapterRef: services.ChapterRef{UserID: owner, CourseID: courseID, ChapterID: chapter.ID},
		Ops: []services.ChapterPatchOp{
			services.SetChapterVideoURL{VideoURL: firstURL},
			services.SetChapterVideoURL{VideoURL: secondURL},
		},
	})
	require.NoError(t, err)
	require.Equal(t, secondURL, *out.VideoURL)
}

func TestChapterService_Update_ProviderFailureAbortsWithoutWrite(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		err    error
		reason string
	}{
		{name: "unauthorized", err: mux.ErrUnauthorized, reason: services.ReasonVideoProviderUnauthorized},
		{name: "server error", err: mux.ErrServerError, reason: services.ReasonVideoProviderServerError},
		{name: "other", err: mux.ErrRequestFailed, reason: services.ReasonVideoProviderRequestFailed},
		{name: "deadline", err: context.DeadlineExceeded, reason: services.ReasonVideoProviderRequestFailed},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newChapterFixture(t)
			courseID := uuid.New()
			chapter := readyChapter(courseID)

			f.courses.EXPECT().GetOwned(gomock.Any(), gomock.Any(), courseID, owner).Return(ownedCourse(courseID), nil)
			f.chapters.EXPECT().GetInCourse(gomock.Any(), gomock.Any(), courseID, chapter.ID).Return(chapter, nil)
			f.assets.EXPECT().GetByChapter(gomock.Any(), nil, chapter.ID).Return(nil, repositories.ErrVideoAssetNotFound)
			f.provider.EXPECT().CreateAsset(gomock.Any(), gomock.Any()).Return(nil, tc.err)
			// 托管方失败后不得写入章节，也不得创建资产记录。

			_, err := f.svc.Update(context.Background(), services.UpdateChapterInput{
				ChapterRef: services.ChapterRef{UserID: owner, CourseID: courseID, ChapterID: chapter.ID},
				Ops: []services.ChapterPatchOp{
					services.SetChapterTitle{Title: "ignored"},
					services.SetChapterVideoURL{VideoURL: "https://cdn.example.com/x.mp4"},
				},
			})
			requireReason(t, err, 502, tc.reason)
		})
	}
}

func TestChapterService_Get_GatesPaidContent(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		free      bool
		purchased bool
		unlocked  bool
	}{
		{name: "free unpurchased", free: true, purchased: false, unlocked: true},
		{name: "paid purchased", free: false, purchased: true, unlocked: true},
		{name: "paid unpurchased", free: false, purchased: false, unlocked: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newChapterFixture(t)
			courseID := uuid.New()
			chapter := readyChapter(courseID)
			chapter.IsPublished = true
			chapter.IsFree = tc.free
			course := ownedCourse(courseID)
			course.PriceCents = ptrInt64(1999)

			f.courses.EXPECT().GetPublished(gomock.Any(), gomock.Any(), courseID).Return(course, nil)
			f.chapters.EXPECT().GetPublishedInCourse(gomock.Any(), gomock.Any(), courseID, chapter.ID).Return(chapter, nil)
			if tc.purchased {
				f.purchases.EXPECT().Get(gomock.Any(), gomock.Any(), "learner", courseID).Return(&po.Purchase{ID: uuid.New(), UserID: "learner", CourseID: courseID}, nil)
			} else {
				f.purchases.EXPECT().Get(gomock.Any(), gomock.Any(), "learner", courseID).Return(nil, repositories.ErrPurchaseNotFound)
			}
			f.progress.EXPECT().Get(gomock.Any(), gomock.Any(), "learner", chapter.ID).Return(nil, repositories.ErrUserProgressNotFound)

			next := &po.Chapter{ID: uuid.New(), CourseID: courseID, Title: "Next", Position: 2, IsPublished: true}
			if tc.unlocked {
				f.attachments.EXPECT().ListByCourse(gomock.Any(), gomock.Any(), courseID).
					Return([]*po.Attachment{{ID: uuid.New(), CourseID: courseID, Name: "slides.pdf", URL: "https://cdn.example.com/slides.pdf"}}, nil)
				f.assets.EXPECT().GetByChapter(gomock.Any(), gomock.Any(), chapter.ID).
					Return(&po.VideoAsset{ID: uuid.New(), ChapterID: chapter.ID, AssetID: "asset-1", PlaybackID: ptrString("play-1")}, nil)
				f.chapters.EXPECT().NextPublished(gomock.Any(), gomock.Any(), courseID, int32(1)).Return(next, nil)
			}

			out, err := f.svc.Get(context.Background(), services.GetChapterInput{UserID: "learner", CourseID: courseID, ChapterID: chapter.ID})
			require.NoError(t, err)
			require.Equal(t, int64(1999), *out.PriceCents)
			require.Nil(t, out.UserProgress)
			require.Equal(t, tc.purchased, out.Purchase != nil)
			if tc.unlocked {
				require.Len(t, out.Attachments, 1)
				require.Equal(t, "play-1", *out.VideoAsset.PlaybackID)
				require.Equal(t, next.ID.String(), out.NextChapter.ID)
			} else {
				require.Empty(t, out.Attachments)
				require.Nil(t, out.VideoAsset)
				require.Nil(t, out.NextChapter)
			}
		})
	}
}

func TestChapterService_Get_UnpublishedCourseNotFound(t *testing.T) {
	t.Parallel()

	f := newChapterFixture(t)
	courseID := uuid.New()
	f.courses.EXPECT().GetPublished(gomock.Any(), gomock.Any(), courseID).Return(nil, repositories.ErrCourseNotFound)

	_, err := f.svc.Get(context.Background(), services.GetChapterInput{UserID: "learner", CourseID: courseID, ChapterID: uuid.New()})
	requireReason(t, err, 404, services.ReasonCourseNotFound)
}

func TestChapterService_Get_UnpublishedChapterNotFound(t *testing.T) {
	t.Parallel()

	f := newChapterFixture(t)
	courseID := uuid.New()
	chapterID := uuid.New()
	f.courses.EXPECT().GetPublished(gomock.Any(), gomock.Any(), courseID).Return(ownedCourse(courseID), nil)
	f.chapters.EXPECT().GetPublishedInCourse(gomock.Any(), gomock.Any(), courseID, chapterID).Return(nil, repositories.ErrChapterNotFound)

	_, err := f.svc.Get(context.Background(), services.GetChapterInput{UserID: "learner", CourseID: courseID, ChapterID: chapterID})
	requireReason(t, err, 404, services.ReasonChapterNotFound)
}
