package services_test

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/bionicotaku/lingo-services-course/internal/services"
	"github.com/bionicotaku/lingo-services-course/internal/services/mocks"
	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/golang/mock/gomock"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
)

type fakeTxManager struct{}

type fakeSession struct{ ctx context.Context }

func (fakeTxManager) WithinTx(ctx context.Context, _ txmanager.TxOptions, fn func(context.Context, txmanager.Session) error) error {
	return fn(ctx, fakeSession{ctx: ctx})
}

func (fakeTxManager) WithinReadOnlyTx(ctx context.Context, _ txmanager.TxOptions, fn func(context.Context, txmanager.Session) error) error {
	return fn(ctx, fakeSession{ctx: ctx})
}

func (fakeSession) Tx() pgx.Tx { return nil }

func (s fakeSession) Context() context.Context { return s.ctx }

func ptrString(v string) *string { return &v }

func ptrInt64(v int64) *int64 { return &v }

// chapterFixture 聚合 ChapterService 的全部 mock 依赖。
type chapterFixture struct {
	courses     *mocks.MockCourseRepository
	chapters    *mocks.MockChapterRepository
	purchases   *mocks.MockPurchaseRepository
	attachments *mocks.MockAttachmentRepository
	progress    *mocks.MockUserProgressRepository
	assets      *mocks.MockVideoAssetRepository
	cleanup     *mocks.MockAssetCleanupEnqueuer
	provider    *mocks.MockVideoProvider
	svc         *services.ChapterService
}

func newChapterFixture(t *testing.T) *chapterFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &chapterFixture{
		courses:     mocks.NewMockCourseRepository(ctrl),
		chapters:    mocks.NewMockChapterRepository(ctrl),
		purchases:   mocks.NewMockPurchaseRepository(ctrl),
		attachments: mocks.NewMockAttachmentRepository(ctrl),
		progress:    mocks.NewMockUserProgressRepository(ctrl),
		assets:      mocks.NewMockVideoAssetRepository(ctrl),
		cleanup:     mocks.NewMockAssetCleanupEnqueuer(ctrl),
		provider:    mocks.NewMockVideoProvider(ctrl),
	}
	logger := log.NewStdLogger(io.Discard)
	cfg := services.VideoAssetConfig{DeleteTimeout: time.Second}
	releaser := services.NewAssetReleaser(f.provider, f.assets, f.cleanup, cfg, logger)
	videoSync := services.NewVideoAssetSync(f.provider, f.assets, releaser, cfg, logger)
	f.svc = services.NewChapterService(f.courses, f.chapters, f.purchases, f.attachments, f.progress, f.assets, releaser, videoSync, &fakeTxManager{}, logger)
	return f
}

func requireReason(t *testing.T, err error, code int, reason string) {
	t.Helper()
	require.Error(t, err)
	kerr := errors.FromError(err)
	require.Equal(t, int32(code), kerr.Code)
	require.Equal(t, reason, kerr.Reason)
}
