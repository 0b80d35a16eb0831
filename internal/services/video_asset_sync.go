package services

import (
	"context"
	"errors"

	"github.com/bionicotaku/lingo-services-course/internal/clients/mux"
	"github.com/bionicotaku/lingo-services-course/internal/models/po"
	"github.com/bionicotaku/lingo-services-course/internal/repositories"

	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
)

// VideoAssetSync 在章节视频地址变化时替换视频资产。
type VideoAssetSync struct {
	provider VideoProvider
	assets   VideoAssetRepository
	releaser *AssetReleaser
	policy   []string
	quality  string
	log      *log.Helper
}

// NewVideoAssetSync 构造 VideoAssetSync。
func NewVideoAssetSync(provider VideoProvider, assets VideoAssetRepository, releaser *AssetReleaser, cfg VideoAssetConfig, logger log.Logger) *VideoAssetSync {
	policy := cfg.PlaybackPolicy
	if len(policy) == 0 {
		policy = []string{mux.PlaybackPolicyPublic}
	}
	quality := cfg.VideoQuality
	if quality == "" {
		quality = mux.VideoQualityBasic
	}
	return &VideoAssetSync{
		provider: provider,
		assets:   assets,
		releaser: releaser,
		policy:   policy,
		quality:  quality,
		log:      log.NewHelper(logger),
	}
}

// Sync 释放章节已有资产后，从 sourceURL 创建新资产并保存首个 playback id。
// 托管方失败时返回 ErrVideoProvider* 错误。
func (s *VideoAssetSync) Sync(ctx context.Context, sess txmanager.Session, chapterID uuid.UUID, sourceURL string) (*po.VideoAsset, error) {
	existing, err := s.assets.GetByChapter(ctx, sess, chapterID)
	switch {
	case err == nil:
		if err := s.releaser.Release(ctx, sess, existing); err != nil {
			return nil, err
		}
	case errors.Is(err, repositories.ErrVideoAssetNotFound):
	default:
		return nil, err
	}

	created, err := s.provider.CreateAsset(ctx, mux.CreateAssetInput{
		SourceURL:      sourceURL,
		PlaybackPolicy: s.policy,
		VideoQuality:   s.quality,
	})
	if err != nil {
		s.log.WithContext(ctx).Warnf("create video asset failed: chapter=%s err=%v", chapterID, err)
		return nil, providerError(err)
	}

	var playbackID *string
	if len(created.PlaybackIDs) > 0 {
		first := created.PlaybackIDs[0]
		playbackID = &first
	}
	asset, err := s.assets.Create(ctx, sess, repositories.CreateVideoAssetInput{
		ChapterID:  chapterID,
		AssetID:    created.AssetID,
		PlaybackID: playbackID,
	})
	if err != nil {
		return nil, err
	}
	s.log.WithContext(ctx).Infof("video asset synced: chapter=%s asset=%s", chapterID, created.AssetID)
	return asset, nil
}

func providerError(err error) error {
	switch {
	case errors.Is(err, mux.ErrUnauthorized):
		return ErrVideoProviderUnauthorized.WithCause(err)
	case errors.Is(err, mux.ErrServerError):
		return ErrVideoProviderServerError.WithCause(err)
	default:
		return ErrVideoProviderRequestFailed.WithCause(err)
	}
}
