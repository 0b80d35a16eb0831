package assetcleanup

import (
	"github.com/bionicotaku/lingo-services-course/internal/clients/mux"
	"github.com/bionicotaku/lingo-services-course/internal/infrastructure/configloader"
	"github.com/bionicotaku/lingo-services-course/internal/repositories"

	"github.com/go-kratos/kratos/v2/log"
)

// ProvideRunner 装配清理 Runner；配置关闭时返回 nil。
func ProvideRunner(
	repo *repositories.AssetCleanupRepository,
	client *mux.Client,
	cleanupCfg configloader.CleanupConfig,
	muxCfg configloader.MuxConfig,
	logger log.Logger,
) *Runner {
	if repo == nil || client == nil || logger == nil {
		return nil
	}
	helper := log.NewHelper(logger)
	if !cleanupCfg.Enabled {
		helper.Info("asset cleanup runner disabled by configuration")
		return nil
	}
	runner, err := NewRunner(RunnerParams{
		Store:    repo,
		Provider: client,
		Config: Config{
			TickInterval:   cleanupCfg.TickInterval,
			BatchSize:      cleanupCfg.BatchSize,
			Workers:        cleanupCfg.Workers,
			MaxAttempts:    cleanupCfg.MaxAttempts,
			InitialBackoff: cleanupCfg.InitialBackoff,
			MaxBackoff:     cleanupCfg.MaxBackoff,
			LockTTL:        cleanupCfg.LockTTL,
			DeleteTimeout:  muxCfg.Timeout,
		},
		Logger: logger,
	})
	if err != nil {
		helper.Errorw("msg", "init asset cleanup runner failed", "error", err)
		return nil
	}
	return runner
}
