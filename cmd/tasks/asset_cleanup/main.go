// Package main 提供资产清理 Runner 独立进程入口，便于在后台单独重试远端删除。
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	configloader "github.com/bionicotaku/lingo-services-course/internal/infrastructure/configloader"
	assetcleanup "github.com/bionicotaku/lingo-services-course/internal/tasks/asset_cleanup"

	"github.com/go-kratos/kratos/v2/log"
)

type cleanupTaskApp struct {
	Runner *assetcleanup.Runner
	Logger log.Logger
}

func main() {
	ctx := context.Background()

	confFlag := flag.String("conf", "", "config path or directory, eg: -conf configs/config.yaml")
	once := flag.Bool("once", false, "process a single batch and exit")
	flag.Parse()

	params := configloader.Params{ConfPath: *confFlag}
	app, cleanup, err := wireCleanupTask(ctx, params)
	if err != nil {
		panic(err)
	}
	defer cleanup()

	logger := app.Logger
	if logger == nil {
		logger = log.NewStdLogger(os.Stdout)
	}
	helper := log.NewHelper(logger)

	if app.Runner == nil {
		helper.Warn("asset cleanup runner disabled (cleanup.enabled=false)")
		return
	}

	runCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if *once {
		n, err := app.Runner.ProcessOnce(runCtx)
		if err != nil {
			helper.Errorf("asset cleanup batch failed: %v", err)
			os.Exit(1)
		}
		helper.Infof("asset cleanup batch processed %d jobs", n)
		return
	}

	helper.Info("starting asset cleanup task")
	if err := app.Runner.Run(runCtx); err != nil && !errors.Is(err, context.Canceled) {
		helper.Errorf("asset cleanup runner stopped unexpectedly: %v", err)
		os.Exit(1)
	}
	helper.Info("asset cleanup stopped")
}
