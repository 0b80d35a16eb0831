//go:build wireinject
// +build wireinject

// Package main 为资产清理任务 CLI 提供 Wire 依赖注入定义。
package main

import (
	"context"
	"fmt"

	"github.com/bionicotaku/lingo-services-course/internal/clients"
	configloader "github.com/bionicotaku/lingo-services-course/internal/infrastructure/configloader"
	"github.com/bionicotaku/lingo-services-course/internal/repositories"
	assetcleanup "github.com/bionicotaku/lingo-services-course/internal/tasks/asset_cleanup"

	"github.com/bionicotaku/lingo-utils/gclog"
	obswire "github.com/bionicotaku/lingo-utils/observability"
	"github.com/bionicotaku/lingo-utils/pgxpoolx"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/wire"
)

//go:generate go run github.com/google/wire/cmd/wire

var cleanupRepositorySet = wire.NewSet(repositories.NewAssetCleanupRepository)

func wireCleanupTask(context.Context, configloader.Params) (*cleanupTaskApp, func(), error) {
	panic(wire.Build(
		configloader.ProviderSet,
		gclog.ProviderSet,
		obswire.ProviderSet,
		pgxpoolx.ProviderSet,
		clients.ProviderSet,
		cleanupRepositorySet,
		assetcleanup.ProvideRunner,
		newCleanupTaskApp,
	))
}

func newCleanupTaskApp(_ *obswire.Component, logger log.Logger, runner *assetcleanup.Runner) (*cleanupTaskApp, error) {
	if runner == nil {
		return &cleanupTaskApp{Logger: logger}, nil
	}
	if logger == nil {
		return nil, fmt.Errorf("logger not initialized")
	}
	return &cleanupTaskApp{
		Runner: runner,
		Logger: logger,
	}, nil
}
