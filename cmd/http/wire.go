//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

//go:generate go run github.com/google/wire/cmd/wire

package main

import (
	"context"

	"github.com/bionicotaku/lingo-services-course/internal/clients"
	"github.com/bionicotaku/lingo-services-course/internal/controllers"
	configloader "github.com/bionicotaku/lingo-services-course/internal/infrastructure/configloader"
	httpserver "github.com/bionicotaku/lingo-services-course/internal/infrastructure/http_server"
	"github.com/bionicotaku/lingo-services-course/internal/repositories"
	"github.com/bionicotaku/lingo-services-course/internal/services"
	assetcleanup "github.com/bionicotaku/lingo-services-course/internal/tasks/asset_cleanup"

	"github.com/bionicotaku/lingo-utils/gcjwt"
	"github.com/bionicotaku/lingo-utils/gclog"
	obswire "github.com/bionicotaku/lingo-utils/observability"
	"github.com/bionicotaku/lingo-utils/pgxpoolx"
	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/go-kratos/kratos/v2"
	"github.com/google/wire"
)

// wireApp 构建整个 Kratos 应用，分阶段装配依赖。
//
// 依赖注入顺序:
//  1. 配置加载: configloader.ProviderSet 解析配置并派生组件配置
//  2. 基础设施: gclog → observability → gcjwt → pgxpoolx → txmanager
//  3. 外部客户端: clients.ProviderSet 构造 Mux 客户端
//  4. 业务层: repositories → services → controllers
//  5. 服务器: httpserver.ProviderSet 组装 HTTP Server 并注册章节路由
//  6. 后台任务: assetcleanup.ProvideRunner（配置关闭时为 nil）
//  7. 应用: newApp 创建 Kratos App
func wireApp(context.Context, configloader.Params) (*kratos.App, func(), error) {
	panic(wire.Build(
		configloader.ProviderSet, // 配置加载与解析
		gclog.ProviderSet,        // 结构化日志
		gcjwt.ProviderSet,        // JWT 认证中间件
		obswire.ProviderSet,      // OpenTelemetry 追踪和指标
		pgxpoolx.ProviderSet,     // PostgreSQL 连接池
		txmanager.ProviderSet,    // 事务管理器
		clients.ProviderSet,      // Mux Video 客户端
		repositories.ProviderSet, // 数据访问层（sqlc）
		services.ProviderSet,     // 业务逻辑层
		controllers.ProviderSet,  // 控制器层（HTTP handlers）
		httpserver.ProviderSet,   // HTTP Server
		assetcleanup.ProvideRunner,
		newApp,
	))
}

// 主要 Provider 依赖关系：
//
//   - configloader.LoadRuntimeConfig(configloader.Params) (configloader.RuntimeConfig, error)
//   - configloader.ProvideMuxConfig(configloader.MuxConfig) mux.Config
//   - configloader.ProvideVideoAssetConfig(configloader.MuxConfig) services.VideoAssetConfig
//   - configloader.ProvideCleanupConfig(configloader.RuntimeConfig) configloader.CleanupConfig
//   - mux.NewClient(mux.Config, log.Logger) (*mux.Client, error)
//   - services.NewAssetReleaser(VideoProvider, VideoAssetRepository, AssetCleanupEnqueuer, VideoAssetConfig, log.Logger)
//   - services.NewVideoAssetSync(VideoProvider, VideoAssetRepository, *AssetReleaser, VideoAssetConfig, log.Logger)
//   - services.NewChapterService(...) *services.ChapterService
//   - controllers.NewChapterHandler(services.ChapterServiceInterface, *controllers.BaseHandler)
//   - httpserver.NewHTTPServer(configloader.ServerConfig, gcjwt.ServerMiddleware,
//       *controllers.ChapterHandler, log.Logger) *khttp.Server
//   - assetcleanup.ProvideRunner(*repositories.AssetCleanupRepository, *mux.Client,
//       configloader.CleanupConfig, configloader.MuxConfig, log.Logger) *assetcleanup.Runner
//   - newApp(*observability.Component, log.Logger, *khttp.Server,
//       configloader.ServiceInfo, *assetcleanup.Runner) *kratos.App
