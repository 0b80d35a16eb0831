// Package httpserver 负责装配入站 HTTP Server 及其中间件栈。
package httpserver

import (
	"github.com/bionicotaku/lingo-services-course/internal/controllers"
	configloader "github.com/bionicotaku/lingo-services-course/internal/infrastructure/configloader"

	"github.com/bionicotaku/lingo-utils/gcjwt"
	obsTrace "github.com/bionicotaku/lingo-utils/observability/tracing"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/middleware"
	"github.com/go-kratos/kratos/v2/middleware/logging"
	"github.com/go-kratos/kratos/v2/middleware/metadata"
	"github.com/go-kratos/kratos/v2/middleware/ratelimit"
	"github.com/go-kratos/kratos/v2/middleware/recovery"
	khttp "github.com/go-kratos/kratos/v2/transport/http"
)

// NewHTTPServer 构造 Kratos HTTP Server 并注册章节路由。
//
// 中间件链（按执行顺序）：
// 1. obsTrace.Server() - OpenTelemetry 追踪
// 2. recovery.Recovery() - Panic 恢复
// 3. metadata.Server() - 按 MetadataKeys 前缀传播 header
// 4. jwt（可选）- 入站 JWT 校验
// 5. ratelimit.Server() - 限流保护
// 6. logging.Server() - 结构化访问日志
func NewHTTPServer(cfg configloader.ServerConfig, jwt gcjwt.ServerMiddleware, chapters *controllers.ChapterHandler, logger log.Logger) *khttp.Server {
	mws := []middleware.Middleware{
		obsTrace.Server(),
		recovery.Recovery(),
		metadata.Server(metadata.WithPropagatedPrefix(cfg.MetadataKeys...)),
	}
	if jwt != nil {
		mws = append(mws, middleware.Middleware(jwt))
	}
	mws = append(mws,
		ratelimit.Server(),
		logging.Server(logger),
	)

	opts := []khttp.ServerOption{
		khttp.Middleware(mws...),
	}
	if cfg.Network != "" {
		opts = append(opts, khttp.Network(cfg.Network))
	}
	if cfg.Address != "" {
		opts = append(opts, khttp.Address(cfg.Address))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, khttp.Timeout(cfg.Timeout))
	}
	srv := khttp.NewServer(opts...)
	if chapters != nil {
		chapters.RegisterRoutes(srv)
	}
	return srv
}
