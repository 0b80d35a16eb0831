// Package controllers 提供 HTTP 传输层 Handler，负责解析请求、调用业务层并渲染响应。
package controllers

import "github.com/google/wire"

// ProviderSet exposes controller/handler constructors for DI.
var ProviderSet = wire.NewSet(
	NewBaseHandler,
	NewChapterHandler,
)
