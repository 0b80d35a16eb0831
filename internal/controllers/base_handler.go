package controllers

import (
	"context"
	"strings"
	"time"

	"github.com/bionicotaku/lingo-services-course/internal/metadata"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/transport"
)

// HandlerType 表示 Handler 的语义类别，用于选择超时策略。
type HandlerType int

const (
	// HandlerTypeDefault 表示未显式区分的 Handler。
	HandlerTypeDefault HandlerType = iota
	// HandlerTypeCommand 表示写操作 Handler。
	HandlerTypeCommand
	// HandlerTypeQuery 表示只读查询 Handler。
	HandlerTypeQuery
)

// HandlerTimeouts 聚合不同类型 Handler 的超时策略。
type HandlerTimeouts struct {
	Default time.Duration
	Command time.Duration
	Query   time.Duration
}

const (
	fallbackDefaultTimeout = 5 * time.Second
	fallbackQueryTimeout   = 3 * time.Second

	headerUserInfo  = "x-apigateway-api-userinfo"
	headerRequestID = "x-request-id"
)

// 传输层错误原因码。
const (
	ReasonUnauthenticated = "UNAUTHENTICATED"
	ReasonInvalidArgument = "INVALID_ARGUMENT"
)

// BaseHandler 提供公共的超时与调用方身份解析能力，供具体 Handler 内嵌复用。
type BaseHandler struct {
	timeouts HandlerTimeouts
}

// NewBaseHandler 构造基础 Handler，缺省值按 Default → Command/Query 回退。
func NewBaseHandler(timeouts HandlerTimeouts) *BaseHandler {
	if timeouts.Default <= 0 {
		switch {
		case timeouts.Command > 0:
			timeouts.Default = timeouts.Command
		case timeouts.Query > 0:
			timeouts.Default = timeouts.Query
		default:
			timeouts.Default = fallbackDefaultTimeout
		}
	}
	if timeouts.Command <= 0 {
		timeouts.Command = timeouts.Default
	}
	if timeouts.Query <= 0 {
		timeouts.Query = fallbackQueryTimeout
		if timeouts.Default < timeouts.Query {
			timeouts.Query = timeouts.Default
		}
	}
	return &BaseHandler{timeouts: timeouts}
}

// WithTimeout 根据 Handler 类型包装上下文，返回绑定超时的新 Context 与取消函数。
func (h *BaseHandler) WithTimeout(ctx context.Context, kind HandlerType) (context.Context, context.CancelFunc) {
	if h == nil {
		return context.WithTimeout(ctx, fallbackDefaultTimeout)
	}
	timeout := h.timeouts.Default
	switch kind {
	case HandlerTypeCommand:
		timeout = h.timeouts.Command
	case HandlerTypeQuery:
		timeout = h.timeouts.Query
	}
	if timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}

// ExtractMetadata 从服务端 transport 的请求头解析调用方身份。
func (h *BaseHandler) ExtractMetadata(ctx context.Context) metadata.HandlerMetadata {
	tr, ok := transport.FromServerContext(ctx)
	if !ok {
		return metadata.HandlerMetadata{}
	}
	header := tr.RequestHeader()
	meta := metadata.HandlerMetadata{
		RequestID:   strings.TrimSpace(header.Get(headerRequestID)),
		RawUserInfo: strings.TrimSpace(header.Get(headerUserInfo)),
	}
	if meta.RawUserInfo == "" {
		return meta
	}
	userID, err := metadata.ExtractUserIDFromUserInfo(meta.RawUserInfo)
	if err != nil || userID == "" {
		meta.InvalidUserInfo = true
		return meta
	}
	meta.UserID = userID
	return meta
}

// RequireUser 解析并注入调用方身份；缺失或无法解析时返回 401。
func (h *BaseHandler) RequireUser(ctx context.Context) (context.Context, string, error) {
	meta := h.ExtractMetadata(ctx)
	if !meta.Authenticated() {
		return ctx, "", errors.Unauthorized(ReasonUnauthenticated, "caller identity is missing or invalid")
	}
	return metadata.Inject(ctx, meta), meta.UserID, nil
}

// InjectHandlerMetadata 将解析结果注入到 Context，供后续层访问。
func InjectHandlerMetadata(ctx context.Context, meta metadata.HandlerMetadata) context.Context {
	return metadata.Inject(ctx, meta)
}

// HandlerMetadataFromContext 读取上游注入的 HandlerMetadata。
func HandlerMetadataFromContext(ctx context.Context) (metadata.HandlerMetadata, bool) {
	return metadata.FromContext(ctx)
}
