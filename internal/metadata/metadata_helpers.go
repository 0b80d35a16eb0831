// Package metadata 提供 HandlerMetadata 在 Context 中的存取工具，供控制器与服务层共享。
package metadata

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
)

// HandlerMetadata 描述从网关请求头解析出的调用方信息。
type HandlerMetadata struct {
	RequestID       string
	UserID          string
	RawUserInfo     string
	InvalidUserInfo bool
}

// IsZero 判断 Metadata 是否为空。
func (m HandlerMetadata) IsZero() bool {
	return m.RequestID == "" && m.UserID == "" && m.RawUserInfo == "" && !m.InvalidUserInfo
}

// Authenticated 表示网关已提供可识别的用户身份。
func (m HandlerMetadata) Authenticated() bool {
	return !m.InvalidUserInfo && strings.TrimSpace(m.UserID) != ""
}

type ctxKey struct{}

// Inject 将 HandlerMetadata 注入 Context。
func Inject(ctx context.Context, meta HandlerMetadata) context.Context {
	if meta.IsZero() {
		return ctx
	}
	return context.WithValue(ctx, ctxKey{}, meta)
}

// FromContext 读取上游注入的 HandlerMetadata。
func FromContext(ctx context.Context) (HandlerMetadata, bool) {
	if ctx == nil {
		return HandlerMetadata{}, false
	}
	meta, ok := ctx.Value(ctxKey{}).(HandlerMetadata)
	return meta, ok
}

// userClaimKeys 按优先级列出可承载用户标识的 claim。
var userClaimKeys = []string{"sub", "user_id", "uid"}

// ErrUndecodableUserInfo 表示 userinfo 头无法按任何 base64 变体解码。
var ErrUndecodableUserInfo = errors.New("decode userinfo header failed")

// ExtractUserIDFromUserInfo 从 X-Apigateway-Api-Userinfo 头（base64 编码的 JSON claims）中解析用户标识。
// 头为空或 claims 中没有可用标识时返回空字符串。
func ExtractUserIDFromUserInfo(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}
	payload, err := decodeUserInfo(raw)
	if err != nil {
		return "", err
	}
	var claims map[string]any
	if err := json.Unmarshal(payload, &claims); err != nil {
		return "", err
	}
	for _, key := range userClaimKeys {
		if v, ok := claims[key].(string); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v), nil
		}
	}
	return "", nil
}

func decodeUserInfo(raw string) ([]byte, error) {
	for _, enc := range []*base64.Encoding{base64.RawURLEncoding, base64.URLEncoding, base64.StdEncoding, base64.RawStdEncoding} {
		if payload, err := enc.DecodeString(raw); err == nil {
			return payload, nil
		}
	}
	return nil, ErrUndecodableUserInfo
}
