package mux

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized 表示凭证被 Mux 拒绝（HTTP 401）。
	ErrUnauthorized = errors.New("mux: unauthorized")
	// ErrServerError 表示 Mux 服务端错误（HTTP 500）。
	ErrServerError = errors.New("mux: server error")
	// ErrRequestFailed 表示其他非成功响应、传输失败或超时。
	ErrRequestFailed = errors.New("mux: request failed")
	// ErrAssetNotFound 表示删除时资产已不存在（HTTP 404）。
	ErrAssetNotFound = errors.New("mux: asset not found")
)

// StatusError 记录非成功响应的状态码，并通过 Unwrap 归类到上面的哨兵错误。
type StatusError struct {
	Op     string
	Status int
	Body   string
	kind   error
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: status %d: %v", e.Op, e.Status, e.kind)
}

// Unwrap 返回错误分类。
func (e *StatusError) Unwrap() error {
	return e.kind
}

func classifyCreate(status int) error {
	switch status {
	case 500:
		return ErrServerError
	case 401:
		return ErrUnauthorized
	default:
		return ErrRequestFailed
	}
}

func classifyDelete(status int) error {
	switch status {
	case 404:
		return ErrAssetNotFound
	case 500:
		return ErrServerError
	case 401:
		return ErrUnauthorized
	default:
		return ErrRequestFailed
	}
}
