package services

import (
	"github.com/go-kratos/kratos/v2/errors"
)

// 错误原因码，随 kratos 错误返回给调用方。
const (
	ReasonCourseNotFound              = "COURSE_NOT_FOUND"
	ReasonChapterNotFound             = "CHAPTER_NOT_FOUND"
	ReasonChapterMissingRequiredField = "CHAPTER_MISSING_REQUIRED_FIELD"
	ReasonChapterInvalidArgument      = "CHAPTER_INVALID_ARGUMENT"
	ReasonVideoProviderUnauthorized   = "VIDEO_PROVIDER_UNAUTHORIZED"
	ReasonVideoProviderServerError    = "VIDEO_PROVIDER_SERVER_ERROR"
	ReasonVideoProviderRequestFailed  = "VIDEO_PROVIDER_REQUEST_FAILED"
	ReasonStoreFailure                = "STORE_FAILURE"
	ReasonOperationTimeout            = "OPERATION_TIMEOUT"
)

// statusBadGateway 用于视频托管方返回的失败。
const statusBadGateway = 502

var (
	// ErrCourseNotFound 课程不存在、未发布或调用方不是所有者。
	ErrCourseNotFound = errors.NotFound(ReasonCourseNotFound, "course not found")
	// ErrChapterNotFound 章节不存在或不属于目标课程。
	ErrChapterNotFound = errors.NotFound(ReasonChapterNotFound, "chapter not found")
	// ErrChapterMissingRequiredField 发布前缺少描述、视频地址或视频资产。
	ErrChapterMissingRequiredField = errors.BadRequest(ReasonChapterMissingRequiredField, "missing required field")
	// ErrVideoProviderUnauthorized 视频托管方拒绝凭证。
	ErrVideoProviderUnauthorized = errors.New(statusBadGateway, ReasonVideoProviderUnauthorized, "video provider unauthorized")
	// ErrVideoProviderServerError 视频托管方内部错误。
	ErrVideoProviderServerError = errors.New(statusBadGateway, ReasonVideoProviderServerError, "video provider server error")
	// ErrVideoProviderRequestFailed 无法创建视频资产（其他状态码、网络错误或超时）。
	ErrVideoProviderRequestFailed = errors.New(statusBadGateway, ReasonVideoProviderRequestFailed, "cannot create video asset")
)
