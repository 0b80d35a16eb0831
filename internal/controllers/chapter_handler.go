package controllers

import (
	"context"
	stdErrors "errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/bionicotaku/lingo-services-course/internal/controllers/dto"
	"github.com/bionicotaku/lingo-services-course/internal/services"

	"github.com/go-kratos/kratos/v2/errors"
	khttp "github.com/go-kratos/kratos/v2/transport/http"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// 路由操作名，写入 transport operation 供日志与追踪使用。
const (
	OperationGetChapter      = "/course.v1.ChapterService/GetChapter"
	OperationCreateChapter   = "/course.v1.ChapterService/CreateChapter"
	OperationUpdateChapter   = "/course.v1.ChapterService/UpdateChapter"
	OperationDeleteChapter   = "/course.v1.ChapterService/DeleteChapter"
	OperationReorderChapters = "/course.v1.ChapterService/ReorderChapters"
	OperationPublishChapter  = "/course.v1.ChapterService/PublishChapter"
	OperationUnpublish       = "/course.v1.ChapterService/UnpublishChapter"
	OperationUpdateProgress  = "/course.v1.ChapterService/UpdateProgress"
)

const maxPatchBodyBytes = 1 << 20

// ChapterHandler 将章节 HTTP 路由转换为 ChapterService 调用。
type ChapterHandler struct {
	*BaseHandler
	chapters services.ChapterServiceInterface
	validate *validator.Validate
}

// NewChapterHandler 构造 ChapterHandler。
func NewChapterHandler(chapters services.ChapterServiceInterface, base *BaseHandler) *ChapterHandler {
	if base == nil {
		base = NewBaseHandler(HandlerTimeouts{})
	}
	return &ChapterHandler{
		BaseHandler: base,
		chapters:    chapters,
		validate:    validator.New(),
	}
}

// RegisterRoutes 在 kratos HTTP Server 上注册章节路由。
func (h *ChapterHandler) RegisterRoutes(srv *khttp.Server) {
	r := srv.Route("/v1/courses/{course_id}/chapters")
	r.POST("", h.create)
	r.PUT("/reorder", h.reorder)
	r.GET("/{chapter_id}", h.get)
	r.PATCH("/{chapter_id}", h.update)
	r.DELETE("/{chapter_id}", h.delete)
	r.PATCH("/{chapter_id}/publish", h.publish)
	r.PATCH("/{chapter_id}/unpublish", h.unpublish)
	r.PUT("/{chapter_id}/progress", h.updateProgress)
}

// userCall 是已解析调用方身份后的业务调用。
type userCall func(ctx context.Context, userID string) (any, error)

// serve 挂载 Server 中间件链，解析身份并施加超时后执行 fn，成功时以 200 渲染结果。
// 路径参数与请求体在 fn 内解析，未认证请求总是先得到 401。
func (h *ChapterHandler) serve(ctx khttp.Context, operation string, kind HandlerType, fn userCall) error {
	khttp.SetOperation(ctx, operation)
	handler := ctx.Middleware(func(mctx context.Context, _ any) (any, error) {
		userCtx, userID, err := h.RequireUser(mctx)
		if err != nil {
			return nil, err
		}
		timeoutCtx, cancel := h.WithTimeout(userCtx, kind)
		defer cancel()
		return fn(timeoutCtx, userID)
	})
	out, err := handler(ctx, nil)
	if err != nil {
		return err
	}
	return ctx.Result(http.StatusOK, out)
}

func (h *ChapterHandler) get(ctx khttp.Context) error {
	return h.serve(ctx, OperationGetChapter, HandlerTypeQuery, func(c context.Context, userID string) (any, error) {
		ref, err := chapterRefFromVars(ctx, userID)
		if err != nil {
			return nil, err
		}
		detail, err := h.chapters.Get(c, ref)
		if err != nil {
			return nil, err
		}
		return dto.ToChapterDetail(detail), nil
	})
}

func (h *ChapterHandler) create(ctx khttp.Context) error {
	return h.serve(ctx, OperationCreateChapter, HandlerTypeCommand, func(c context.Context, userID string) (any, error) {
		courseID, err := uuidVar(ctx, "course_id")
		if err != nil {
			return nil, err
		}
		var req dto.CreateChapterRequest
		if err := h.bind(ctx, &req); err != nil {
			return nil, err
		}
		chapters, err := h.chapters.Create(c, services.CreateChapterInput{UserID: userID, CourseID: courseID, Title: req.Title})
		if err != nil {
			return nil, err
		}
		return dto.ToChapters(chapters), nil
	})
}

func (h *ChapterHandler) update(ctx khttp.Context) error {
	return h.serve(ctx, OperationUpdateChapter, HandlerTypeCommand, func(c context.Context, userID string) (any, error) {
		ref, err := chapterRefFromVars(ctx, userID)
		if err != nil {
			return nil, err
		}
		body, err := io.ReadAll(io.LimitReader(ctx.Request().Body, maxPatchBodyBytes))
		if err != nil {
			return nil, errors.BadRequest(ReasonInvalidArgument, "read request body failed").WithCause(err)
		}
		ops, err := dto.DecodeChapterPatch(body)
		if err != nil {
			return nil, errors.BadRequest(ReasonInvalidArgument, "request body must be a json object").WithCause(err)
		}
		chapter, err := h.chapters.Update(c, services.UpdateChapterInput{ChapterRef: ref, Ops: ops})
		if err != nil {
			return nil, err
		}
		return dto.ToChapter(chapter), nil
	})
}

func (h *ChapterHandler) delete(ctx khttp.Context) error {
	return h.serve(ctx, OperationDeleteChapter, HandlerTypeCommand, func(c context.Context, userID string) (any, error) {
		ref, err := chapterRefFromVars(ctx, userID)
		if err != nil {
			return nil, err
		}
		if err := h.chapters.Delete(c, ref); err != nil {
			return nil, err
		}
		return &dto.DeleteChapterResponse{ID: ref.ChapterID.String()}, nil
	})
}

func (h *ChapterHandler) reorder(ctx khttp.Context) error {
	return h.serve(ctx, OperationReorderChapters, HandlerTypeCommand, func(c context.Context, userID string) (any, error) {
		courseID, err := uuidVar(ctx, "course_id")
		if err != nil {
			return nil, err
		}
		var req dto.ReorderChaptersRequest
		if err := h.bind(ctx, &req); err != nil {
			return nil, err
		}
		items := make([]services.ChapterPosition, 0, len(req.List))
		for i, item := range req.List {
			id, err := uuid.Parse(strings.TrimSpace(item.ID))
			if err != nil {
				return nil, errors.BadRequest(ReasonInvalidArgument, "invalid chapter id").
					WithMetadata(map[string]string{fmt.Sprintf("ReorderChaptersRequest.List[%d].ID", i): "uuid"})
			}
			items = append(items, services.ChapterPosition{ChapterID: id, Position: item.Position})
		}
		chapters, err := h.chapters.Reorder(c, services.ReorderChaptersInput{UserID: userID, CourseID: courseID, Items: items})
		if err != nil {
			return nil, err
		}
		return dto.ToChapters(chapters), nil
	})
}

func (h *ChapterHandler) publish(ctx khttp.Context) error {
	return h.serve(ctx, OperationPublishChapter, HandlerTypeCommand, func(c context.Context, userID string) (any, error) {
		ref, err := chapterRefFromVars(ctx, userID)
		if err != nil {
			return nil, err
		}
		chapter, err := h.chapters.Publish(c, ref)
		if err != nil {
			return nil, err
		}
		return dto.ToChapter(chapter), nil
	})
}

func (h *ChapterHandler) unpublish(ctx khttp.Context) error {
	return h.serve(ctx, OperationUnpublish, HandlerTypeCommand, func(c context.Context, userID string) (any, error) {
		ref, err := chapterRefFromVars(ctx, userID)
		if err != nil {
			return nil, err
		}
		chapter, err := h.chapters.Unpublish(c, ref)
		if err != nil {
			return nil, err
		}
		return dto.ToChapter(chapter), nil
	})
}

func (h *ChapterHandler) updateProgress(ctx khttp.Context) error {
	return h.serve(ctx, OperationUpdateProgress, HandlerTypeCommand, func(c context.Context, userID string) (any, error) {
		chapterID, err := uuidVar(ctx, "chapter_id")
		if err != nil {
			return nil, err
		}
		var req dto.UpdateProgressRequest
		if err := h.bind(ctx, &req); err != nil {
			return nil, err
		}
		progress, err := h.chapters.UpdateProgress(c, services.UpdateProgressInput{
			UserID:      userID,
			ChapterID:   chapterID,
			IsCompleted: *req.IsCompleted,
		})
		if err != nil {
			return nil, err
		}
		return dto.ToUserProgress(progress), nil
	})
}

// bind 解码请求体并执行 validator 校验，字段错误写入错误 metadata。
func (h *ChapterHandler) bind(ctx khttp.Context, req any) error {
	if err := ctx.Bind(req); err != nil {
		return errors.BadRequest(ReasonInvalidArgument, "malformed request body").WithCause(err)
	}
	if err := h.validate.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if !stdErrors.As(err, &fieldErrs) {
			return errors.BadRequest(ReasonInvalidArgument, "invalid request")
		}
		details := make(map[string]string, len(fieldErrs))
		for _, fe := range fieldErrs {
			details[fe.Namespace()] = fe.Tag()
		}
		return errors.BadRequest(ReasonInvalidArgument, "request validation failed").WithMetadata(details)
	}
	return nil
}

func chapterRefFromVars(ctx khttp.Context, userID string) (services.ChapterRef, error) {
	courseID, err := uuidVar(ctx, "course_id")
	if err != nil {
		return services.ChapterRef{}, err
	}
	chapterID, err := uuidVar(ctx, "chapter_id")
	if err != nil {
		return services.ChapterRef{}, err
	}
	return services.ChapterRef{UserID: userID, CourseID: courseID, ChapterID: chapterID}, nil
}

func uuidVar(ctx khttp.Context, name string) (uuid.UUID, error) {
	raw := strings.TrimSpace(ctx.Vars().Get(name))
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.BadRequest(ReasonInvalidArgument, "invalid "+name)
	}
	return id, nil
}
