package httpserver_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bionicotaku/lingo-services-course/internal/controllers"
	configloader "github.com/bionicotaku/lingo-services-course/internal/infrastructure/configloader"
	httpserver "github.com/bionicotaku/lingo-services-course/internal/infrastructure/http_server"
	"github.com/bionicotaku/lingo-services-course/internal/models/vo"
	"github.com/bionicotaku/lingo-services-course/internal/services"
	"github.com/bionicotaku/lingo-services-course/internal/services/mocks"

	"github.com/bionicotaku/lingo-utils/gcjwt"
	"github.com/go-kratos/kratos/v2/log"
	khttp "github.com/go-kratos/kratos/v2/transport/http"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, jwt gcjwt.ServerMiddleware) (*khttp.Server, *mocks.MockChapterServiceInterface) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	svc := mocks.NewMockChapterServiceInterface(ctrl)
	handler := controllers.NewChapterHandler(svc, controllers.NewBaseHandler(controllers.HandlerTimeouts{}))
	cfg := configloader.ServerConfig{
		Address:      "127.0.0.1:0",
		MetadataKeys: []string{"x-apigateway-api-userinfo", "x-md-"},
	}
	return httpserver.NewHTTPServer(cfg, jwt, handler, log.NewStdLogger(io.Discard)), svc
}

func publishRequest(t *testing.T, courseID, chapterID uuid.UUID) *http.Request {
	t.Helper()
	claims, err := json.Marshal(map[string]string{"sub": "owner-1"})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPatch, "/v1/courses/"+courseID.String()+"/chapters/"+chapterID.String()+"/publish", nil)
	req.Header.Set("X-Apigateway-Api-Userinfo", base64.RawURLEncoding.EncodeToString(claims))
	return req
}

func TestNewHTTPServerRoutesChapterOperations(t *testing.T) {
	srv, svc := newServer(t, nil)
	courseID, chapterID := uuid.New(), uuid.New()

	svc.EXPECT().Publish(gomock.Any(), services.ChapterRef{UserID: "owner-1", CourseID: courseID, ChapterID: chapterID}).
		Return(&vo.Chapter{ID: chapterID.String(), CourseID: courseID.String(), Title: "Intro", IsPublished: true}, nil)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, publishRequest(t, courseID, chapterID))

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, chapterID.String(), body["id"])
	require.Equal(t, true, body["isPublished"])
}

func TestNewHTTPServerRecoversFromPanic(t *testing.T) {
	srv, svc := newServer(t, nil)
	courseID, chapterID := uuid.New(), uuid.New()

	svc.EXPECT().Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, services.ChapterRef) (*vo.Chapter, error) {
			panic("boom")
		})

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, publishRequest(t, courseID, chapterID))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestNewHTTPServerUnknownRoute(t *testing.T) {
	srv, _ := newServer(t, nil)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/unknown", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

// skip_validate 且非必需时，未携带 token 的请求应放行到业务层。
func TestNewHTTPServerJWTSkipValidateOptionalToken(t *testing.T) {
	logger := log.NewStdLogger(io.Discard)
	component, cleanup, err := gcjwt.NewComponent(gcjwt.Config{
		Server: &gcjwt.ServerConfig{
			ExpectedAudience: "https://example.run.app/",
			SkipValidate:     true,
			Required:         false,
		},
	}, logger)
	require.NoError(t, err)
	t.Cleanup(cleanup)

	serverMW, err := gcjwt.ProvideServerMiddleware(component)
	require.NoError(t, err)

	srv, svc := newServer(t, serverMW)
	courseID, chapterID := uuid.New(), uuid.New()
	svc.EXPECT().Publish(gomock.Any(), gomock.Any()).
		Return(&vo.Chapter{ID: chapterID.String(), CourseID: courseID.String()}, nil)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, publishRequest(t, courseID, chapterID))
	require.Equal(t, http.StatusOK, rec.Code)
}
