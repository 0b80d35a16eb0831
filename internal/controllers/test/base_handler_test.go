package controllers_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bionicotaku/lingo-services-course/internal/controllers"
	"github.com/bionicotaku/lingo-services-course/internal/metadata"

	khttp "github.com/go-kratos/kratos/v2/transport/http"
	"github.com/stretchr/testify/require"
)

func userInfoHeader(t *testing.T, claims map[string]any) string {
	t.Helper()
	payload, err := json.Marshal(claims)
	require.NoError(t, err)
	return base64.RawURLEncoding.EncodeToString(payload)
}

// captureMetadata 通过真实 HTTP Server 获取 ExtractMetadata 的结果。
func captureMetadata(t *testing.T, headers map[string]string) metadata.HandlerMetadata {
	t.Helper()
	base := controllers.NewBaseHandler(controllers.HandlerTimeouts{})
	var captured metadata.HandlerMetadata
	srv := khttp.NewServer()
	srv.Route("/").GET("/whoami", func(ctx khttp.Context) error {
		captured = base.ExtractMetadata(ctx)
		return ctx.Result(http.StatusOK, map[string]string{})
	})

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	return captured
}

func TestBaseHandlerExtractMetadata(t *testing.T) {
	header := userInfoHeader(t, map[string]any{"sub": "user_2abc", "email": "user@example.com"})
	meta := captureMetadata(t, map[string]string{
		"X-Apigateway-Api-Userinfo": header,
		"X-Request-Id":              "req-456",
	})

	require.Equal(t, "user_2abc", meta.UserID)
	require.Equal(t, header, meta.RawUserInfo)
	require.Equal(t, "req-456", meta.RequestID)
	require.False(t, meta.InvalidUserInfo)
	require.True(t, meta.Authenticated())

	ctx := controllers.InjectHandlerMetadata(context.Background(), meta)
	stored, ok := controllers.HandlerMetadataFromContext(ctx)
	require.True(t, ok)
	require.Equal(t, meta, stored)
}

func TestBaseHandlerInvalidUserInfo(t *testing.T) {
	meta := captureMetadata(t, map[string]string{"X-Apigateway-Api-Userinfo": "!!!invalid!!!"})
	require.True(t, meta.InvalidUserInfo)
	require.Empty(t, meta.UserID)

	meta = captureMetadata(t, map[string]string{"X-Apigateway-Api-Userinfo": userInfoHeader(t, map[string]any{"email": "a@b.c"})})
	require.True(t, meta.InvalidUserInfo)
}

func TestBaseHandlerWithoutTransport(t *testing.T) {
	base := controllers.NewBaseHandler(controllers.HandlerTimeouts{})
	require.True(t, base.ExtractMetadata(context.Background()).IsZero())

	_, _, err := base.RequireUser(context.Background())
	require.Error(t, err)
}

func TestBaseHandlerWithTimeout(t *testing.T) {
	handler := controllers.NewBaseHandler(controllers.HandlerTimeouts{Command: 200 * time.Millisecond})
	ctx, cancel := handler.WithTimeout(context.Background(), controllers.HandlerTypeCommand)
	defer cancel()

	deadline, ok := ctx.Deadline()
	require.True(t, ok)
	remaining := time.Until(deadline)
	require.Greater(t, remaining, 150*time.Millisecond)
	require.LessOrEqual(t, remaining, 200*time.Millisecond)

	queryCtx, cancelQuery := handler.WithTimeout(context.Background(), controllers.HandlerTypeQuery)
	defer cancelQuery()
	queryDeadline, ok := queryCtx.Deadline()
	require.True(t, ok)
	require.LessOrEqual(t, time.Until(queryDeadline), 200*time.Millisecond)
}
