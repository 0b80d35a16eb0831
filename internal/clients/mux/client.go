// Package mux 封装 Mux Video REST API，负责视频资产的创建与删除。
package mux

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-resty/resty/v2"
)

const (
	// DefaultBaseURL 为 Mux 生产环境地址。
	DefaultBaseURL = "https://api.mux.com"

	assetsPath = "/video/v1/assets"
	assetPath  = "/video/v1/assets/{asset_id}"

	// PlaybackPolicyPublic 表示公开可播放。
	PlaybackPolicyPublic = "public"
	// VideoQualityBasic 为标准编码档位。
	VideoQualityBasic = "basic"
)

// ErrMissingCredentials 表示未配置 token id 或 secret。
var ErrMissingCredentials = errors.New("mux: token id and token secret are required")

// Config 描述 Mux 客户端参数。
type Config struct {
	BaseURL     string
	TokenID     string
	TokenSecret string
	Timeout     time.Duration
}

// CreateAssetInput 描述从源地址创建资产的请求。
type CreateAssetInput struct {
	SourceURL      string
	PlaybackPolicy []string
	VideoQuality   string
}

// CreatedAsset 为创建成功后的资产标识，PlaybackIDs 保持 Mux 返回顺序。
type CreatedAsset struct {
	AssetID     string
	PlaybackIDs []string
}

type createAssetRequest struct {
	Input          string   `json:"input"`
	PlaybackPolicy []string `json:"playback_policy"`
	VideoQuality   string   `json:"video_quality"`
}

type assetResponse struct {
	Data struct {
		ID          string `json:"id"`
		Status      string `json:"status"`
		PlaybackIDs []struct {
			ID     string `json:"id"`
			Policy string `json:"policy"`
		} `json:"playback_ids"`
	} `json:"data"`
}

// Client 是基于 resty 的 Mux Video 客户端。
type Client struct {
	http    *resty.Client
	log     *log.Helper
	metrics *metrics
}

// NewClient 构造客户端；缺少凭证时返回 ErrMissingCredentials。
func NewClient(cfg Config, logger log.Logger) (*Client, error) {
	if strings.TrimSpace(cfg.TokenID) == "" || strings.TrimSpace(cfg.TokenSecret) == "" {
		return nil, ErrMissingCredentials
	}
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetBasicAuth(cfg.TokenID, cfg.TokenSecret).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{
		http:    httpClient,
		log:     log.NewHelper(log.With(logger, "component", "mux")),
		metrics: newMetrics(),
	}, nil
}

// CreateAsset 请求 Mux 从 SourceURL 拉取并创建资产，仅 201 视为成功。
func (c *Client) CreateAsset(ctx context.Context, input CreateAssetInput) (*CreatedAsset, error) {
	policy := input.PlaybackPolicy
	if len(policy) == 0 {
		policy = []string{PlaybackPolicyPublic}
	}
	quality := input.VideoQuality
	if quality == "" {
		quality = VideoQualityBasic
	}

	var result assetResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(createAssetRequest{
			Input:          input.SourceURL,
			PlaybackPolicy: policy,
			VideoQuality:   quality,
		}).
		SetResult(&result).
		Post(assetsPath)
	if err != nil {
		c.metrics.record(ctx, "create", "transport_error")
		c.log.WithContext(ctx).Warnf("mux create asset request failed: err=%v", err)
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}

	if resp.StatusCode() != 201 {
		kind := classifyCreate(resp.StatusCode())
		c.metrics.record(ctx, "create", statusLabel(kind))
		c.log.WithContext(ctx).Warnf("mux create asset rejected: status=%d body=%s", resp.StatusCode(), truncate(resp.String()))
		return nil, &StatusError{Op: "create asset", Status: resp.StatusCode(), Body: resp.String(), kind: kind}
	}
	if result.Data.ID == "" {
		c.metrics.record(ctx, "create", "invalid_response")
		return nil, fmt.Errorf("%w: response missing asset id", ErrRequestFailed)
	}

	created := &CreatedAsset{AssetID: result.Data.ID}
	for _, pb := range result.Data.PlaybackIDs {
		if pb.ID != "" {
			created.PlaybackIDs = append(created.PlaybackIDs, pb.ID)
		}
	}
	c.metrics.record(ctx, "create", "success")
	return created, nil
}

// DeleteAsset 删除指定资产；资产不存在时返回 ErrAssetNotFound。
func (c *Client) DeleteAsset(ctx context.Context, assetID string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("asset_id", assetID).
		Delete(assetPath)
	if err != nil {
		c.metrics.record(ctx, "delete", "transport_error")
		return fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	if resp.IsSuccess() {
		c.metrics.record(ctx, "delete", "success")
		return nil
	}
	kind := classifyDelete(resp.StatusCode())
	c.metrics.record(ctx, "delete", statusLabel(kind))
	return &StatusError{Op: "delete asset", Status: resp.StatusCode(), Body: resp.String(), kind: kind}
}

func statusLabel(kind error) string {
	switch {
	case errors.Is(kind, ErrUnauthorized):
		return "unauthorized"
	case errors.Is(kind, ErrServerError):
		return "server_error"
	case errors.Is(kind, ErrAssetNotFound):
		return "not_found"
	default:
		return "rejected"
	}
}

func truncate(body string) string {
	const limit = 256
	if len(body) <= limit {
		return body
	}
	return body[:limit] + "..."
}
