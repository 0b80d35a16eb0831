package configloader

import (
	"encoding/json"
	"fmt"
	"time"
)

// Duration 支持以 "5s"、"250ms" 形式书写的时长。
type Duration struct {
	time.Duration
}

// UnmarshalJSON 解析字符串时长；数字按秒处理。
func (d *Duration) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case nil:
		d.Duration = 0
	case string:
		if v == "" {
			d.Duration = 0
			return nil
		}
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", v, err)
		}
		d.Duration = parsed
	case float64:
		d.Duration = time.Duration(v * float64(time.Second))
	default:
		return fmt.Errorf("invalid duration %v", raw)
	}
	return nil
}

// Bootstrap 与 configs/config.yaml 的结构一一对应。
type Bootstrap struct {
	Server        ServerSection        `json:"server"`
	Data          DataSection          `json:"data"`
	Observability ObservabilitySection `json:"observability"`
	Mux           MuxSection           `json:"mux"`
	Cleanup       CleanupSection       `json:"cleanup"`
}

// ServerSection 描述入站 HTTP 服务。
type ServerSection struct {
	HTTP struct {
		Network string   `json:"network"`
		Addr    string   `json:"addr" validate:"required"`
		Timeout Duration `json:"timeout"`
	} `json:"http"`
	JWT struct {
		ExpectedAudience string `json:"expected_audience"`
		SkipValidate     bool   `json:"skip_validate"`
		Required         bool   `json:"required"`
		HeaderKey        string `json:"header_key"`
	} `json:"jwt"`
	Handlers struct {
		DefaultTimeout Duration `json:"default_timeout"`
		CommandTimeout Duration `json:"command_timeout"`
		QueryTimeout   Duration `json:"query_timeout"`
	} `json:"handlers"`
	MetadataKeys []string `json:"metadata_keys"`
}

// DataSection 描述数据源。
type DataSection struct {
	Postgres struct {
		DSN                       string   `json:"dsn" validate:"required"`
		MaxOpenConns              int      `json:"max_open_conns" validate:"gte=0"`
		MinOpenConns              int      `json:"min_open_conns" validate:"gte=0"`
		MaxConnLifetime           Duration `json:"max_conn_lifetime"`
		MaxConnIdleTime           Duration `json:"max_conn_idle_time"`
		HealthCheckPeriod         Duration `json:"health_check_period"`
		Schema                    string   `json:"schema"`
		PreparedStatementsEnabled bool     `json:"prepared_statements_enabled"`
		PoolMetricsEnabled        bool     `json:"pool_metrics_enabled"`
		Transaction               struct {
			DefaultIsolation string   `json:"default_isolation" validate:"omitempty,oneof=read_committed repeatable_read serializable"`
			DefaultTimeout   Duration `json:"default_timeout"`
			LockTimeout      Duration `json:"lock_timeout"`
			MaxRetries       int      `json:"max_retries" validate:"gte=0"`
			MetricsEnabled   bool     `json:"metrics_enabled"`
		} `json:"transaction"`
	} `json:"postgres"`
}

// ObservabilitySection 描述 tracing 与 metrics 导出。
type ObservabilitySection struct {
	GlobalAttributes map[string]string `json:"global_attributes"`
	Tracing          struct {
		Enabled            bool              `json:"enabled"`
		Exporter           string            `json:"exporter"`
		Endpoint           string            `json:"endpoint"`
		Headers            map[string]string `json:"headers"`
		Insecure           bool              `json:"insecure"`
		SamplingRatio      float64           `json:"sampling_ratio" validate:"gte=0,lte=1"`
		BatchTimeout       Duration          `json:"batch_timeout"`
		ExportTimeout      Duration          `json:"export_timeout"`
		MaxQueueSize       int               `json:"max_queue_size" validate:"gte=0"`
		MaxExportBatchSize int               `json:"max_export_batch_size" validate:"gte=0"`
		Required           bool              `json:"required"`
		Attributes         map[string]string `json:"attributes"`
	} `json:"tracing"`
	Metrics struct {
		Enabled             bool              `json:"enabled"`
		Exporter            string            `json:"exporter"`
		Endpoint            string            `json:"endpoint"`
		Headers             map[string]string `json:"headers"`
		Insecure            bool              `json:"insecure"`
		Interval            Duration          `json:"interval"`
		DisableRuntimeStats bool              `json:"disable_runtime_stats"`
		Required            bool              `json:"required"`
		ResourceAttributes  map[string]string `json:"resource_attributes"`
	} `json:"metrics"`
}

// MuxSection 描述视频托管方凭证与请求参数。
type MuxSection struct {
	BaseURL        string   `json:"base_url" validate:"omitempty,url"`
	TokenID        string   `json:"token_id" validate:"required"`
	TokenSecret    string   `json:"token_secret" validate:"required"`
	Timeout        Duration `json:"timeout"`
	DeleteTimeout  Duration `json:"delete_timeout"`
	PlaybackPolicy []string `json:"playback_policy" validate:"omitempty,dive,oneof=public signed"`
	VideoQuality   string   `json:"video_quality" validate:"omitempty,oneof=basic plus premium"`
}

// CleanupSection 描述远端资产清理任务。
type CleanupSection struct {
	Enabled        *bool    `json:"enabled"`
	TickInterval   Duration `json:"tick_interval"`
	BatchSize      int      `json:"batch_size" validate:"gte=0"`
	Workers        int      `json:"workers" validate:"gte=0"`
	MaxAttempts    int      `json:"max_attempts" validate:"gte=0"`
	InitialBackoff Duration `json:"initial_backoff"`
	MaxBackoff     Duration `json:"max_backoff"`
	LockTTL        Duration `json:"lock_ttl"`
}
