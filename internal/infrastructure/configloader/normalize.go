package configloader

import (
	"time"

	"github.com/bionicotaku/lingo-services-course/internal/clients/mux"
)

const (
	defaultHandlerTimeout = 5 * time.Second
	defaultQueryTimeout   = 3 * time.Second

	defaultMuxTimeout       = 10 * time.Second
	defaultMuxDeleteTimeout = 3 * time.Second

	defaultCleanupTick           = 30 * time.Second
	defaultCleanupBatchSize      = 20
	defaultCleanupWorkers        = 4
	defaultCleanupMaxAttempts    = 8
	defaultCleanupInitialBackoff = 30 * time.Second
	defaultCleanupMaxBackoff     = 30 * time.Minute
	defaultCleanupLockTTL        = 2 * time.Minute
)

func fromBootstrap(b *Bootstrap) RuntimeConfig {
	if b == nil {
		return RuntimeConfig{}
	}
	return RuntimeConfig{
		Server:        serverFromBootstrap(b.Server),
		Database:      databaseFromBootstrap(b.Data),
		Observability: observabilityFromBootstrap(b.Observability),
		Mux:           muxFromBootstrap(b.Mux),
		Cleanup:       cleanupFromBootstrap(b.Cleanup),
	}
}

func serverFromBootstrap(s ServerSection) ServerConfig {
	return ServerConfig{
		Network: s.HTTP.Network,
		Address: s.HTTP.Addr,
		Timeout: s.HTTP.Timeout.Duration,
		JWT: ServerJWTConfig{
			ExpectedAudience: s.JWT.ExpectedAudience,
			SkipValidate:     s.JWT.SkipValidate,
			Required:         s.JWT.Required,
			HeaderKey:        firstNonEmpty(s.JWT.HeaderKey, "authorization"),
		},
		Handlers: HandlerTimeoutConfig{
			Default: firstNonZero(s.Handlers.DefaultTimeout.Duration, defaultHandlerTimeout),
			Command: firstNonZero(s.Handlers.CommandTimeout.Duration, s.Handlers.DefaultTimeout.Duration, defaultHandlerTimeout),
			Query:   firstNonZero(s.Handlers.QueryTimeout.Duration, defaultQueryTimeout),
		},
		MetadataKeys: append([]string(nil), s.MetadataKeys...),
	}
}

func databaseFromBootstrap(d DataSection) DatabaseConfig {
	pg := d.Postgres
	return DatabaseConfig{
		DSN:               pg.DSN,
		MaxOpenConns:      pg.MaxOpenConns,
		MinOpenConns:      pg.MinOpenConns,
		MaxConnLifetime:   pg.MaxConnLifetime.Duration,
		MaxConnIdleTime:   pg.MaxConnIdleTime.Duration,
		HealthCheckPeriod: pg.HealthCheckPeriod.Duration,
		Schema:            firstNonEmpty(pg.Schema, "course"),
		PreparedStmts:     pg.PreparedStatementsEnabled,
		PoolMetrics:       pg.PoolMetricsEnabled,
		Transaction: TransactionConfig{
			DefaultIsolation: pg.Transaction.DefaultIsolation,
			DefaultTimeout:   pg.Transaction.DefaultTimeout.Duration,
			LockTimeout:      pg.Transaction.LockTimeout.Duration,
			MaxRetries:       pg.Transaction.MaxRetries,
			MetricsEnabled:   pg.Transaction.MetricsEnabled,
		},
	}
}

func observabilityFromBootstrap(o ObservabilitySection) ObservabilityConfig {
	return ObservabilityConfig{
		GlobalAttributes: mapCopy(o.GlobalAttributes),
		Tracing: TracingConfig{
			Enabled:            o.Tracing.Enabled,
			Exporter:           o.Tracing.Exporter,
			Endpoint:           o.Tracing.Endpoint,
			Headers:            mapCopy(o.Tracing.Headers),
			Insecure:           o.Tracing.Insecure,
			SamplingRatio:      o.Tracing.SamplingRatio,
			BatchTimeout:       o.Tracing.BatchTimeout.Duration,
			ExportTimeout:      o.Tracing.ExportTimeout.Duration,
			MaxQueueSize:       o.Tracing.MaxQueueSize,
			MaxExportBatchSize: o.Tracing.MaxExportBatchSize,
			Required:           o.Tracing.Required,
			Attributes:         mapCopy(o.Tracing.Attributes),
		},
		Metrics: MetricsConfig{
			Enabled:             o.Metrics.Enabled,
			Exporter:            o.Metrics.Exporter,
			Endpoint:            o.Metrics.Endpoint,
			Headers:             mapCopy(o.Metrics.Headers),
			Insecure:            o.Metrics.Insecure,
			Interval:            o.Metrics.Interval.Duration,
			DisableRuntimeStats: o.Metrics.DisableRuntimeStats,
			Required:            o.Metrics.Required,
			ResourceAttributes:  mapCopy(o.Metrics.ResourceAttributes),
		},
	}
}

func muxFromBootstrap(m MuxSection) MuxConfig {
	policy := append([]string(nil), m.PlaybackPolicy...)
	if len(policy) == 0 {
		policy = []string{mux.PlaybackPolicyPublic}
	}
	return MuxConfig{
		BaseURL:        firstNonEmpty(m.BaseURL, mux.DefaultBaseURL),
		TokenID:        m.TokenID,
		TokenSecret:    m.TokenSecret,
		Timeout:        firstNonZero(m.Timeout.Duration, defaultMuxTimeout),
		DeleteTimeout:  firstNonZero(m.DeleteTimeout.Duration, defaultMuxDeleteTimeout),
		PlaybackPolicy: policy,
		VideoQuality:   firstNonEmpty(m.VideoQuality, mux.VideoQualityBasic),
	}
}

func cleanupFromBootstrap(c CleanupSection) CleanupConfig {
	enabled := true
	if c.Enabled != nil {
		enabled = *c.Enabled
	}
	cfg := CleanupConfig{
		Enabled:        enabled,
		TickInterval:   firstNonZero(c.TickInterval.Duration, defaultCleanupTick),
		BatchSize:      firstPositive(c.BatchSize, defaultCleanupBatchSize),
		Workers:        firstPositive(c.Workers, defaultCleanupWorkers),
		MaxAttempts:    firstPositive(c.MaxAttempts, defaultCleanupMaxAttempts),
		InitialBackoff: firstNonZero(c.InitialBackoff.Duration, defaultCleanupInitialBackoff),
		MaxBackoff:     firstNonZero(c.MaxBackoff.Duration, defaultCleanupMaxBackoff),
		LockTTL:        firstNonZero(c.LockTTL.Duration, defaultCleanupLockTTL),
	}
	if cfg.MaxBackoff < cfg.InitialBackoff {
		cfg.MaxBackoff = cfg.InitialBackoff
	}
	return cfg
}

func mapCopy(src map[string]string) map[string]string {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[string]string, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func firstNonZero(durations ...time.Duration) time.Duration {
	for _, d := range durations {
		if d > 0 {
			return d
		}
	}
	return 0
}

func firstPositive(values ...int) int {
	for _, v := range values {
		if v > 0 {
			return v
		}
	}
	return 0
}

func fillDefaults(cfg *RuntimeConfig) {
	if cfg.Server.JWT.HeaderKey == "" {
		cfg.Server.JWT.HeaderKey = "authorization"
	}
	if len(cfg.Server.MetadataKeys) == 0 {
		cfg.Server.MetadataKeys = []string{"x-apigateway-api-userinfo", "x-md-"}
	}
}
