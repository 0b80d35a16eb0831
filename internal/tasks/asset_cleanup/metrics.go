package assetcleanup

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "lingo-services-course.tasks.asset_cleanup"

const (
	resultCompleted   = "completed"
	resultAlreadyGone = "already_gone"
	resultRescheduled = "rescheduled"
	resultAbandoned   = "abandoned"
	resultLockLost    = "lock_lost"
	resultStoreError  = "store_error"
)

type metrics struct {
	jobCounter   metric.Int64Counter
	pendingGauge metric.Int64Gauge
}

func newMetrics(m metric.Meter) *metrics {
	if m == nil {
		m = otel.GetMeterProvider().Meter(meterName)
	}
	jobCounter, _ := m.Int64Counter("course_asset_cleanup_jobs_total",
		metric.WithDescription("Asset cleanup jobs processed grouped by result"))
	pendingGauge, _ := m.Int64Gauge("course_asset_cleanup_pending_jobs",
		metric.WithDescription("Asset cleanup jobs not yet completed after the latest round"))
	return &metrics{jobCounter: jobCounter, pendingGauge: pendingGauge}
}

func (m *metrics) record(ctx context.Context, result string) {
	if m == nil || m.jobCounter == nil {
		return
	}
	m.jobCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("result", result)))
}

func (m *metrics) recordPending(ctx context.Context, pending int64) {
	if m == nil || m.pendingGauge == nil {
		return
	}
	m.pendingGauge.Record(ctx, pending)
}
