package services

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const releaseMeterName = "lingo-services-course.services.asset"

type releaseMetrics struct {
	releaseCounter metric.Int64Counter
}

func newReleaseMetrics() *releaseMetrics {
	m := otel.GetMeterProvider().Meter(releaseMeterName)
	releaseCounter, _ := m.Int64Counter("course_asset_release_total",
		metric.WithDescription("Video asset releases grouped by remote delete outcome"))
	return &releaseMetrics{releaseCounter: releaseCounter}
}

func (m *releaseMetrics) record(ctx context.Context, result string) {
	if m == nil || m.releaseCounter == nil {
		return
	}
	m.releaseCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("result", result)))
}
