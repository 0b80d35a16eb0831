package mux

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "lingo-services-course.clients.mux"

type metrics struct {
	requestCounter metric.Int64Counter
}

func newMetrics() *metrics {
	m := otel.GetMeterProvider().Meter(meterName)
	requestCounter, _ := m.Int64Counter("course_video_provider_requests_total",
		metric.WithDescription("Number of Mux API requests grouped by operation and result"))
	return &metrics{requestCounter: requestCounter}
}

func (m *metrics) record(ctx context.Context, op, result string) {
	if m == nil || m.requestCounter == nil {
		return
	}
	m.requestCounter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("op", op),
		attribute.String("result", result),
	))
}
