package observe

import (
	"context"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics records request metrics for the HTTP server.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Context: must honor cancellation/deadlines and return quickly.
// - Errors: implementations must not panic.
type Metrics interface {
	// RecordRequest records a served request with its duration and outcome.
	RecordRequest(ctx context.Context, meta RequestMeta, duration time.Duration, status int, err error)
}

// metricsImpl is the concrete implementation of Metrics.
type metricsImpl struct {
	meter        metric.Meter
	totalCount   metric.Int64Counter
	errorCount   metric.Int64Counter
	durationHist metric.Float64Histogram
}

// newMetrics creates a new Metrics instance with the given meter.
func newMetrics(meter metric.Meter) (*metricsImpl, error) {
	totalCount, err := meter.Int64Counter(
		"http.server.requests",
		metric.WithDescription("Total number of HTTP requests served"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}

	errorCount, err := meter.Int64Counter(
		"http.server.errors",
		metric.WithDescription("Total number of HTTP requests that failed"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, err
	}

	durationHist, err := meter.Float64Histogram(
		"http.server.duration_ms",
		metric.WithDescription("HTTP request duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &metricsImpl{
		meter:        meter,
		totalCount:   totalCount,
		errorCount:   errorCount,
		durationHist: durationHist,
	}, nil
}

// RecordRequest records metrics for a served request.
func (m *metricsImpl) RecordRequest(ctx context.Context, meta RequestMeta, duration time.Duration, status int, err error) {
	attrs := []attribute.KeyValue{
		attribute.String("http.request.method", meta.Method),
		attribute.String("http.route", meta.Route),
		attribute.String("http.response.status_code", strconv.Itoa(status)),
	}

	opt := metric.WithAttributes(attrs...)

	m.totalCount.Add(ctx, 1, opt)

	if err != nil || status >= 500 {
		m.errorCount.Add(ctx, 1, opt)
	}

	durationMs := float64(duration.Microseconds()) / 1000.0
	m.durationHist.Record(ctx, durationMs, opt)
}

// noopMetrics is a metrics implementation that does nothing.
type noopMetrics struct{}

func (m *noopMetrics) RecordRequest(ctx context.Context, meta RequestMeta, duration time.Duration, status int, err error) {
}
