package observe

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

// RequestMeta contains metadata about an HTTP request for telemetry purposes.
type RequestMeta struct {
	Method string // HTTP method (required)
	Route  string // Registered route pattern, e.g. "/health" (required)
	Path   string // Concrete request path (optional)
	Remote string // Client address (optional)
}

// SpanName returns the deterministic span name for this request.
// Format: "<METHOD> <route>", the OpenTelemetry HTTP server convention.
func (m RequestMeta) SpanName() string {
	if m.Route == "" {
		return m.Method
	}
	return m.Method + " " + m.Route
}

// Tracer wraps OpenTelemetry tracing with request-scoped span management.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Context: StartSpan must honor cancellation/deadlines and return ctx.Err() when canceled.
// - Errors: EndSpan must be best-effort and must not panic.
type Tracer interface {
	// StartSpan starts a new span for the request.
	StartSpan(ctx context.Context, meta RequestMeta) (context.Context, trace.Span)

	// EndSpan ends the span, recording the response status and any error.
	EndSpan(span trace.Span, status int, err error)
}

// tracerImpl is the concrete implementation of Tracer.
type tracerImpl struct {
	tracer trace.Tracer
}

// newTracer creates a new Tracer wrapping the given OpenTelemetry tracer.
func newTracer(t trace.Tracer) Tracer {
	return &tracerImpl{tracer: t}
}

// StartSpan starts a new span with request metadata as attributes.
func (t *tracerImpl) StartSpan(ctx context.Context, meta RequestMeta) (context.Context, trace.Span) {
	attrs := []attribute.KeyValue{
		attribute.String("http.request.method", meta.Method),
		attribute.String("http.route", meta.Route),
	}
	if meta.Path != "" {
		attrs = append(attrs, attribute.String("url.path", meta.Path))
	}
	if meta.Remote != "" {
		attrs = append(attrs, attribute.String("client.address", meta.Remote))
	}

	ctx, span := t.tracer.Start(ctx, meta.SpanName(),
		trace.WithAttributes(attrs...),
		trace.WithSpanKind(trace.SpanKindServer),
	)

	return ctx, span
}

// EndSpan ends the span and records the status code and error if present.
func (t *tracerImpl) EndSpan(span trace.Span, status int, err error) {
	if status > 0 {
		span.SetAttributes(attribute.Int("http.response.status_code", status))
	}
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		span.RecordError(err)
	} else if status >= 500 {
		span.SetStatus(codes.Error, "")
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// noopTracer is a tracer that does nothing.
type noopTracer struct {
	noop trace.Tracer
}

// newNoopTracer creates a no-op tracer.
func newNoopTracer() Tracer {
	return &noopTracer{
		noop: tracenoop.NewTracerProvider().Tracer("noop"),
	}
}

func (t *noopTracer) StartSpan(ctx context.Context, meta RequestMeta) (context.Context, trace.Span) {
	return t.noop.Start(ctx, meta.SpanName())
}

func (t *noopTracer) EndSpan(span trace.Span, status int, err error) {
	span.End()
}
