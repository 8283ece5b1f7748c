package observe

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Middleware instruments HTTP request handling with tracing, metrics, and
// logging.
//
// Contract:
//   - Concurrency: Handler() returns a thread-safe echo.MiddlewareFunc.
//   - Context: propagates the span context via the request context.
//   - Errors: errors from the wrapped handler are recorded and propagated
//     unchanged so echo's error handler still runs.
type Middleware struct {
	tracer  Tracer
	metrics Metrics
	logger  Logger
}

// NewMiddleware creates a new Middleware with the given observability components.
func NewMiddleware(tracer Tracer, metrics Metrics, logger Logger) *Middleware {
	return &Middleware{
		tracer:  tracer,
		metrics: metrics,
		logger:  logger,
	}
}

// Handler returns an echo middleware that wraps request handling with one
// span, request metrics, and a structured access log entry.
func (m *Middleware) Handler() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			meta := RequestMeta{
				Method: req.Method,
				Route:  c.Path(),
				Path:   req.URL.Path,
				Remote: c.RealIP(),
			}

			ctx, span := m.tracer.StartSpan(req.Context(), meta)
			c.SetRequest(req.WithContext(ctx))

			start := time.Now()
			err := next(c)
			duration := time.Since(start)

			status := c.Response().Status
			if err != nil {
				// The error handler has not run yet; report the status it
				// will produce.
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				} else {
					status = http.StatusInternalServerError
				}
			}

			m.tracer.EndSpan(span, status, err)
			m.metrics.RecordRequest(ctx, meta, duration, status, err)

			fields := []Field{
				{Key: "method", Value: meta.Method},
				{Key: "route", Value: meta.Route},
				{Key: "status", Value: status},
				{Key: "duration_ms", Value: float64(duration.Milliseconds())},
			}
			if err != nil {
				fields = append(fields, Field{Key: "error", Value: err.Error()})
				m.logger.Error(ctx, "request failed", fields...)
			} else {
				m.logger.Info(ctx, "request served", fields...)
			}

			return err
		}
	}
}

// MiddlewareFromObserver creates a Middleware from an Observer.
// This is a convenience function for common use cases.
func MiddlewareFromObserver(obs Observer) (*Middleware, error) {
	tracer := newTracer(obs.Tracer())

	metrics, err := newMetrics(obs.Meter())
	if err != nil {
		return nil, err
	}

	return NewMiddleware(tracer, metrics, obs.Logger()), nil
}
