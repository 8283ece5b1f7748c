package health

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// LivenessHandler returns the liveness probe handler.
//
// It answers {"status":"ok"} 200 unconditionally; liveness never depends
// on secret availability or any component check.
func LivenessHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	}
}

// ReadinessHandler returns the readiness probe handler.
// It runs all checks in the aggregator; Degraded still counts as ready.
func ReadinessHandler(agg *Aggregator) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
		defer cancel()

		results := agg.CheckAll(ctx)
		status := agg.OverallStatus(results)

		switch status {
		case StatusHealthy:
			return c.String(http.StatusOK, "OK")
		case StatusDegraded:
			return c.String(http.StatusOK, "DEGRADED")
		default:
			return c.String(http.StatusServiceUnavailable, "UNHEALTHY")
		}
	}
}

// HealthResponse is the JSON response for the detailed health endpoint.
type HealthResponse struct {
	Status    string                   `json:"status"`
	Timestamp string                   `json:"timestamp"`
	Checks    map[string]CheckResponse `json:"checks,omitempty"`
}

// CheckResponse is the JSON response for a single health check.
type CheckResponse struct {
	Status   string         `json:"status"`
	Message  string         `json:"message,omitempty"`
	Duration string         `json:"duration,omitempty"`
	Details  map[string]any `json:"details,omitempty"`
	Error    string         `json:"error,omitempty"`
}

// DetailedHandler returns a handler that reports every check's result.
func DetailedHandler(agg *Aggregator) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
		defer cancel()

		results := agg.CheckAll(ctx)
		status := agg.OverallStatus(results)

		response := HealthResponse{
			Status:    status.String(),
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Checks:    make(map[string]CheckResponse, len(results)),
		}

		for name, result := range results {
			check := CheckResponse{
				Status:   result.Status.String(),
				Message:  result.Message,
				Duration: result.Duration.String(),
				Details:  result.Details,
			}
			if result.Error != nil {
				check.Error = result.Error.Error()
			}
			response.Checks[name] = check
		}

		code := http.StatusOK
		if status == StatusUnhealthy {
			code = http.StatusServiceUnavailable
		}
		return c.JSON(code, response)
	}
}

// RegisterHandlers registers the health endpoints on e.
func RegisterHandlers(e *echo.Echo, agg *Aggregator) {
	e.GET("/health", LivenessHandler())
	e.GET("/readyz", ReadinessHandler(agg))
	e.GET("/healthz/details", DetailedHandler(agg))
}
