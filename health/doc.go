// Package health provides liveness and readiness checking for the
// secretboot server.
//
// The liveness endpoint is deliberately dumb: it answers {"status":"ok"}
// unconditionally, so the orchestrator never kills a pod just because the
// secret backend is slow. Readiness is where component checks live: a
// Checker reports Healthy, Degraded, or Unhealthy, and an Aggregator
// combines multiple checkers into a composite signal.
//
// # Basic Usage
//
//	agg := health.NewAggregator()
//	agg.Register("secrets_file", health.NewSecretsFileChecker(path))
//	agg.Register("memory", health.NewMemoryChecker(health.MemoryCheckerConfig{}))
//
//	e.GET("/health", health.LivenessHandler())
//	e.GET("/readyz", health.ReadinessHandler(agg))
//	e.GET("/healthz/details", health.DetailedHandler(agg))
package health
