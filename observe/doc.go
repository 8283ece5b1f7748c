// Package observe provides observability primitives for the secretboot
// server: structured logging, OpenTelemetry tracing and metrics, and an
// echo middleware that instruments every HTTP request.
//
// It is a pure instrumentation library: no execution, no transport, no I/O
// beyond exporter setup. The server wires the observer into its middleware
// chain at startup.
package observe
