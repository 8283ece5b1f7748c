// Package bootstrap merges externally-materialized secrets into the
// process configuration at startup.
//
// A Vault Agent sidecar (or any compatible agent) renders a shell-export
// style secrets file into a memory-backed volume before the server process
// starts. Run reads that file exactly once, overlays its entries on the
// inherited process environment, and returns an immutable Environment
// snapshot that is threaded into the HTTP handlers.
//
// Bootstrap is deliberately best-effort: a missing file, an unreadable
// file, or malformed lines never prevent the server from starting. The
// health endpoint has to keep answering whether or not secrets arrived.
package bootstrap
