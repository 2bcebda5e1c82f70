// Package httpserver wraps net/http with graceful shutdown, env-driven
// timeouts, and functional options. Run blocks until the context is canceled,
// SIGINT/SIGTERM arrives, or the listener fails.
package httpserver
