// Package api exposes the HTTP surface of the QR generation service:
// POST /api/qr renders a QR image from a typed JSON request, GET /api/health
// reports liveness, and /metrics serves Prometheus exposition when metrics
// are wired in.
package api
