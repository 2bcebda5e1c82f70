// Package binder parses HTTP request bodies into typed values.
//
// Only strict JSON binding is provided: the content type must be
// application/json, bodies are size-limited, unknown fields are rejected, and
// trailing data after the JSON document is an error. Failures wrap the
// package's sentinel errors so callers can map them to client responses with
// errors.Is.
package binder
