// Package logger is a small factory around log/slog with env-driven defaults
// (JSON format, info level) and shared attribute helpers so log keys stay
// consistent across the service.
package logger
