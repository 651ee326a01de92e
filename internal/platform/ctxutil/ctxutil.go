// Package ctxutil provides helpers for interacting with values stored in
// [context.Context]. It carries a correlation id and a structured logger
// through the concurrent per-year (Phase A) and per-batch (Phase B) tasks so
// log lines from a single fan-out step share a common field.
package ctxutil

import (
	"context"
	"log/slog"

	"github.com/taibuivan/filmcatalog/internal/platform/ctxkey"
)

// WithRunID returns a new context with the provided crawl-run id attached.
func WithRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxkey.KeyRunID, id)
}

// GetRunID retrieves the crawl-run id from the context, or "" if absent.
func GetRunID(ctx context.Context) string {
	id, _ := ctx.Value(ctxkey.KeyRunID).(string)
	return id
}

// WithLogger returns a new context with the provided logger attached.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxkey.KeyLogger, logger)
}

// GetLogger retrieves the logger from the context.
// If no logger is found, it returns the global default logger.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(ctxkey.KeyLogger).(*slog.Logger)
	if !ok {
		return slog.Default()
	}
	return logger
}
