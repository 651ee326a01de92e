package ctxutil_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/filmcatalog/internal/platform/ctxutil"
)

func TestRunID_RoundTrip(t *testing.T) {
	ctx := ctxutil.WithRunID(context.Background(), "0190-run")
	assert.Equal(t, "0190-run", ctxutil.GetRunID(ctx))
}

func TestGetRunID_AbsentIsEmpty(t *testing.T) {
	assert.Equal(t, "", ctxutil.GetRunID(context.Background()))
}

func TestLogger_RoundTrip(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := ctxutil.WithLogger(context.Background(), logger)
	assert.Same(t, logger, ctxutil.GetLogger(ctx))
}

func TestGetLogger_AbsentFallsBackToDefault(t *testing.T) {
	assert.Same(t, slog.Default(), ctxutil.GetLogger(context.Background()))
}
