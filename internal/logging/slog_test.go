package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func newBufLogger() (*SlogLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return NewSlogLogger(slog.New(h)), &buf
}

func TestSlogLogger_Levels(t *testing.T) {
	log, buf := newBufLogger()
	ctx := context.Background()

	log.Debug(ctx, "d", "k", "v")
	log.Info(ctx, "i")
	log.Warn(ctx, "w")
	log.Error(ctx, "e")

	out := buf.String()
	require.Contains(t, out, "level=DEBUG")
	require.Contains(t, out, "level=INFO")
	require.Contains(t, out, "level=WARN")
	require.Contains(t, out, "level=ERROR")
	require.Contains(t, out, "k=v")
}

func TestSlogLogger_With(t *testing.T) {
	log, buf := newBufLogger()

	child := log.With("component", "api")
	child.Info(context.Background(), "hello")

	require.Contains(t, buf.String(), "component=api")
}

func TestNewNopLogger_Discards(t *testing.T) {
	log := NewNopLogger()
	log.Info(context.Background(), "nothing happens")
}
