package observability

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestContextValues(t *testing.T) {
	ctx := WithStage(WithBuildID(context.Background(), "b-1"), "render")
	lc := FromContext(ctx)
	assert.Equal(t, "b-1", lc.BuildID)
	assert.Equal(t, "render", lc.Stage)

	assert.Equal(t, LogContext{}, FromContext(context.Background()))
}

func TestWithStageKeepsBuildID(t *testing.T) {
	ctx := WithBuildID(context.Background(), "b-2")
	ctx = WithStage(ctx, "index")
	ctx = WithStage(ctx, "write")
	lc := FromContext(ctx)
	assert.Equal(t, "b-2", lc.BuildID)
	assert.Equal(t, "write", lc.Stage)
}

func TestLogHelpersIncludeContext(t *testing.T) {
	buf := captureLogs(t)
	ctx := WithStage(WithBuildID(context.Background(), "b-3"), "index")

	InfoContext(ctx, "indexed", slog.Int("count", 2))
	DebugContext(ctx, "detail")
	WarnContext(ctx, "careful")
	ErrorContext(ctx, "broken")

	out := buf.String()
	require.Contains(t, out, "msg=indexed")
	assert.Contains(t, out, "build_id=b-3")
	assert.Contains(t, out, "stage=index")
	assert.Contains(t, out, "count=2")
	assert.Contains(t, out, "level=DEBUG")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "level=ERROR")
}

func TestLogHelpersWithoutContext(t *testing.T) {
	buf := captureLogs(t)
	InfoContext(context.Background(), "plain")
	assert.Contains(t, buf.String(), "msg=plain")
	assert.NotContains(t, buf.String(), "build_id")
}
