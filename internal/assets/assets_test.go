package assets

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/sedum/internal/observability"
)

func TestCopier_MirrorsRelativePath(t *testing.T) {
	src := t.TempDir()
	dest := filepath.Join(t.TempDir(), "result")
	abs := filepath.Join(src, "img", "logo.bin")
	require.NoError(t, os.MkdirAll(filepath.Dir(abs), 0o755))
	payload := []byte{0, 1, 2, 3, 254, 255}
	require.NoError(t, os.WriteFile(abs, payload, 0o644))

	c := NewCopier(dest, nil)
	require.NoError(t, c.HandleAsset(context.Background(), "img/logo.bin", abs))

	got, err := os.ReadFile(filepath.Join(dest, "img", "logo.bin"))
	require.NoError(t, err)
	assert.Equal(t, payload, got)
	assert.Equal(t, 1, c.Copied())
	assert.Equal(t, 0, c.Failed())
}

func TestCopier_FailureIsCounted(t *testing.T) {
	c := NewCopier(t.TempDir(), nil)
	err := c.HandleAsset(context.Background(), "missing.txt", filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.Equal(t, 0, c.Copied())
	assert.Equal(t, 1, c.Failed())
}

func TestCopier_LogsCarryBuildContext(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })

	ctx := observability.WithStage(observability.WithBuildID(context.Background(), "b-7"), "index")
	c := NewCopier(t.TempDir(), nil)
	require.Error(t, c.HandleAsset(ctx, "missing.txt", filepath.Join(t.TempDir(), "missing.txt")))

	out := buf.String()
	assert.Contains(t, out, "Could not copy file")
	assert.Contains(t, out, "build_id=b-7")
	assert.Contains(t, out, "stage=index")
	assert.Contains(t, out, "path=missing.txt")
}
