package errors

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_BuildsClassifiedError(t *testing.T) {
	cause := stderrors.New("permission denied")
	err := FileSystemError("source directory unreadable").
		WithContext("path", "/src").
		WithCause(cause).
		Build()

	assert.Equal(t, CategoryFileSystem, err.Category())
	assert.True(t, err.IsFatal())
	assert.Equal(t, "/src", err.Context()["path"])
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "[filesystem:fatal] source directory unreadable: permission denied", err.Error())
}

func TestAsClassified_FindsWrapped(t *testing.T) {
	inner := ConfigError("bad jobs").Build()
	wrapped := fmt.Errorf("validate: %w", inner)

	ce, ok := AsClassified(wrapped)
	require.True(t, ok)
	assert.Same(t, inner, ce)
	assert.Equal(t, CategoryConfig, GetCategory(wrapped))
	assert.Equal(t, CategoryInternal, GetCategory(stderrors.New("plain")))
}

func TestErrorContext_Set(t *testing.T) {
	assert.Equal(t, ErrorContext{"k": "v"}, ErrorContext(nil).Set("k", "v"))
	assert.Equal(t, ErrorContext{"x": 1, "y": 3}, ErrorContext{"x": 1, "y": 2}.Set("y", 3))
}

func TestCLIAdapter_ExitCodes(t *testing.T) {
	a := NewCLIErrorAdapter(false, nil)
	assert.Equal(t, 0, a.ExitCodeFor(nil))
	assert.Equal(t, 1, a.ExitCodeFor(stderrors.New("x")))
	assert.Equal(t, 2, a.ExitCodeFor(ValidationError("x").Build()))
	assert.Equal(t, 7, a.ExitCodeFor(ConfigError("x").Build()))
	assert.Equal(t, 11, a.ExitCodeFor(FileSystemError("x").Build()))
	assert.Equal(t, 11, a.ExitCodeFor(BuildError("x").Build()))
	assert.Equal(t, 10, a.ExitCodeFor(NewError(CategoryInternal, "x").Build()))
}

func TestCLIAdapter_Report(t *testing.T) {
	var logs, out bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	a := NewCLIErrorAdapter(false, logger)
	a.out = &out

	code := a.Report(FileSystemError("source directory unreadable").
		WithContext("path", "missing").
		WithCause(stderrors.New("no such file")).
		Build())

	assert.Equal(t, 11, code)
	assert.Equal(t, "Error: source directory unreadable: no such file\n", out.String())
	assert.Contains(t, logs.String(), "category=filesystem")
	assert.Contains(t, logs.String(), "path=missing")
}

func TestCLIAdapter_VerboseFormat(t *testing.T) {
	a := NewCLIErrorAdapter(true, slog.New(slog.NewTextHandler(io.Discard, nil)))
	msg := a.FormatError(ConfigError("bad").Build())
	assert.Equal(t, "Error: [config:fatal] bad", msg)
}
