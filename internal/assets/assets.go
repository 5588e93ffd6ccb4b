// Package assets copies opaque source files into the destination tree.
package assets

import (
	"context"
	"fmt"
	"path/filepath"
	"sync/atomic"

	"git.home.luguber.info/inful/sedum/internal/fsutil"
	"git.home.luguber.info/inful/sedum/internal/logfields"
	"git.home.luguber.info/inful/sedum/internal/metrics"
	"git.home.luguber.info/inful/sedum/internal/observability"
)

// Copier mirrors assets under a destination root, keeping relative paths.
type Copier struct {
	dest     string
	recorder metrics.Recorder

	copied atomic.Int64
	failed atomic.Int64
}

// NewCopier returns a Copier writing below dest. A nil recorder disables metrics.
func NewCopier(dest string, recorder metrics.Recorder) *Copier {
	if recorder == nil {
		recorder = metrics.NoopRecorder{}
	}
	return &Copier{dest: dest, recorder: recorder}
}

// HandleAsset copies the file at absPath to dest/relPath. Failures are
// logged and returned; they never abort the caller.
func (c *Copier) HandleAsset(ctx context.Context, relPath, absPath string) error {
	target := filepath.Join(c.dest, filepath.FromSlash(relPath))
	if err := fsutil.CopyFileAtomic(absPath, target); err != nil {
		c.failed.Add(1)
		c.recorder.IncFileResult(metrics.KindAsset, metrics.ResultFailed)
		observability.ErrorContext(ctx, "Could not copy file, skipping", logfields.Path(relPath), logfields.Error(err))
		return fmt.Errorf("copy asset %s: %w", relPath, err)
	}
	c.copied.Add(1)
	c.recorder.IncFileResult(metrics.KindAsset, metrics.ResultSuccess)
	observability.DebugContext(ctx, "Copied asset", logfields.Path(relPath), logfields.Output(target))
	return nil
}

// Copied returns the number of assets copied successfully.
func (c *Copier) Copied() int { return int(c.copied.Load()) }

// Failed returns the number of assets that could not be copied.
func (c *Copier) Failed() int { return int(c.failed.Load()) }
