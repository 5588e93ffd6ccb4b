package build

import (
	"context"
	"time"

	"git.home.luguber.info/inful/sedum/internal/config"
)

// BuildService executes site builds.
type BuildService interface {
	Run(ctx context.Context, cfg *config.Config) (*BuildResult, error)
}

// BuildResult summarises a build.
type BuildResult struct {
	Status  BuildStatus
	BuildID string

	// Pages is the number of markdown pages discovered.
	Pages    int
	Rendered int
	Failed   int

	Assets       int
	AssetsFailed int
	Listed       int

	// Outputs lists written pages relative to the destination, in source order.
	Outputs []string
	// MetadataPath is set when the metadata artifact was written.
	MetadataPath string

	Duration  time.Duration
	StartTime time.Time
	EndTime   time.Time
}

// BuildStatus represents the outcome of a build.
type BuildStatus string

const (
	// BuildStatusSuccess indicates every file was processed.
	BuildStatusSuccess BuildStatus = "success"

	// BuildStatusPartial indicates the build finished but some files failed.
	BuildStatusPartial BuildStatus = "partial"

	// BuildStatusFailed indicates a setup failure stopped the build.
	BuildStatusFailed BuildStatus = "failed"

	// BuildStatusCancelled indicates the build was cancelled.
	BuildStatusCancelled BuildStatus = "cancelled"
)

// IsSuccess reports whether the build ran to completion. Per-file failures
// do not make a build unsuccessful.
func (s BuildStatus) IsSuccess() bool {
	return s == BuildStatusSuccess || s == BuildStatusPartial
}
