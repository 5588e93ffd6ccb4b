package metrics

import "time"

// ResultLabel enumerates per-file result categories for counters.
type ResultLabel string

const (
	ResultSuccess ResultLabel = "success"
	ResultFailed  ResultLabel = "failed"
	ResultSkipped ResultLabel = "skipped"
)

// FileKind labels the kind of file a result refers to.
type FileKind string

const (
	KindPage  FileKind = "page"
	KindAsset FileKind = "asset"
)

// Recorder defines observability hooks for a build.
type Recorder interface {
	ObserveStageDuration(stage string, d time.Duration)
	ObserveBuildDuration(d time.Duration)
	IncFileResult(kind FileKind, result ResultLabel)
	IncSettingsStatus(status string)
	SetListedPages(n int)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveStageDuration(string, time.Duration) {}
func (NoopRecorder) ObserveBuildDuration(time.Duration)         {}
func (NoopRecorder) IncFileResult(FileKind, ResultLabel)        {}
func (NoopRecorder) IncSettingsStatus(string)                   {}
func (NoopRecorder) SetListedPages(int)                         {}
