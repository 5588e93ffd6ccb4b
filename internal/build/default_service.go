package build

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"git.home.luguber.info/inful/sedum/internal/assets"
	"git.home.luguber.info/inful/sedum/internal/buildinfo"
	"git.home.luguber.info/inful/sedum/internal/config"
	serrors "git.home.luguber.info/inful/sedum/internal/errors"
	"git.home.luguber.info/inful/sedum/internal/logfields"
	"git.home.luguber.info/inful/sedum/internal/markdown"
	"git.home.luguber.info/inful/sedum/internal/metrics"
	"git.home.luguber.info/inful/sedum/internal/observability"
	"git.home.luguber.info/inful/sedum/internal/site"
)

const (
	stageIndex    = "index"
	stageRender   = "render"
	stageMetadata = "metadata"
)

// DefaultBuildService is the standard BuildService.
type DefaultBuildService struct {
	recorder metrics.Recorder
	now      func() time.Time
	renderer *markdown.Renderer
}

// NewBuildService creates a DefaultBuildService using the wall clock and no metrics.
func NewBuildService() *DefaultBuildService {
	return &DefaultBuildService{
		recorder: metrics.NoopRecorder{},
		now:      time.Now,
		renderer: markdown.NewRenderer(),
	}
}

// WithRecorder sets the metrics recorder. A nil recorder disables metrics.
func (s *DefaultBuildService) WithRecorder(r metrics.Recorder) *DefaultBuildService {
	if r == nil {
		r = metrics.NoopRecorder{}
	}
	s.recorder = r
	return s
}

// WithClock sets the clock used for the build time, page timestamps and
// the copyright year.
func (s *DefaultBuildService) WithClock(now func() time.Time) *DefaultBuildService {
	if now != nil {
		s.now = now
	}
	return s
}

// Run executes the pipeline: index, render and write pages, then metadata.
func (s *DefaultBuildService) Run(ctx context.Context, cfg *config.Config) (*BuildResult, error) {
	startTime := s.now()
	result := &BuildResult{StartTime: startTime, BuildID: uuid.NewString()}
	ctx = observability.WithBuildID(ctx, result.BuildID)

	if err := s.setup(cfg); err != nil {
		return s.finish(ctx, result, BuildStatusFailed), err
	}

	// Stage 1: index
	stageStart := time.Now()
	copier := assets.NewCopier(cfg.Destination, s.recorder)
	idx, err := site.Build(observability.WithStage(ctx, stageIndex), cfg, copier, s.recorder)
	s.recorder.ObserveStageDuration(stageIndex, time.Since(stageStart))
	if err != nil {
		if ctx.Err() != nil {
			return s.finish(ctx, result, BuildStatusCancelled), cancelled(ctx)
		}
		return s.finish(ctx, result, BuildStatusFailed), err
	}
	result.Pages = len(idx.Pages)
	result.Assets = copier.Copied()
	result.AssetsFailed = copier.Failed()
	result.Listed = idx.Nav.Count()
	s.recorder.SetListedPages(result.Listed)

	// Stage 2: render and write
	stageStart = time.Now()
	outcomes := s.renderAll(observability.WithStage(ctx, stageRender), cfg, idx, startTime)
	s.recorder.ObserveStageDuration(stageRender, time.Since(stageStart))
	for _, o := range outcomes {
		switch {
		case o.output != "":
			result.Rendered++
			result.Outputs = append(result.Outputs, o.output)
		case o.err != nil:
			result.Failed++
		}
	}
	if ctx.Err() != nil {
		return s.finish(ctx, result, BuildStatusCancelled), cancelled(ctx)
	}

	// Stage 3: metadata
	if cfg.Metadata {
		stageStart = time.Now()
		s.writeMetadata(observability.WithStage(ctx, stageMetadata), cfg, result, outcomes)
		s.recorder.ObserveStageDuration(stageMetadata, time.Since(stageStart))
	}

	status := BuildStatusSuccess
	if result.Failed > 0 || result.AssetsFailed > 0 {
		status = BuildStatusPartial
	}
	return s.finish(ctx, result, status), nil
}

func (s *DefaultBuildService) setup(cfg *config.Config) error {
	if cfg == nil {
		return serrors.ConfigError("config required").WithCause(ErrConfigRequired).Build()
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(cfg.Destination, 0o755); err != nil {
		return serrors.FileSystemError("cannot create destination directory").
			WithCause(err).
			WithContext("path", cfg.Destination).
			Build()
	}
	return nil
}

// renderAll renders every page on at most cfg.Jobs goroutines. Outcomes are
// indexed like idx.Pages. Scheduling stops once ctx is cancelled.
func (s *DefaultBuildService) renderAll(ctx context.Context, cfg *config.Config, idx *site.Index, now time.Time) []pageOutcome {
	outcomes := make([]pageOutcome, len(idx.Pages))
	r := &pageRenderer{
		idx:       idx,
		markdown:  s.renderer,
		dest:      cfg.Destination,
		timestamp: cfg.Timestamp,
		now:       now,
		recorder:  s.recorder,
	}

	var g errgroup.Group
	g.SetLimit(cfg.Jobs)
	for i, src := range idx.Pages {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			outcomes[i] = r.render(ctx, src)
			return nil
		})
	}
	_ = g.Wait()
	return outcomes
}

func (s *DefaultBuildService) writeMetadata(ctx context.Context, cfg *config.Config, result *BuildResult, outcomes []pageOutcome) {
	info := buildinfo.New(result.BuildID, result.StartTime)
	if err := info.ResolveRevision(cfg.Source); err != nil {
		observability.WarnContext(ctx, "Could not resolve source revision", logfields.Error(err))
	}
	for _, o := range outcomes {
		if o.output != "" {
			info.AddPage(o.output, o.fingerprint)
		}
	}
	path, err := buildinfo.Write(cfg.Destination, info)
	if err != nil {
		observability.ErrorContext(ctx, "Could not write build metadata", logfields.Error(err))
		return
	}
	result.MetadataPath = path
	observability.DebugContext(ctx, "Wrote build metadata", logfields.Output(path))
}

func (s *DefaultBuildService) finish(ctx context.Context, result *BuildResult, status BuildStatus) *BuildResult {
	result.Status = status
	result.EndTime = s.now()
	result.Duration = result.EndTime.Sub(result.StartTime)
	s.recorder.ObserveBuildDuration(result.Duration)

	attrs := []slog.Attr{
		logfields.Status(string(status)),
		slog.Int("pages", result.Pages),
		slog.Int("rendered", result.Rendered),
		slog.Int("failed", result.Failed),
		slog.Int("assets", result.Assets),
		slog.Int("assets_failed", result.AssetsFailed),
		slog.Int("listed", result.Listed),
		logfields.Duration(result.Duration),
	}
	if status == BuildStatusPartial {
		observability.WarnContext(ctx, "Build finished with errors", attrs...)
	} else {
		observability.InfoContext(ctx, "Build finished", attrs...)
	}
	return result
}

// cancelled reports a build stopped by ctx before all pages were scheduled.
func cancelled(ctx context.Context) error {
	return serrors.BuildError("build cancelled").WithCause(ctx.Err()).Build()
}

// outputPath maps a slash separated output path to a file below dest.
func outputPath(dest, rel string) string {
	return filepath.Join(dest, filepath.FromSlash(rel))
}

func describe(rel string, err error) error {
	return fmt.Errorf("%s: %w", rel, err)
}
