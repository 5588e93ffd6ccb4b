package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/sedum/internal/build"
	"git.home.luguber.info/inful/sedum/internal/config"
	"git.home.luguber.info/inful/sedum/internal/logfields"
	"git.home.luguber.info/inful/sedum/internal/metrics"
)

// BuildCmd implements the default 'build' command.
type BuildCmd struct {
	Source      string   `arg:"" optional:"" default:"source" help:"Source directory containing markdown files"`
	Destination string   `arg:"" optional:"" default:"result" help:"Destination directory for generated HTML"`
	Timestamp   bool     `short:"t" env:"SEDUM_TIMESTAMP" help:"Inject the generation time into every page"`
	Metadata    bool     `short:"m" env:"SEDUM_METADATA" help:"Write build-info.yaml to the destination root"`
	Jobs        int      `short:"j" env:"SEDUM_JOBS" help:"Pages rendered in parallel (0 = number of CPUs)"`
	Ignore      []string `env:"SEDUM_IGNORE" help:"Glob of source paths to skip, relative to the source root (repeatable; .git/** is always skipped)"`
	MetricsFile string   `name:"metrics-file" env:"SEDUM_METRICS_FILE" help:"Write Prometheus metrics in text format to this file after the build"`

	// out receives the summary line; stdout when nil.
	out io.Writer
}

// Config converts the parsed flags into a validated run configuration.
func (b *BuildCmd) Config(verbose bool) (*config.Config, error) {
	cfg := &config.Config{
		Source:      b.Source,
		Destination: b.Destination,
		Timestamp:   b.Timestamp,
		Metadata:    b.Metadata,
		Jobs:        b.Jobs,
		Ignore:      append(append([]string(nil), config.DefaultIgnore...), b.Ignore...),
		MetricsFile: b.MetricsFile,
		Verbose:     verbose,
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (b *BuildCmd) Run(_ *Global, root *CLI) error {
	cfg, err := b.Config(root.Verbose)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc := build.NewBuildService()
	var reg *prom.Registry
	if cfg.MetricsFile != "" {
		reg = prom.NewRegistry()
		svc.WithRecorder(metrics.NewPrometheusRecorder(reg))
	}

	slog.Info("Starting build",
		logfields.Source(cfg.Source),
		logfields.Output(cfg.Destination),
		slog.Int("jobs", cfg.Jobs),
		slog.Bool("timestamp", cfg.Timestamp),
		slog.Bool("metadata", cfg.Metadata))

	result, err := svc.Run(ctx, cfg)
	if err != nil {
		return err
	}

	if reg != nil {
		if err := metrics.WriteTextfile(cfg.MetricsFile, reg); err != nil {
			slog.Warn("Could not write metrics file", logfields.Path(cfg.MetricsFile), logfields.Error(err))
		}
	}

	out := b.out
	if out == nil {
		out = os.Stdout
	}
	_, _ = fmt.Fprintf(out, "Generated %d of %d pages and copied %d assets into %s\n",
		result.Rendered, result.Pages, result.Assets, cfg.Destination)
	return nil
}
