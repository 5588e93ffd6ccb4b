// Package config holds the immutable run configuration shared by every
// stage of a build. It is computed once at startup and passed by pointer.
package config

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	serrors "git.home.luguber.info/inful/sedum/internal/errors"
)

const (
	DefaultSource      = "source"
	DefaultDestination = "result"
	// MetadataFileName is written at the destination root when Metadata is set.
	MetadataFileName = "build-info.yaml"
)

// DefaultIgnore lists the globs skipped when none are configured.
var DefaultIgnore = []string{".git/**"}

// Config is the run configuration.
type Config struct {
	Source      string
	Destination string
	Timestamp   bool
	Metadata    bool
	Jobs        int
	Ignore      []string
	MetricsFile string
	Verbose     bool
}

// New returns a Config with defaults applied to empty fields.
func New(source, destination string) *Config {
	c := &Config{Source: source, Destination: destination}
	c.ApplyDefaults()
	return c
}

// ApplyDefaults fills zero values with their defaults.
func (c *Config) ApplyDefaults() {
	if c.Source == "" {
		c.Source = DefaultSource
	}
	if c.Destination == "" {
		c.Destination = DefaultDestination
	}
	if c.Jobs <= 0 {
		c.Jobs = runtime.NumCPU()
	}
	if c.Ignore == nil {
		c.Ignore = append([]string(nil), DefaultIgnore...)
	}
}

// Validate checks the configuration for setup errors.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Source) == "" {
		return serrors.ValidationError("source directory must not be empty").Build()
	}
	if strings.TrimSpace(c.Destination) == "" {
		return serrors.ValidationError("destination directory must not be empty").Build()
	}
	if c.Jobs < 1 {
		return serrors.ValidationError(fmt.Sprintf("jobs must be at least 1, got %d", c.Jobs)).Build()
	}
	for _, pattern := range c.Ignore {
		if !doublestar.ValidatePattern(pattern) {
			return serrors.ValidationError("invalid ignore pattern").
				WithContext("pattern", pattern).
				Build()
		}
	}
	src, err := filepath.Abs(c.Source)
	if err != nil {
		return serrors.ConfigError("resolve source directory").WithCause(err).Build()
	}
	dst, err := filepath.Abs(c.Destination)
	if err != nil {
		return serrors.ConfigError("resolve destination directory").WithCause(err).Build()
	}
	if src == dst {
		return serrors.ValidationError("source and destination must differ").
			WithContext("path", src).
			Build()
	}
	return nil
}

// DestinationWithinSource returns the destination path relative to the
// source root (slash separated) when the destination lies inside the
// source tree.
func (c *Config) DestinationWithinSource() (string, bool) {
	src, err := filepath.Abs(c.Source)
	if err != nil {
		return "", false
	}
	dst, err := filepath.Abs(c.Destination)
	if err != nil {
		return "", false
	}
	rel, err := filepath.Rel(src, dst)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return filepath.ToSlash(rel), true
}
