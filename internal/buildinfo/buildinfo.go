// Package buildinfo writes the optional build metadata artifact at the
// destination root.
package buildinfo

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/inful/mdfp"
	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/sedum/internal/config"
	"git.home.luguber.info/inful/sedum/internal/fsutil"
	"git.home.luguber.info/inful/sedum/internal/vcs"
	"git.home.luguber.info/inful/sedum/internal/version"
)

// Page records a rendered page and the fingerprint of its source.
type Page struct {
	Path        string `yaml:"path"`
	Fingerprint string `yaml:"fingerprint"`
}

// Info is the content of the metadata artifact.
type Info struct {
	Generator      string `yaml:"generator"`
	Version        string `yaml:"version"`
	BuildID        string `yaml:"build_id"`
	BuiltAt        string `yaml:"built_at"`
	Timestamp      int64  `yaml:"timestamp"`
	OS             string `yaml:"os"`
	Arch           string `yaml:"arch"`
	SourceRevision string `yaml:"source_revision,omitempty"`
	Pages          []Page `yaml:"pages"`
}

// New returns an Info for a build started at now. An empty buildID is
// replaced by a random UUID.
func New(buildID string, now time.Time) *Info {
	if buildID == "" {
		buildID = uuid.NewString()
	}
	return &Info{
		Generator: version.Name,
		Version:   version.Version,
		BuildID:   buildID,
		BuiltAt:   now.UTC().Format(time.RFC3339),
		Timestamp: now.Unix(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		Pages:     []Page{},
	}
}

// ResolveRevision records the HEAD commit of the repository holding source.
// A missing repository is not an error.
func (i *Info) ResolveRevision(source string) error {
	rev, err := vcs.Revision(source)
	if err != nil {
		if errors.Is(err, vcs.ErrNotRepository) {
			return nil
		}
		return err
	}
	i.SourceRevision = rev
	return nil
}

// AddPage appends a rendered page.
func (i *Info) AddPage(path, fingerprint string) {
	i.Pages = append(i.Pages, Page{Path: path, Fingerprint: fingerprint})
}

// Fingerprint returns the content fingerprint of a page from its raw
// frontmatter block and markdown body.
func Fingerprint(frontmatter, body []byte) string {
	fm := strings.TrimSuffix(string(frontmatter), "\n")
	return mdfp.CalculateFingerprintFromParts(fm, string(body))
}

// Marshal encodes the artifact as YAML.
func (i *Info) Marshal() ([]byte, error) {
	out, err := yaml.Marshal(i)
	if err != nil {
		return nil, fmt.Errorf("encode build info: %w", err)
	}
	return out, nil
}

// Write stores the artifact at dest/config.MetadataFileName and returns its path.
func Write(dest string, info *Info) (string, error) {
	data, err := info.Marshal()
	if err != nil {
		return "", err
	}
	path := filepath.Join(dest, config.MetadataFileName)
	if err := fsutil.WriteFileAtomic(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write build info: %w", err)
	}
	return path, nil
}
