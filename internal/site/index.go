// Package site discovers the source tree in a single walk and builds the
// read-only index every page render depends on.
package site

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"git.home.luguber.info/inful/sedum/internal/config"
	serrors "git.home.luguber.info/inful/sedum/internal/errors"
	"git.home.luguber.info/inful/sedum/internal/logfields"
	"git.home.luguber.info/inful/sedum/internal/metrics"
	"git.home.luguber.info/inful/sedum/internal/observability"
	"git.home.luguber.info/inful/sedum/internal/settings"
)

// AssetHandler receives every opaque file found during the walk.
type AssetHandler interface {
	HandleAsset(ctx context.Context, relPath, absPath string) error
}

// Index is the result of indexing a source tree. It is built once and only
// read afterwards.
type Index struct {
	Root   string
	Pages  []SourceFile
	Global settings.GlobalSettings
	Nav    NavList
	// Head and Body are the root include fragments, empty when missing.
	Head string
	Body string

	// Assets counts files handed to the AssetHandler.
	Assets int
	// Skipped counts entries that could not be read during the walk.
	Skipped int
	// Ignored counts files matched by an ignore pattern. Files below an
	// ignored directory are not visited and not counted.
	Ignored int
}

// Build walks cfg.Source, hands assets to the handler and runs the listing
// pass over the discovered pages. Only an unreadable source root is an error.
// A nil recorder disables metrics.
func Build(ctx context.Context, cfg *config.Config, assets AssetHandler, recorder metrics.Recorder) (*Index, error) {
	if recorder == nil {
		recorder = metrics.NoopRecorder{}
	}
	root := cfg.Source
	info, err := os.Stat(root)
	if err != nil {
		return nil, unreadable(root, err)
	}
	if !info.IsDir() {
		return nil, unreadable(root, fmt.Errorf("%s is not a directory", root))
	}

	w := &walker{
		ctx:      ctx,
		root:     root,
		ignore:   cfg.Ignore,
		assets:   assets,
		recorder: recorder,
		idx:      &Index{Root: root, Global: settings.DefaultGlobal()},
	}
	if rel, ok := cfg.DestinationWithinSource(); ok {
		w.skipDir = rel
	}

	if err := filepath.WalkDir(root, w.visit); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
			return nil, err
		}
		return nil, unreadable(root, err)
	}

	idx := w.idx
	idx.Head = readInclude(ctx, root, HeadInclude)
	idx.Body = readInclude(ctx, root, BodyInclude)
	idx.Nav = ListPages(ctx, idx.Pages)

	observability.InfoContext(ctx, "Indexed source tree",
		logfields.Source(root),
		logfields.Count(len(idx.Pages)),
		slog.Int("assets", idx.Assets),
		slog.Int("listed", idx.Nav.Count()),
		slog.Int("skipped", idx.Skipped),
		slog.Int("ignored", idx.Ignored))
	return idx, nil
}

func unreadable(root string, err error) error {
	return serrors.FileSystemError("cannot read source directory").
		WithCause(fmt.Errorf("%w: %w", ErrSourceUnreadable, err)).
		WithContext("path", root).
		Build()
}

type walker struct {
	ctx      context.Context
	root     string
	ignore   []string
	skipDir  string
	assets   AssetHandler
	recorder metrics.Recorder
	idx      *Index
}

func (w *walker) visit(path string, d fs.DirEntry, err error) error {
	if ctxErr := w.ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	if err != nil {
		if path == w.root {
			return err
		}
		w.idx.Skipped++
		observability.WarnContext(w.ctx, "Could not read entry, skipping", logfields.Path(path), logfields.Error(err))
		if d != nil && d.IsDir() {
			return filepath.SkipDir
		}
		return nil
	}
	if path == w.root {
		return nil
	}

	rel, relErr := filepath.Rel(w.root, path)
	if relErr != nil {
		w.idx.Skipped++
		observability.WarnContext(w.ctx, "Could not resolve entry path, skipping", logfields.Path(path), logfields.Error(relErr))
		return nil
	}
	rel = filepath.ToSlash(rel)

	if d.IsDir() {
		if rel == w.skipDir {
			observability.DebugContext(w.ctx, "Skipping destination inside source tree", logfields.Path(rel))
			return filepath.SkipDir
		}
		if w.ignored(rel) || w.ignored(rel+"/") {
			observability.DebugContext(w.ctx, "Ignoring directory", logfields.Path(rel))
			return filepath.SkipDir
		}
		return nil
	}
	if w.ignored(rel) {
		w.idx.Ignored++
		w.recorder.IncFileResult(fileKind(rel), metrics.ResultSkipped)
		observability.DebugContext(w.ctx, "Ignoring file", logfields.Path(rel))
		return nil
	}

	if !d.Type().IsRegular() {
		ok, statErr := regularTarget(path, d)
		if statErr != nil {
			w.idx.Skipped++
			observability.WarnContext(w.ctx, "Could not read entry, skipping", logfields.Path(rel), logfields.Error(statErr))
			return nil
		}
		if !ok {
			return nil
		}
	}

	w.classify(SourceFile{RelPath: rel, AbsPath: path, Kind: Classify(rel)})
	return nil
}

func (w *walker) classify(f SourceFile) {
	switch f.Kind {
	case KindPage:
		w.idx.Pages = append(w.idx.Pages, f)
	case KindInclude:
		// Root includes are read after the walk; every other include is dropped.
	case KindSettings:
		w.loadGlobal(f)
	default:
		w.idx.Assets++
		if w.assets != nil {
			// The handler logs its own failures.
			_ = w.assets.HandleAsset(w.ctx, f.RelPath, f.AbsPath)
		}
	}
}

func (w *walker) loadGlobal(f SourceFile) {
	data, err := os.ReadFile(f.AbsPath)
	if err != nil {
		w.idx.Skipped++
		observability.WarnContext(w.ctx, "Could not read global settings, using defaults", logfields.Path(f.RelPath), logfields.Error(err))
		return
	}
	global, err := settings.LoadGlobal(data)
	if err != nil {
		observability.WarnContext(w.ctx, "Malformed global settings, using defaults", logfields.Path(f.RelPath), logfields.Error(err))
	}
	w.idx.Global = global
}

// ignored reports whether rel matches any ignore pattern. Patterns are
// validated with the configuration, so match errors are treated as misses.
func (w *walker) ignored(rel string) bool {
	for _, pattern := range w.ignore {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}

// regularTarget resolves symlinks. Links to regular files are processed,
// links to directories are not followed.
func regularTarget(path string, d fs.DirEntry) (bool, error) {
	if d.Type()&fs.ModeSymlink == 0 {
		return false, nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBrokenSymlink, err)
	}
	return info.Mode().IsRegular(), nil
}

func readInclude(ctx context.Context, root, name string) string {
	data, err := os.ReadFile(filepath.Join(root, name))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			observability.WarnContext(ctx, "Could not read include, using empty fragment", logfields.Path(name), logfields.Error(err))
		}
		return ""
	}
	return string(data)
}

// fileKind labels a path for metrics by what it would have been processed as.
func fileKind(rel string) metrics.FileKind {
	if Classify(rel) == KindPage {
		return metrics.KindPage
	}
	return metrics.KindAsset
}
