package build

import (
	"context"
	"log/slog"
	"os"
	"time"

	"git.home.luguber.info/inful/sedum/internal/buildinfo"
	"git.home.luguber.info/inful/sedum/internal/fsutil"
	"git.home.luguber.info/inful/sedum/internal/logfields"
	"git.home.luguber.info/inful/sedum/internal/markdown"
	"git.home.luguber.info/inful/sedum/internal/metrics"
	"git.home.luguber.info/inful/sedum/internal/observability"
	"git.home.luguber.info/inful/sedum/internal/page"
	"git.home.luguber.info/inful/sedum/internal/settings"
	"git.home.luguber.info/inful/sedum/internal/site"
)

// pageOutcome is the result of one page. output is empty when the page
// failed or was not scheduled.
type pageOutcome struct {
	output      string
	fingerprint string
	err         error
}

// pageRenderer holds the read-only inputs shared by every page.
type pageRenderer struct {
	idx       *site.Index
	markdown  *markdown.Renderer
	dest      string
	timestamp bool
	now       time.Time
	recorder  metrics.Recorder
}

func (r *pageRenderer) render(ctx context.Context, src site.SourceFile) pageOutcome {
	content, err := os.ReadFile(src.AbsPath)
	if err != nil {
		return r.fail(ctx, src, "Could not read file, skipping", err)
	}

	doc := settings.FromSource(content)
	r.recorder.IncSettingsStatus(doc.Status.String())
	if doc.Status == settings.StatusDefaulted {
		observability.DebugContext(ctx, "Malformed frontmatter, using default settings",
			logfields.Path(src.RelPath), logfields.Error(doc.Err))
	}

	lang, hasLang := doc.Settings.ResolvedLanguage()
	if hasLang && !settings.ValidLanguage(lang) {
		observability.WarnContext(ctx, "Page language is not a valid BCP 47 tag",
			logfields.Path(src.RelPath), slog.String("language", lang))
	}
	desc, hasDesc := doc.Settings.ResolvedDescription()

	body, err := r.markdown.Render(doc.Body)
	if err != nil {
		return r.fail(ctx, src, "Could not render markdown, skipping", err)
	}

	html := page.Compose(page.Input{
		Title:       doc.Settings.ResolvedTitle(src.Stem()),
		Description: desc,
		HasDesc:     hasDesc,
		Language:    lang,
		HasLang:     hasLang,
		Author:      doc.Settings.ResolvedAuthor(r.idx.Global),
		HeadInclude: r.idx.Head,
		BodyInclude: r.idx.Body,
		Content:     body,
		NavList:     r.idx.Nav.HTML,
		Timestamp:   r.timestamp,
		Now:         r.now,
	})

	rel := src.OutputRel()
	target := outputPath(r.dest, rel)
	if err := fsutil.WriteFileAtomic(target, []byte(html), 0o644); err != nil {
		return r.fail(ctx, src, "Could not write file, skipping", err)
	}

	r.recorder.IncFileResult(metrics.KindPage, metrics.ResultSuccess)
	observability.DebugContext(ctx, "Rendered page", logfields.Path(src.RelPath), logfields.Output(rel))
	return pageOutcome{
		output:      rel,
		fingerprint: buildinfo.Fingerprint(doc.Frontmatter, doc.Body),
	}
}

func (r *pageRenderer) fail(ctx context.Context, src site.SourceFile, msg string, err error) pageOutcome {
	r.recorder.IncFileResult(metrics.KindPage, metrics.ResultFailed)
	observability.ErrorContext(ctx, msg, logfields.Path(src.RelPath), logfields.Error(err))
	return pageOutcome{err: describe(src.RelPath, err)}
}
