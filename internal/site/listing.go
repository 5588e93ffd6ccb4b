package site

import (
	"context"
	"os"
	"strings"

	"golang.org/x/net/html"

	"git.home.luguber.info/inful/sedum/internal/logfields"
	"git.home.luguber.info/inful/sedum/internal/observability"
	"git.home.luguber.info/inful/sedum/internal/settings"
)

// ListEntry is one navigation list item.
type ListEntry struct {
	// Target is the output path relative to the destination root.
	Target string
	Title  string
}

// NavList is the site navigation list shared by every page.
type NavList struct {
	Entries []ListEntry
	// HTML is the rendered list, empty when no page is listed.
	HTML string
}

// Count returns the number of listed pages.
func (n NavList) Count() int { return len(n.Entries) }

// ListPages reads the settings of every page and collects those marked for
// listing, in the given order. Markdown is not rendered here. Unreadable
// pages are logged and left out.
func ListPages(ctx context.Context, pages []SourceFile) NavList {
	var entries []ListEntry
	for _, p := range pages {
		content, err := os.ReadFile(p.AbsPath)
		if err != nil {
			observability.WarnContext(ctx, "Could not read page while listing, skipping", logfields.Path(p.RelPath), logfields.Error(err))
			continue
		}
		doc := settings.FromSource(content)
		if !doc.Settings.Listed() {
			continue
		}
		entries = append(entries, ListEntry{
			Target: p.OutputRel(),
			Title:  doc.Settings.ResolvedTitle(p.Stem()),
		})
	}
	return NavList{Entries: entries, HTML: RenderNav(entries)}
}

// RenderNav renders entries as an unordered list of links. No entries
// yield an empty string.
func RenderNav(entries []ListEntry) string {
	if len(entries) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("<ul>")
	for _, e := range entries {
		b.WriteString("<li><a href='")
		b.WriteString(html.EscapeString(e.Target))
		b.WriteString("'>")
		b.WriteString(html.EscapeString(e.Title))
		b.WriteString("</a></li>")
	}
	b.WriteString("</ul>")
	return b.String()
}
