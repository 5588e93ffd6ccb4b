// Package page assembles complete HTML documents from rendered content,
// resolved settings and the shared include fragments.
package page

import (
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/html"
)

// Reserved tokens substituted in the assembled document. Tokens may appear
// anywhere, including inside the include fragments.
const (
	TokenList      = "{{list}}"
	TokenTimestamp = "{{timestamp}}"
	TokenCopyright = "{{copyright}}"
)

// Input carries everything a page depends on.
type Input struct {
	Title       string
	Description string
	HasDesc     bool
	Language    string
	HasLang     bool
	Author      string

	HeadInclude string
	BodyInclude string
	Content     string
	// NavList is the navigation list HTML; empty when no page is listed.
	NavList string

	// Timestamp enables the generated meta tag and substitution of TokenTimestamp.
	Timestamp bool
	Now       time.Time
}

// Compose returns the full HTML document for in.
func Compose(in Input) string {
	var b strings.Builder
	b.Grow(len(in.HeadInclude) + len(in.BodyInclude) + len(in.Content) + 512)

	b.WriteString("<!DOCTYPE html>\n<html")
	if in.HasLang {
		b.WriteString(" lang='")
		b.WriteString(html.EscapeString(in.Language))
		b.WriteString("'")
	}
	b.WriteString(">\n<head>\n")
	b.WriteString("<meta charset='utf-8'>\n")
	b.WriteString("<meta name='viewport' content='width=device-width, initial-scale=1'>\n")
	b.WriteString("<title>")
	b.WriteString(html.EscapeString(in.Title))
	b.WriteString("</title>\n")
	if in.HasDesc {
		writeMeta(&b, "description", in.Description)
	}
	writeMeta(&b, "author", in.Author)
	if in.Timestamp {
		b.WriteString("<meta name='generated' content='" + TokenTimestamp + "'>\n")
	}
	writeFragment(&b, in.HeadInclude)
	b.WriteString("</head>\n<body>\n")
	writeFragment(&b, in.BodyInclude)
	writeFragment(&b, in.Content)
	b.WriteString("</body>\n</html>\n")

	return Substitute(b.String(), in)
}

// Substitute replaces the reserved tokens in doc. TokenTimestamp is only
// touched when in.Timestamp is set.
func Substitute(doc string, in Input) string {
	pairs := []string{
		TokenList, in.NavList,
		TokenCopyright, Copyright(in.Now, in.Author),
	}
	if in.Timestamp {
		pairs = append(pairs, TokenTimestamp, strconv.FormatInt(in.Now.Unix(), 10))
	}
	return strings.NewReplacer(pairs...).Replace(doc)
}

// Copyright formats the copyright notice for author at time now.
func Copyright(now time.Time, author string) string {
	return "© " + strconv.Itoa(now.UTC().Year()) + " " + html.EscapeString(author)
}

func writeMeta(b *strings.Builder, name, content string) {
	b.WriteString("<meta name='")
	b.WriteString(name)
	b.WriteString("' content='")
	b.WriteString(html.EscapeString(content))
	b.WriteString("'>\n")
}

func writeFragment(b *strings.Builder, s string) {
	if s == "" {
		return
	}
	b.WriteString(s)
	if !strings.HasSuffix(s, "\n") {
		b.WriteByte('\n')
	}
}

// OutputName maps a source file name to its HTML output name, keeping only
// the base name without extension.
func OutputName(name string) string {
	if i := strings.LastIndexByte(name, '.'); i > 0 {
		name = name[:i]
	}
	return name + ".html"
}
