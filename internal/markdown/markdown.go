// Package markdown renders markdown bodies to HTML fragments.
package markdown

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Renderer converts markdown to HTML with table and strikethrough syntax
// enabled and every other extension off. Raw HTML in the source is passed
// through. A Renderer is safe for concurrent use.
type Renderer struct {
	md goldmark.Markdown
}

// NewRenderer builds a Renderer.
func NewRenderer() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.Table,
				extension.Strikethrough,
			),
			goldmark.WithRendererOptions(
				html.WithUnsafe(),
			),
		),
	}
}

// Render converts a markdown body into an HTML fragment. Unrecognised syntax
// is emitted as literal text; the only possible error comes from the writer.
func (r *Renderer) Render(body []byte) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert(body, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
