package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_Basic(t *testing.T) {
	out, err := NewRenderer().Render([]byte("# Title\n\nHello *world*\n"))
	require.NoError(t, err)
	assert.Equal(t, "<h1>Title</h1>\n<p>Hello <em>world</em></p>\n", out)
}

func TestRender_Table(t *testing.T) {
	out, err := NewRenderer().Render([]byte("| a | b |\n|---|---|\n| 1 | 2 |\n"))
	require.NoError(t, err)
	assert.Contains(t, out, "<table>")
	assert.Contains(t, out, "<th>a</th>")
	assert.Contains(t, out, "<td>2</td>")
}

func TestRender_Strikethrough(t *testing.T) {
	out, err := NewRenderer().Render([]byte("~~gone~~\n"))
	require.NoError(t, err)
	assert.Equal(t, "<p><del>gone</del></p>\n", out)
}

func TestRender_OtherExtensionsDisabled(t *testing.T) {
	r := NewRenderer()

	// No linkify.
	out, err := r.Render([]byte("see https://example.com\n"))
	require.NoError(t, err)
	assert.NotContains(t, out, "<a ")

	// No task lists.
	out, err = r.Render([]byte("- [ ] todo\n"))
	require.NoError(t, err)
	assert.NotContains(t, out, "checkbox")

	// No heading ids.
	out, err = r.Render([]byte("## Section\n"))
	require.NoError(t, err)
	assert.Equal(t, "<h2>Section</h2>\n", out)
}

func TestRender_RawHTMLPassesThrough(t *testing.T) {
	out, err := NewRenderer().Render([]byte("<div class=\"x\">hi</div>\n"))
	require.NoError(t, err)
	assert.Equal(t, "<div class=\"x\">hi</div>\n", out)
}

func TestRender_MalformedIsLiteral(t *testing.T) {
	out, err := NewRenderer().Render([]byte("[unclosed link(\n"))
	require.NoError(t, err)
	assert.Equal(t, "<p>[unclosed link(</p>\n", out)
}

func TestRender_Deterministic(t *testing.T) {
	r := NewRenderer()
	in := []byte("| x |\n|---|\n| ~~y~~ |\n")
	a, err := r.Render(in)
	require.NoError(t, err)
	b, err := r.Render(in)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
