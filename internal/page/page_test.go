package page

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC)

func baseInput() Input {
	return Input{
		Title:   "a",
		Author:  "Sedum",
		Content: "<p>hi</p>\n",
		Now:     fixedNow,
	}
}

func TestCompose_Defaults(t *testing.T) {
	out := Compose(baseInput())

	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>\n<html>\n<head>\n"))
	assert.Contains(t, out, "<title>a</title>")
	assert.Contains(t, out, "<meta name='author' content='Sedum'>")
	assert.NotContains(t, out, "<meta name='description'")
	assert.NotContains(t, out, "lang=")
	assert.NotContains(t, out, "<meta name='generated'")
	assert.Contains(t, out, "<body>\n<p>hi</p>\n</body>\n</html>\n")
}

func TestCompose_OptionalAttributes(t *testing.T) {
	in := baseInput()
	in.Description, in.HasDesc = "About us", true
	in.Language, in.HasLang = "de", true

	out := Compose(in)
	assert.Contains(t, out, "<html lang='de'>")
	assert.Contains(t, out, "<meta name='description' content='About us'>")
}

func TestCompose_EmptyDescriptionStillEmitted(t *testing.T) {
	in := baseInput()
	in.HasDesc = true

	assert.Contains(t, Compose(in), "<meta name='description' content=''>")
}

func TestCompose_EscapesSettings(t *testing.T) {
	in := baseInput()
	in.Title = "Tom & Jerry"
	in.Author = "O'Brien"

	out := Compose(in)
	assert.Contains(t, out, "<title>Tom &amp; Jerry</title>")
	assert.Contains(t, out, "content='O&#39;Brien'")
}

func TestCompose_IncludesOrder(t *testing.T) {
	in := baseInput()
	in.HeadInclude = "<link rel='stylesheet' href='s.css'>"
	in.BodyInclude = "<nav>{{list}}</nav>\n"
	in.NavList = "<ul><li><a href='b.html'>Hello</a></li></ul>"

	out := Compose(in)
	head := strings.Index(out, "<link rel='stylesheet' href='s.css'>\n</head>")
	nav := strings.Index(out, "<nav><ul><li><a href='b.html'>Hello</a></li></ul></nav>")
	content := strings.Index(out, "<p>hi</p>")
	require.NotEqual(t, -1, head)
	require.NotEqual(t, -1, nav)
	assert.Less(t, head, nav)
	assert.Less(t, nav, content)
}

func TestCompose_EmptyNavListClearsToken(t *testing.T) {
	in := baseInput()
	in.BodyInclude = "<nav>{{list}}</nav>"

	out := Compose(in)
	assert.Contains(t, out, "<nav></nav>")
	assert.NotContains(t, out, TokenList)
}

func TestCompose_Timestamp(t *testing.T) {
	in := baseInput()
	in.Timestamp = true
	in.BodyInclude = "<footer>{{timestamp}}</footer>"

	out := Compose(in)
	assert.Contains(t, out, "<meta name='generated' content='1709640000'>")
	assert.Contains(t, out, "<footer>1709640000</footer>")
	assert.NotContains(t, out, TokenTimestamp)
}

func TestCompose_TimestampDisabledLeavesBlockOut(t *testing.T) {
	in := baseInput()
	in.BodyInclude = "<footer>{{timestamp}}</footer>"

	out := Compose(in)
	assert.NotContains(t, out, "<meta name='generated'")
	assert.Contains(t, out, "<footer>{{timestamp}}</footer>")
}

func TestCompose_CopyrightInIncludeAndContent(t *testing.T) {
	in := baseInput()
	in.Author = "Jane"
	in.BodyInclude = "<footer>{{copyright}}</footer>"
	in.Content = "<p>{{copyright}}</p>"

	out := Compose(in)
	assert.Contains(t, out, "<footer>© 2024 Jane</footer>")
	assert.Contains(t, out, "<p>© 2024 Jane</p>")
}

func TestCopyright(t *testing.T) {
	assert.Equal(t, "© 1970 A &amp; B", Copyright(time.Unix(0, 0), "A & B"))
}

func TestOutputName(t *testing.T) {
	assert.Equal(t, "a.html", OutputName("a.md"))
	assert.Equal(t, "notes.v2.html", OutputName("notes.v2.md"))
	assert.Equal(t, "README.html", OutputName("README"))
}
