// Package settings resolves per-page and site-wide settings from YAML
// metadata, falling back from page values to global defaults to fixed
// literals.
package settings

import (
	"fmt"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/sedum/internal/frontmatter"
)

// DefaultAuthor is used when neither the page nor the global settings name an author.
const DefaultAuthor = "Sedum"

// ListedValue is the exact `list` value that puts a page in the navigation list.
const ListedValue = "True"

// PageSettings holds the optional per-page settings. A nil field is absent,
// which is distinct from an empty string.
type PageSettings struct {
	Title       *string `yaml:"title"`
	Description *string `yaml:"description"`
	Language    *string `yaml:"language"`
	Author      *string `yaml:"author"`
	List        *string `yaml:"list"`
}

// Status tags how a Result was produced.
type Status int

const (
	// StatusAbsent means the document had no frontmatter block.
	StatusAbsent Status = iota
	// StatusResolved means the block parsed successfully.
	StatusResolved
	// StatusDefaulted means the block was malformed and all settings fell back to defaults.
	StatusDefaulted
)

func (s Status) String() string {
	switch s {
	case StatusAbsent:
		return "absent"
	case StatusResolved:
		return "resolved"
	case StatusDefaulted:
		return "defaulted"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Result is the outcome of resolving a document's settings.
type Result struct {
	Settings PageSettings
	Status   Status
	// Err is the parse error when Status is StatusDefaulted.
	Err error
}

// Parse decodes a raw frontmatter block. A decode failure never propagates:
// the result is tagged StatusDefaulted with empty settings.
func Parse(meta []byte) Result {
	var ps PageSettings
	if err := yaml.Unmarshal(meta, &ps); err != nil {
		return Result{Status: StatusDefaulted, Err: err}
	}
	return Result{Settings: ps, Status: StatusResolved}
}

// Document is a source document with its settings resolved.
type Document struct {
	Result
	// Body is the markdown to render. When the frontmatter block is
	// malformed it is the entire original document, delimiters included.
	Body []byte
	// Frontmatter is the raw block (nil when absent).
	Frontmatter []byte
}

// FromSource splits and resolves a whole source document.
func FromSource(content []byte) Document {
	meta, body, had := frontmatter.Split(content)
	if !had {
		return Document{Result: Result{Status: StatusAbsent}, Body: body}
	}
	res := Parse(meta)
	if res.Status == StatusDefaulted {
		return Document{Result: res, Body: content}
	}
	return Document{Result: res, Body: body, Frontmatter: meta}
}

// ResolvedTitle returns the page title, falling back to the file stem.
func (p PageSettings) ResolvedTitle(stem string) string {
	if p.Title != nil {
		return *p.Title
	}
	return stem
}

// ResolvedAuthor returns the page author, else the global default author.
func (p PageSettings) ResolvedAuthor(g GlobalSettings) string {
	if p.Author != nil {
		return *p.Author
	}
	return g.Author()
}

// ResolvedDescription returns the description and whether it is present.
func (p PageSettings) ResolvedDescription() (string, bool) {
	if p.Description == nil {
		return "", false
	}
	return *p.Description, true
}

// ResolvedLanguage returns the language and whether it is present.
func (p PageSettings) ResolvedLanguage() (string, bool) {
	if p.Language == nil {
		return "", false
	}
	return *p.Language, true
}

// Listed reports whether the page belongs in the navigation list. Only the
// exact string "True" counts.
func (p PageSettings) Listed() bool {
	return p.List != nil && *p.List == ListedValue
}

// ValidLanguage reports whether tag parses as a BCP 47 language tag.
func ValidLanguage(tag string) bool {
	_, err := language.Parse(tag)
	return err == nil
}
