package site

import (
	"path"
	"strings"

	"git.home.luguber.info/inful/sedum/internal/page"
	"git.home.luguber.info/inful/sedum/internal/settings"
)

// Kind classifies a discovered source file.
type Kind int

const (
	KindAsset Kind = iota
	KindPage
	KindInclude
	KindSettings
)

func (k Kind) String() string {
	switch k {
	case KindPage:
		return "page"
	case KindInclude:
		return "include"
	case KindSettings:
		return "settings"
	default:
		return "asset"
	}
}

const (
	// MarkdownExt marks markdown pages.
	MarkdownExt = ".md"
	// IncludeExt marks include fragments.
	IncludeExt = ".include"
	// HeadInclude and BodyInclude are the include fragments read from the source root.
	HeadInclude = "head" + IncludeExt
	BodyInclude = "body" + IncludeExt
)

// SourceFile is a discovered file relative to the source root.
type SourceFile struct {
	// RelPath is slash separated and relative to the source root.
	RelPath string
	// AbsPath is the path used to read the file.
	AbsPath string
	Kind    Kind
}

// Stem returns the base name without its extension.
func (f SourceFile) Stem() string {
	base := path.Base(f.RelPath)
	return strings.TrimSuffix(base, path.Ext(base))
}

// OutputRel returns the slash separated output path relative to the
// destination root: same directory, base name with an .html extension.
func (f SourceFile) OutputRel() string {
	return path.Join(path.Dir(f.RelPath), page.OutputName(path.Base(f.RelPath)))
}

// Classify returns the kind of the file at the slash separated relPath. The
// global settings file is only recognised at the source root. A name made of
// a leading dot and nothing else, such as ".md", has no extension.
func Classify(relPath string) Kind {
	base := path.Base(relPath)
	ext := path.Ext(base)
	if ext == base {
		ext = ""
	}
	switch {
	case ext == MarkdownExt:
		return KindPage
	case ext == IncludeExt:
		return KindInclude
	case ext == "" && base == settings.FileName && path.Dir(relPath) == ".":
		return KindSettings
	default:
		return KindAsset
	}
}
