package settings

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// FileName is the reserved base name of the global settings file.
const FileName = "settings"

// GlobalSettings holds site-wide defaults.
type GlobalSettings struct {
	DefaultAuthor string `yaml:"default_author"`
}

// DefaultGlobal returns the built-in global settings.
func DefaultGlobal() GlobalSettings {
	return GlobalSettings{DefaultAuthor: DefaultAuthor}
}

// Author returns the configured default author or the built-in one.
func (g GlobalSettings) Author() string {
	if strings.TrimSpace(g.DefaultAuthor) == "" {
		return DefaultAuthor
	}
	return g.DefaultAuthor
}

// LoadGlobal parses the global settings file. On a parse error it returns the
// built-in defaults together with the error so callers can log it.
func LoadGlobal(data []byte) (GlobalSettings, error) {
	g := DefaultGlobal()
	if err := yaml.Unmarshal(data, &g); err != nil {
		return DefaultGlobal(), err
	}
	if strings.TrimSpace(g.DefaultAuthor) == "" {
		g.DefaultAuthor = DefaultAuthor
	}
	return g, nil
}
