package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// EnvFiles are loaded in order by LoadEnvFiles.
var EnvFiles = []string{".env", ".env.local"}

// LoadEnvFiles loads KEY=VALUE files from the working directory into the
// process environment. Existing variables are never overwritten, so the
// first file to define a key wins. Missing files are skipped.
func LoadEnvFiles(paths ...string) ([]string, error) {
	if len(paths) == 0 {
		paths = EnvFiles
	}
	var loaded []string
	for _, p := range paths {
		if _, err := os.Stat(p); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return loaded, err
		}
		slog.Debug("Loaded environment file", "path", p)
		loaded = append(loaded, p)
	}
	return loaded, nil
}
