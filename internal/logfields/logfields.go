package logfields

import (
	"log/slog"
	"time"
)

// Canonical log field name constants to avoid drift across packages.
const (
	KeyPath       = "path"
	KeyOutput     = "output"
	KeySource     = "source"
	KeyStage      = "stage"
	KeyCount      = "count"
	KeyDurationMS = "duration_ms"
	KeyStatus     = "status"
	KeyBuildID    = "build_id"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Path(p string) slog.Attr     { return slog.String(KeyPath, p) }
func Output(p string) slog.Attr   { return slog.String(KeyOutput, p) }
func Source(p string) slog.Attr   { return slog.String(KeySource, p) }
func Stage(name string) slog.Attr { return slog.String(KeyStage, name) }
func Count(n int) slog.Attr       { return slog.Int(KeyCount, n) }
func Status(s string) slog.Attr   { return slog.String(KeyStatus, s) }
func BuildID(id string) slog.Attr { return slog.String(KeyBuildID, id) }
func Duration(d time.Duration) slog.Attr {
	return slog.Float64(KeyDurationMS, float64(d.Microseconds())/1000)
}
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
