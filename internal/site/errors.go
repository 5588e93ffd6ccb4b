package site

import "errors"

var (
	// ErrSourceUnreadable indicates the source root is missing, not a directory or unreadable.
	ErrSourceUnreadable = errors.New("source directory unreadable")

	// ErrBrokenSymlink indicates a symlink in the source tree points nowhere.
	ErrBrokenSymlink = errors.New("broken symlink")
)
