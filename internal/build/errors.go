package build

import "errors"

// ErrConfigRequired is returned when Run is called without a configuration.
var ErrConfigRequired = errors.New("build configuration required")
