// Package build runs the page generation pipeline.
//
// A build indexes the source tree, renders every markdown page on a bounded
// worker group, writes each page atomically and finally records the optional
// metadata artifact. Per-file failures are logged and counted in the
// BuildResult; only setup failures are returned as errors.
package build
