// Package errors provides classified error primitives for sedum.
//
// Setup failures are reported as ClassifiedError values built with the
// fluent ErrorBuilder; the CLI adapter turns them into a message and an exit
// code. Per-file failures during a build are logged and counted instead and
// never reach this package.
//
//	err := errors.FileSystemError("source directory unreadable").
//		WithContext("path", root).
//		WithCause(statErr).
//		Build()
package errors
