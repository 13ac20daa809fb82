package autoload

import (
	"errors"
	"fmt"
)

// Sentinel errors for known conditions.
var (
	// ErrFilesystem indicates a directory could not be listed or an entry
	// could not be stat-ed during the walk.
	ErrFilesystem = errors.New("filesystem error")

	// ErrNotFound indicates a key is not present in a Result.
	ErrNotFound = errors.New("not found")
)

// FilesystemError reports a failed filesystem operation during the walk.
type FilesystemError struct {
	// Op is the operation that failed ("read directory", "stat").
	Op string

	// Path is the path the operation was applied to.
	Path string

	// Err is the underlying OS error.
	Err error
}

// Error implements the error interface.
func (e *FilesystemError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap exposes both ErrFilesystem and the OS error to errors.Is.
func (e *FilesystemError) Unwrap() []error {
	return []error{ErrFilesystem, e.Err}
}
