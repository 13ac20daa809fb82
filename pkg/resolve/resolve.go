// Package resolve turns a module file path into a runtime value.
//
// It plays the role of a module system for the autoloader: a Resolver is
// handed the absolute path recorded at walk time and returns whatever value
// the file evaluates to. The default Resolver decodes files by extension
// (CUE, YAML, JSON, TOML) and falls back to the raw file bytes.
package resolve

import (
	"errors"
	"fmt"
)

// ErrResolution indicates a module path could not be resolved or evaluated.
var ErrResolution = errors.New("module resolution failed")

// Resolver resolves a module file into a value.
type Resolver interface {
	Resolve(path string) (any, error)
}

// ResolverFunc adapts a plain function to the Resolver interface.
type ResolverFunc func(path string) (any, error)

// Resolve calls f(path).
func (f ResolverFunc) Resolve(path string) (any, error) {
	return f(path)
}

// ResolutionError reports a failure to resolve the module at Path.
type ResolutionError struct {
	// Path is the module file that failed to resolve.
	Path string

	// Err is the underlying read or decode error.
	Err error
}

// Error implements the error interface.
func (e *ResolutionError) Error() string {
	return fmt.Sprintf("resolving module %s: %v", e.Path, e.Err)
}

// Unwrap exposes both ErrResolution and the underlying cause to errors.Is.
func (e *ResolutionError) Unwrap() []error {
	return []error{ErrResolution, e.Err}
}

// newResolutionError wraps err unless it already is a *ResolutionError.
func newResolutionError(path string, err error) error {
	var re *ResolutionError
	if errors.As(err, &re) {
		return err
	}
	return &ResolutionError{Path: path, Err: err}
}
