package autoload

import (
	"errors"

	"github.com/opmodel/autoload/pkg/lazy"
	"github.com/opmodel/autoload/pkg/resolve"
)

// Module is a lazy accessor for one module file.
type Module struct {
	path  string
	value *lazy.Value[any]
}

func newModule(path string, r resolve.Resolver) *Module {
	return &Module{
		path: path,
		value: lazy.New(func() (any, error) {
			v, err := r.Resolve(path)
			if err != nil {
				var re *resolve.ResolutionError
				if !errors.As(err, &re) {
					err = &resolve.ResolutionError{Path: path, Err: err}
				}
				return nil, err
			}
			return v, nil
		}),
	}
}

// Path returns the file path recorded when the module was discovered.
func (m *Module) Path() string {
	return m.path
}

// Get resolves the module on first call and returns the cached value on
// later calls. Failures are returned as *resolve.ResolutionError and are not
// cached.
func (m *Module) Get() (any, error) {
	return m.value.Get()
}

// Loaded reports whether Get has already produced a value.
func (m *Module) Loaded() bool {
	return m.value.Loaded()
}
