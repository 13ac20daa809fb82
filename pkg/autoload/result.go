package autoload

import (
	"fmt"
	"sort"
	"strings"
)

// Mode selects how Load groups its result.
type Mode string

const (
	// ModeComponent keys the result by component name.
	ModeComponent Mode = "component"

	// ModeFilter keeps only stems containing the search token and keys the
	// result by stem, then component.
	ModeFilter Mode = "filter"
)

// String returns the mode literal.
func (m Mode) String() string {
	return string(m)
}

// IsFilter reports whether m activates filter semantics. Only the literal
// "filter" does; every other value is treated as a plain directory name.
func (m Mode) IsFilter() bool {
	return m == ModeFilter
}

// Reserved result keys. They are never counted as components when deciding
// whether to flatten a result.
const (
	KeyPaths     = "paths"
	KeyComponent = "component"
	KeyIndex     = "index"
)

// Entry is a node of a Result: a leaf holding a Module, or a branch holding
// Children. A component branch also carries the paths of its modules.
type Entry struct {
	// Module is set on leaves.
	Module *Module

	// Children is set on branches.
	Children map[string]*Entry

	// Paths maps child key -> file path for component branches.
	Paths map[string]string
}

// IsLeaf reports whether e holds a module.
func (e *Entry) IsLeaf() bool {
	return e != nil && e.Module != nil
}

// Keys returns the sorted child keys of e.
func (e *Entry) Keys() []string {
	if e == nil {
		return nil
	}
	return sortedKeys(e.Children)
}

// Result is the output of Load.
type Result struct {
	// Mode is the mode the result was built with.
	Mode Mode

	// Entries holds the top-level keys: component names in component mode,
	// stems in filter mode, or module keys once flattened.
	Entries map[string]*Entry

	// Paths is the top-level path map. In filter mode it maps component ->
	// path; in a flattened component result it maps stem -> path.
	Paths map[string]string

	// Flattened is true when a single component was collapsed into the top
	// level.
	Flattened bool
}

// Keys returns the sorted top-level keys.
func (r *Result) Keys() []string {
	return sortedKeys(r.Entries)
}

// Lookup follows keys from the top level down and returns the entry found.
func (r *Result) Lookup(keys ...string) (*Entry, error) {
	if len(keys) == 0 {
		return nil, fmt.Errorf("lookup: no keys given: %w", ErrNotFound)
	}

	entry, ok := r.Entries[keys[0]]
	if !ok || entry == nil {
		return nil, fmt.Errorf("key %q: %w", keys[0], ErrNotFound)
	}
	for i, k := range keys[1:] {
		child, ok := entry.Children[k]
		if !ok || child == nil {
			return nil, fmt.Errorf("key %q: %w", strings.Join(keys[:i+2], "."), ErrNotFound)
		}
		entry = child
	}
	return entry, nil
}

// Load looks up a leaf and resolves its module.
func (r *Result) Load(keys ...string) (any, error) {
	entry, err := r.Lookup(keys...)
	if err != nil {
		return nil, err
	}
	if !entry.IsLeaf() {
		return nil, fmt.Errorf("key %q is a component, not a module", strings.Join(keys, "."))
	}
	return entry.Module.Get()
}

// Each calls fn for every leaf in key order, passing the key path that
// reaches it. Iteration stops at the first error fn returns.
func (r *Result) Each(fn func(keys []string, m *Module) error) error {
	for _, k := range r.Keys() {
		if err := eachEntry([]string{k}, r.Entries[k], fn); err != nil {
			return err
		}
	}
	return nil
}

func eachEntry(keys []string, e *Entry, fn func([]string, *Module) error) error {
	if e == nil {
		return nil
	}
	if e.IsLeaf() {
		return fn(keys, e.Module)
	}
	for _, k := range e.Keys() {
		next := append(append([]string(nil), keys...), k)
		if err := eachEntry(next, e.Children[k], fn); err != nil {
			return err
		}
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
