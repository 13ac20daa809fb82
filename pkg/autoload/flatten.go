package autoload

import (
	"maps"
	"strings"
)

func isReserved(key string) bool {
	switch key {
	case KeyPaths, KeyComponent, KeyIndex:
		return true
	}
	return false
}

// Flatten collapses a result with exactly one non-reserved top-level key into
// that key's children, so callers need not know the component's name. The
// collapsed result keeps the outer Paths when there is one (filter mode) and
// otherwise takes the component's own Paths.
//
// Results with zero or several keys go through RegroupByFirstSegment.
// The input is not modified.
func Flatten(r *Result) *Result {
	var keys []string
	for k := range r.Entries {
		if !isReserved(k) {
			keys = append(keys, k)
		}
	}

	if len(keys) != 1 {
		return RegroupByFirstSegment(r)
	}

	only := r.Entries[keys[0]]
	flat := &Result{
		Mode:      r.Mode,
		Entries:   make(map[string]*Entry),
		Flattened: true,
	}
	if only != nil {
		maps.Copy(flat.Entries, only.Children)
	}
	switch {
	case r.Paths != nil:
		flat.Paths = maps.Clone(r.Paths)
	case only != nil:
		flat.Paths = maps.Clone(only.Paths)
	}
	if flat.Paths == nil {
		flat.Paths = make(map[string]string)
	}
	return flat
}

// RegroupByFirstSegment resolves dotted keys through to a nested value of the
// same first segment: for a non-empty branch under "foo.bar" that has a
// child "foo", the result gains Entries["foo"] = that child. Keys without a
// dot, and dotted keys with no such child, are left as they are; a missing
// child never clears an existing Entries["foo"].
// The input is not modified.
func RegroupByFirstSegment(r *Result) *Result {
	out := &Result{
		Mode:      r.Mode,
		Entries:   maps.Clone(r.Entries),
		Paths:     maps.Clone(r.Paths),
		Flattened: r.Flattened,
	}
	if out.Entries == nil {
		out.Entries = make(map[string]*Entry)
	}

	for _, key := range sortedKeys(r.Entries) {
		entry := r.Entries[key]
		if entry == nil || len(entry.Children) == 0 {
			continue
		}
		first, _, dotted := strings.Cut(key, ".")
		if !dotted {
			continue
		}
		if child, ok := entry.Children[first]; ok {
			out.Entries[first] = child
		}
	}
	return out
}
