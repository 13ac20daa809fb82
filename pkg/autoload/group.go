package autoload

import (
	"path/filepath"
	"strings"
)

// Grouping maps component name -> module stem -> file path.
type Grouping map[string]map[string]string

// Components returns the number of components in g.
func (g Grouping) Components() int {
	return len(g)
}

// Modules returns the total number of module entries across components.
func (g Grouping) Modules() int {
	n := 0
	for _, modules := range g {
		n += len(modules)
	}
	return n
}

// Group buckets paths by the base name of their parent directory, keyed
// within each bucket by module stem. When two paths share a component and a
// stem (a.yaml and a.json in one folder) the later one wins.
func Group(paths []string) Grouping {
	return group(paths, nil)
}

// collisionFunc is told about every stem that replaces an earlier one.
type collisionFunc func(component, stem, previous, next string)

func group(paths []string, onCollision collisionFunc) Grouping {
	g := make(Grouping)
	for _, p := range paths {
		component := filepath.Base(filepath.Dir(p))
		stem := Stem(p)

		modules, ok := g[component]
		if !ok {
			modules = make(map[string]string)
			g[component] = modules
		}
		if prev, dup := modules[stem]; dup && onCollision != nil {
			onCollision(component, stem, prev, p)
		}
		modules[stem] = p
	}
	return g
}

// Stem returns the base name of path with its final extension removed.
// Dot-files such as ".env" have no extension and are returned whole.
func Stem(path string) string {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" {
		return base
	}
	return stem
}
