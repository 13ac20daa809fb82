package autoload

import "github.com/opmodel/autoload/pkg/resolve"

// Build turns a Grouping into a Result of lazy module accessors. No module is
// resolved here; resolution happens on the first Get of each accessor.
//
// With filter semantics the result is inverted (see InvertByStem). Otherwise
// every component becomes a branch with one leaf per stem; an "index" stem
// also fills the component's "component" slot with the same accessor.
func Build(g Grouping, mode Mode, r resolve.Resolver) *Result {
	if mode.IsFilter() {
		return InvertByStem(g, r)
	}

	res := &Result{
		Mode:    mode,
		Entries: make(map[string]*Entry, len(g)),
	}
	for _, name := range sortedKeys(g) {
		res.Entries[name] = buildComponent(g[name], r)
	}
	return res
}

func buildComponent(modules map[string]string, r resolve.Resolver) *Entry {
	e := &Entry{
		Children: make(map[string]*Entry, len(modules)),
		Paths:    make(map[string]string, len(modules)),
	}
	for _, stem := range sortedKeys(modules) {
		path := modules[stem]
		leaf := &Entry{Module: newModule(path, r)}

		e.Children[stem] = leaf
		e.Paths[stem] = path

		if stem == KeyIndex {
			e.Children[KeyComponent] = leaf
			e.Paths[KeyComponent] = path
		}
	}
	return e
}

// InvertByStem keys a Grouping by stem first: every (component, stem, path)
// becomes Entries[stem].Children[component], and Paths[component] = path.
// When a component contributes several stems, Paths keeps the last one in
// stem order.
func InvertByStem(g Grouping, r resolve.Resolver) *Result {
	res := &Result{
		Mode:    ModeFilter,
		Entries: make(map[string]*Entry),
		Paths:   make(map[string]string),
	}
	for _, component := range sortedKeys(g) {
		modules := g[component]
		for _, stem := range sortedKeys(modules) {
			path := modules[stem]

			byStem, ok := res.Entries[stem]
			if !ok {
				byStem = &Entry{Children: make(map[string]*Entry)}
				res.Entries[stem] = byStem
			}
			byStem.Children[component] = &Entry{Module: newModule(path, r)}
			res.Paths[component] = path
		}
	}
	return res
}
