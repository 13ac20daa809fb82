package autoload

import "strings"

// Filter removes, in place, every module whose stem does not contain
// substring (case-sensitive). Components left without modules stay in g as
// empty maps. Filter returns g.
func Filter(g Grouping, substring string) Grouping {
	for _, modules := range g {
		for stem := range modules {
			if !strings.Contains(stem, substring) {
				delete(modules, stem)
			}
		}
	}
	return g
}

// SearchToken derives the Filter substring from a requested name: its base
// name with the extension stripped ("config/db.yaml" -> "db").
func SearchToken(name string) string {
	return Stem(name)
}
