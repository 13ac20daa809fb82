// Package autoload discovers modules laid out by convention on disk and
// exposes them as lazily-loaded accessors.
//
// A root directory holds one folder per component; each file inside a
// component folder is a module keyed by its stem (file name without
// extension):
//
//	root/
//	  api/
//	    index.cue
//	    routes.yaml
//	  worker/
//	    index.cue
//
// Load walks the tree, groups files by component, optionally filters them by
// stem, and returns a Result whose leaves are *Module accessors. Nothing is
// read or decoded until an accessor's Get is called.
//
// The pipeline stages are exported individually (Walk, Group, Filter, Build,
// Flatten) so callers can compose them over their own file lists.
package autoload
