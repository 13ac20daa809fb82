package autoload

import (
	"os"
	"path/filepath"
)

// Directory names that are never descended into.
const (
	// DependencyDir is the dependency-manager folder name.
	DependencyDir = "node_modules"

	// VCSDir is the version-control folder name.
	VCSDir = ".git"
)

// WalkOption configures Walk.
type WalkOption func(*walkConfig)

type walkConfig struct {
	prune map[string]struct{}
}

// WithPrune adds directory names to skip in addition to DependencyDir and
// VCSDir. Empty names are ignored.
func WithPrune(names ...string) WalkOption {
	return func(c *walkConfig) {
		for _, n := range names {
			if n == "" {
				continue
			}
			c.prune[n] = struct{}{}
		}
	}
}

// Walk returns every non-directory path under root, depth-first, in the order
// the directory listings return them.
//
// If root itself is a pruned directory, Walk returns nil without touching the
// filesystem. Pruned directories are skipped at any depth. Symbolic links are
// followed. Any listing or stat failure aborts the walk with a
// *FilesystemError; no partial result is returned.
func Walk(root string, opts ...WalkOption) ([]string, error) {
	cfg := &walkConfig{
		prune: map[string]struct{}{
			DependencyDir: {},
			VCSDir:        {},
		},
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return walk(root, cfg)
}

func walk(dir string, cfg *walkConfig) ([]string, error) {
	if _, skip := cfg.prune[filepath.Base(dir)]; skip {
		return nil, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &FilesystemError{Op: "read directory", Path: dir, Err: err}
	}

	var files []string
	for _, e := range entries {
		path := filepath.Join(dir, e.Name())

		info, err := os.Stat(path)
		if err != nil {
			return nil, &FilesystemError{Op: "stat", Path: path, Err: err}
		}

		if info.IsDir() {
			sub, err := walk(path, cfg)
			if err != nil {
				return nil, err
			}
			files = append(files, sub...)
			continue
		}
		files = append(files, path)
	}
	return files, nil
}
