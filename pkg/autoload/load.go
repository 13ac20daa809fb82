package autoload

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/opmodel/autoload/internal/output"
	"github.com/opmodel/autoload/pkg/resolve"
)

// Config controls where Load looks and how modules are resolved.
type Config struct {
	// BasePath is the root holding one directory per mode. When empty, the
	// directory of the Go source file that called Load is used if it exists,
	// else the process working directory.
	BasePath string

	// Prune lists extra directory names to skip during the walk.
	Prune []string

	// Resolver turns module paths into values. Defaults to resolve.Default().
	Resolver resolve.Resolver
}

// Load walks BasePath/mode and returns its modules as lazy accessors.
//
// name defaults to mode. A dotted name ("db.primary") widens the walk to
// BasePath itself. With ModeFilter, only stems containing SearchToken(name)
// are kept and the result is keyed by stem. A result with exactly one
// component is flattened.
func Load(cfg Config, mode Mode, name string) (*Result, error) {
	return load(context.Background(), cfg, mode, name, callerDir(2))
}

// LoadContext is Load with a context that may carry a logger
// (see output.WithLogger).
func LoadContext(ctx context.Context, cfg Config, mode Mode, name string) (*Result, error) {
	return load(ctx, cfg, mode, name, callerDir(2))
}

func load(ctx context.Context, cfg Config, mode Mode, name, caller string) (*Result, error) {
	logger := output.FromContext(ctx)

	if name == "" {
		name = string(mode)
	}

	base, err := ResolveBasePath(cfg.BasePath, caller)
	if err != nil {
		return nil, err
	}

	search := SearchPath(base, mode, name)
	logger.Debug("walking components", "mode", mode, "name", name, "path", search)

	paths, err := Walk(search, WithPrune(cfg.Prune...))
	if err != nil {
		return nil, err
	}

	grouping := group(paths, func(component, stem, previous, next string) {
		logger.Debug("module stem collision",
			"component", component,
			"stem", stem,
			"replaced", previous,
			"by", next,
		)
	})

	if mode.IsFilter() {
		token := SearchToken(name)
		Filter(grouping, token)
		logger.Debug("filtered modules", "token", token, "remaining", grouping.Modules())
	}

	r := cfg.Resolver
	if r == nil {
		r = resolve.Default()
	}

	result := Flatten(Build(grouping, mode, r))

	logger.Debug("components loaded",
		"files", len(paths),
		"components", grouping.Components(),
		"keys", len(result.Entries),
		"flattened", result.Flattened,
	)
	return result, nil
}

// SearchPath returns the directory Load walks: base/mode, or its parent when
// name is dotted.
func SearchPath(base string, mode Mode, name string) string {
	search := filepath.Join(base, string(mode))
	if strings.Contains(name, ".") {
		search = filepath.Dir(search)
	}
	return search
}

// ResolveBasePath picks the root directory. Exactly one source wins:
//
//  1. basePath, made absolute, when non-empty
//  2. callerDir, when non-empty and an existing directory
//  3. the working directory
func ResolveBasePath(basePath, callerDir string) (string, error) {
	if basePath != "" {
		abs, err := filepath.Abs(basePath)
		if err != nil {
			return "", fmt.Errorf("resolving base path %s: %w", basePath, err)
		}
		return abs, nil
	}

	if callerDir != "" {
		if info, err := os.Stat(callerDir); err == nil && info.IsDir() {
			return callerDir, nil
		}
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", &FilesystemError{Op: "getwd", Path: ".", Err: err}
	}
	return wd, nil
}

// callerDir returns the directory of the source file skip frames up.
func callerDir(skip int) string {
	_, file, _, ok := runtime.Caller(skip)
	if !ok || file == "" {
		return ""
	}
	return filepath.Dir(file)
}
