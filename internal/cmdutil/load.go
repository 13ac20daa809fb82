package cmdutil

import (
	"context"
	"fmt"
	"slices"

	"github.com/opmodel/autoload/internal/config"
	oerrors "github.com/opmodel/autoload/internal/errors"
	"github.com/opmodel/autoload/internal/output"
	"github.com/opmodel/autoload/pkg/autoload"
	"github.com/opmodel/autoload/pkg/resolve"
)

// LoadOpts holds the inputs for Load.
type LoadOpts struct {
	// Mode is the first positional argument.
	Mode string
	// Name narrows the search (default: Mode).
	Name string
	// Flags are the command's load flags.
	Flags *LoadFlags
	// Config is the fully loaded global configuration.
	Config *config.GlobalConfig
}

// Load runs autoload.LoadContext with the resolved base path and the merged
// prune list. On failure it prints the error and returns an *ExitError with
// the matching exit code and Printed set.
func Load(ctx context.Context, opts LoadOpts) (*autoload.Result, error) {
	if opts.Config == nil || opts.Config.Config == nil {
		return nil, &oerrors.ExitError{Code: oerrors.ExitGeneralError, Err: fmt.Errorf("configuration not loaded")}
	}

	prune := slices.Clone(opts.Config.Config.Prune)
	var resolver resolve.Resolver = resolve.Default()
	if opts.Flags != nil {
		prune = append(prune, opts.Flags.Prune...)
		if opts.Flags.NoCache {
			resolver = resolve.NewRegistry()
		}
	}

	output.Debug("loading components",
		"mode", opts.Mode,
		"name", opts.Name,
		"basePath", opts.Config.BasePath.Value,
		"prune", prune,
	)

	ctx = output.WithLogger(ctx, output.Logger())
	result, err := autoload.LoadContext(ctx, autoload.Config{
		BasePath: opts.Config.BasePath.Value,
		Prune:    prune,
		Resolver: resolver,
	}, autoload.Mode(opts.Mode), opts.Name)
	if err != nil {
		PrintError("loading components failed", err)
		return nil, &oerrors.ExitError{Code: oerrors.ExitCodeFromError(err), Err: err, Printed: true}
	}
	return result, nil
}
