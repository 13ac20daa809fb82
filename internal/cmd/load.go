package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opmodel/autoload/internal/cmdutil"
	"github.com/opmodel/autoload/internal/config"
	oerrors "github.com/opmodel/autoload/internal/errors"
	"github.com/opmodel/autoload/internal/output"
	"github.com/opmodel/autoload/internal/render"
)

// NewLoadCmd creates the load command.
func NewLoadCmd(cfg *config.GlobalConfig) *cobra.Command {
	var lf cmdutil.LoadFlags

	var (
		outputFlag  string
		resolveFlag bool
		jobsFlag    int
	)

	c := &cobra.Command{
		Use:   "load <mode> [name]",
		Short: "Discover modules and print the result",
		Long: `Walk <base-path>/<mode>, group module files by their parent folder and
print the resulting keys.

Arguments:
  mode    Folder under the base path to walk. The literal "filter" keeps
          only modules whose stem contains the last segment of name and
          keys the result by stem.
  name    Search name (default: mode). A dotted name walks the base path
          itself instead of <base-path>/<mode>.

A result with exactly one component is flattened to that component's
modules.

Examples:
  # List every component under ./component
  autoload load component

  # Resolve every module and show values
  autoload load component --resolve -o table

  # Collect modules whose stem contains "routes", keyed by stem
  autoload load filter api.routes -o yaml`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(c *cobra.Command, args []string) error {
			return runLoad(c, args, cfg, &lf, outputFlag, resolveFlag, jobsFlag)
		},
	}

	lf.AddTo(c)

	c.Flags().StringVarP(&outputFlag, "output", "o", "",
		"Output format: tree, table, yaml, json (default: from config, else tree)")
	c.Flags().BoolVar(&resolveFlag, "resolve", false,
		"Resolve every module and show its value")
	c.Flags().IntVarP(&jobsFlag, "jobs", "j", 0,
		"Modules resolved in parallel with --resolve (default: GOMAXPROCS)")

	return c
}

func runLoad(c *cobra.Command, args []string, cfg *config.GlobalConfig, lf *cmdutil.LoadFlags, outputFmt string, resolveAll bool, jobs int) error {
	ctx := c.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if outputFmt == "" && cfg.Config != nil {
		outputFmt = cfg.Config.Output
	}
	format, err := output.ParseFormat(outputFmt)
	if err != nil {
		return &oerrors.ExitError{Code: oerrors.ExitGeneralError, Err: err}
	}

	mode, name := args[0], ""
	if len(args) > 1 {
		name = args[1]
	}

	result, err := cmdutil.Load(ctx, cmdutil.LoadOpts{
		Mode:   mode,
		Name:   name,
		Flags:  lf,
		Config: cfg,
	})
	if err != nil {
		return err
	}

	records := render.Collect(result)
	if resolveAll {
		err := output.RunWithSpinner(ctx, func(ctx context.Context) error {
			var rerr error
			records, rerr = render.ResolveAll(ctx, result, jobs)
			return rerr
		}, output.WithTitle(fmt.Sprintf("Resolving %d modules", len(records))))
		if err != nil {
			return &oerrors.ExitError{Code: oerrors.ExitGeneralError, Err: err}
		}
	}

	if err := render.Write(c.OutOrStdout(), result, records, render.Options{
		Format: format,
		Title:  mode,
	}); err != nil {
		return &oerrors.ExitError{Code: oerrors.ExitGeneralError, Err: fmt.Errorf("writing output: %w", err)}
	}

	if !resolveAll {
		return nil
	}

	resolved, failed := render.Counts(records)
	if failed > 0 {
		for _, rec := range records {
			if rec.Status == output.StatusFailed {
				cmdutil.PrintError("module failed to resolve: "+rec.Key(), rec.Error)
			}
		}
		return &oerrors.ExitError{
			Code:    oerrors.ExitValidationError,
			Err:     fmt.Errorf("%d of %d modules failed to resolve", failed, len(records)),
			Printed: true,
		}
	}

	if format == output.FormatTree || format == output.FormatTable {
		fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark(fmt.Sprintf("%d modules resolved", resolved)))
	}
	return nil
}
