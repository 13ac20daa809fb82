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

// NewDiffCmd creates the diff command.
func NewDiffCmd(cfg *config.GlobalConfig) *cobra.Command {
	var lf cmdutil.LoadFlags

	var nameFlag string

	c := &cobra.Command{
		Use:   "diff <mode> <from> <to>",
		Short: "Compare two modules of one load result",
		Long: `Load <mode>, resolve the modules at the dotted keys <from> and <to> and
print a structural diff of their values.

Keys are the dotted paths printed by "autoload load".

Examples:
  # Compare the index modules of two components
  autoload diff component api.index worker.index

  # Compare one stem across components in filter mode
  autoload diff filter routes.api routes.admin --name app.routes`,
		Args: cobra.ExactArgs(3),
		RunE: func(c *cobra.Command, args []string) error {
			return runDiff(c, args, cfg, &lf, nameFlag)
		},
	}

	lf.AddTo(c)
	c.Flags().StringVar(&nameFlag, "name", "",
		"Search name passed to the loader (default: mode)")

	return c
}

func runDiff(c *cobra.Command, args []string, cfg *config.GlobalConfig, lf *cmdutil.LoadFlags, name string) error {
	ctx := c.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	mode, fromKey, toKey := args[0], args[1], args[2]

	result, err := cmdutil.Load(ctx, cmdutil.LoadOpts{
		Mode:   mode,
		Name:   name,
		Flags:  lf,
		Config: cfg,
	})
	if err != nil {
		return err
	}

	diff, err := render.DiffModules(result, fromKey, toKey, output.IsTTY())
	if err != nil {
		cmdutil.PrintError("diff failed", err)
		return &oerrors.ExitError{Code: oerrors.ExitCodeFromError(err), Err: err, Printed: true}
	}

	out := c.OutOrStdout()
	if diff == "" {
		fmt.Fprintln(out, output.FormatCheckmark(fmt.Sprintf("No differences between %s and %s", fromKey, toKey)))
		return nil
	}

	fmt.Fprintln(out, diff)
	return nil
}
