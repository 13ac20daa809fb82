package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/opmodel/autoload/internal/config"
	"github.com/opmodel/autoload/internal/version"
	"github.com/opmodel/autoload/pkg/resolve"
)

// NewVersionCmd creates the version command.
func NewVersionCmd(_ *config.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show autoload version information.

Displays:
  - autoload version, commit, and build date
  - CUE SDK version linked into the binary
  - Module file extensions with a built-in decoder`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			exts := resolve.NewRegistry().Extensions()

			out := c.OutOrStdout()
			fmt.Fprintln(out, version.Get().String())
			fmt.Fprintf(out, "  Decoders:  %s\n", strings.Join(exts, " "))
			return nil
		},
	}
}
