// Package cmdutil provides helpers shared by the load and diff commands.
package cmdutil

import (
	"github.com/spf13/cobra"
)

// LoadFlags holds flags common to commands that load components
// (load, diff).
type LoadFlags struct {
	// Prune adds directory names to skip on top of the configured ones.
	Prune []string

	// NoCache bypasses the shared module cache.
	NoCache bool
}

// AddTo registers the load flags on the given cobra command.
func (f *LoadFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&f.Prune, "prune", nil,
		"Extra directory names to skip (repeatable, comma-separated)")
	cmd.Flags().BoolVar(&f.NoCache, "no-cache", false,
		"Resolve modules without the shared cache")
}
