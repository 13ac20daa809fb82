package config

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opmodel/autoload/internal/config"
	oerrors "github.com/opmodel/autoload/internal/errors"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd(cfg *config.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate the autoload configuration file",
		Long: `Validate the autoload configuration file.

Checks that the file parses and that every key holds a usable value:
output is a known format and prune entries are plain directory names.

The command validates ~/.autoload/config.yaml by default.
Use --config flag to specify a different location.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runVet(c, cfg)
		},
	}
}

func runVet(c *cobra.Command, cfg *config.GlobalConfig) error {
	path := cfg.ConfigPath.Value
	if path == "" {
		var err error
		if path, err = config.GetConfigFile(); err != nil {
			return fmt.Errorf("getting config file path: %w", err)
		}
	}

	expandedPath, err := config.ExpandPath(path)
	if err != nil {
		return fmt.Errorf("expanding config path: %w", err)
	}

	exists, err := config.ConfigFileExists(expandedPath)
	if err != nil {
		return fmt.Errorf("checking config file: %w", err)
	}
	if !exists {
		return oerrors.NewExitError(
			fmt.Errorf("config file not found: %s", expandedPath),
			oerrors.ExitNotFound,
		)
	}

	loaded, err := config.NewLoader().Load(expandedPath)
	if err != nil {
		return oerrors.NewExitError(err, oerrors.ExitValidationError)
	}

	if err := config.Validate(loaded); err != nil {
		var validationErrs config.ValidationErrors
		if errors.As(err, &validationErrs) {
			stderr := c.ErrOrStderr()
			fmt.Fprintln(stderr, "Error: config validation failed")
			fmt.Fprintf(stderr, "  File: %s\n\n", expandedPath)
			for _, e := range validationErrs {
				fmt.Fprintf(stderr, "  %s: %s\n", e.Field, e.Message)
			}
			return &oerrors.ExitError{Err: err, Code: oerrors.ExitValidationError, Printed: true}
		}
		return fmt.Errorf("validating config: %w", err)
	}

	fmt.Fprintf(c.OutOrStdout(), "Config file is valid: %s\n", expandedPath)
	return nil
}
