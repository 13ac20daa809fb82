package config

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opmodel/autoload/internal/config"
	oerrors "github.com/opmodel/autoload/internal/errors"
	"github.com/opmodel/autoload/internal/output"
)

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd(cfg *config.GlobalConfig) *cobra.Command {
	var forceFlag bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Initialize default configuration",
		Long: `Write the default autoload configuration file.

The file is written to ~/.autoload/config.yaml unless --config or
AUTOLOAD_CONFIG names another location.

Examples:
  # Initialize configuration
  autoload config init

  # Overwrite existing configuration
  autoload config init --force`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runInit(c, cfg, forceFlag)
		},
	}

	c.Flags().BoolVarP(&forceFlag, "force", "f", false,
		"Overwrite existing configuration")

	return c
}

func runInit(c *cobra.Command, cfg *config.GlobalConfig, force bool) error {
	path := cfg.ConfigPath.Value
	if path == "" {
		var err error
		if path, err = config.GetConfigFile(); err != nil {
			return oerrors.Wrap(oerrors.ErrNotFound, "could not determine home directory")
		}
	}

	if err := config.WriteFile(path, config.DefaultConfig(), force); err != nil {
		if errors.Is(err, config.ErrConfigExists) {
			return &oerrors.DetailError{
				Type:     "validation failed",
				Message:  "configuration already exists",
				Location: path,
				Hint:     "Use --force to overwrite existing configuration.",
				Cause:    oerrors.ErrValidation,
			}
		}
		return oerrors.Wrap(oerrors.ErrPermission, err.Error())
	}

	output.Debug("config written", "path", path, "force", force)
	fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark("Configuration initialized at "+path))
	fmt.Fprintln(c.OutOrStdout(), "Validate with: autoload config vet")
	return nil
}
