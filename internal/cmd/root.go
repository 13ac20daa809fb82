// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	cmdconfig "github.com/opmodel/autoload/internal/cmd/config"
	"github.com/opmodel/autoload/internal/config"
	"github.com/opmodel/autoload/internal/output"
)

// NewRootCmd creates the root command for the autoload CLI.
func NewRootCmd() *cobra.Command {
	cfg := &config.GlobalConfig{}

	rootCmd := &cobra.Command{
		Use:   "autoload",
		Short: "Discover and lazily load component modules",
		Long: `autoload walks a directory tree, groups module files by the folder that
contains them and exposes each file as a lazily resolved module.

Module files are decoded by extension: .cue, .yaml/.yml, .json and .toml.
Anything else resolves to its raw bytes.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			return initializeGlobals(c, cfg)
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfg.Flags.Config, "config", "",
		"Path to config file (env: AUTOLOAD_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&cfg.Flags.BasePath, "base-path", "",
		"Root directory holding one folder per mode (env: AUTOLOAD_PATH)")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Flags.Verbose, "verbose", "v", false,
		"Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&cfg.Flags.Timestamps, "timestamps", true,
		"Show timestamps in log output")

	rootCmd.AddCommand(NewLoadCmd(cfg))
	rootCmd.AddCommand(NewDiffCmd(cfg))
	rootCmd.AddCommand(cmdconfig.NewConfigCmd(cfg))
	rootCmd.AddCommand(NewVersionCmd(cfg))

	return rootCmd
}

// initializeGlobals loads configuration, sets up logging and resolves the
// base path into cfg.
func initializeGlobals(c *cobra.Command, cfg *config.GlobalConfig) error {
	configPath, err := config.ResolveConfigPath(config.ResolveConfigPathOptions{
		FlagValue: cfg.Flags.Config,
	})
	if err != nil {
		return err
	}
	cfg.ConfigPath = configPath

	// A broken config file must not stop commands like `config init` from
	// running; it is reported and defaults are used instead.
	loaded, loadErr := config.NewLoader().LoadWithDefaults(configPath.Value)
	if loadErr != nil {
		loaded = config.DefaultConfig()
	}
	cfg.Config = loaded

	// Timestamps: flag (if explicitly set) > config > default (nil = true)
	logCfg := output.LogConfig{Verbose: cfg.Flags.Verbose}
	if c.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(cfg.Flags.Timestamps)
	} else if loaded.Log.Timestamps != nil {
		logCfg.Timestamps = loaded.Log.Timestamps
	}
	output.SetupLogging(logCfg)

	if loadErr != nil {
		output.Warn("ignoring config file", "path", configPath.Value, "error", loadErr)
	}

	basePath, err := config.ResolveBasePath(config.ResolveBasePathOptions{
		FlagValue:   cfg.Flags.BasePath,
		ConfigValue: loaded.BasePath,
	})
	if err != nil {
		return err
	}
	cfg.BasePath = basePath

	config.LogResolvedValues(cfg.ConfigPath, cfg.BasePath)
	return nil
}
