// Package config provides configuration loading and management.
package config

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps,omitempty"`
}

// Config represents the autoload CLI configuration.
// Loaded from ~/.autoload/config.yaml.
type Config struct {
	// BasePath is the root directory holding one folder per mode.
	// Env: AUTOLOAD_PATH (resolved separately, see ResolveBasePath)
	BasePath string `mapstructure:"basePath" yaml:"basePath,omitempty"`

	// Prune lists extra directory names the walk never descends into.
	// node_modules and .git are always pruned.
	// Env: AUTOLOAD_PRUNE (comma-separated)
	Prune []string `mapstructure:"prune" yaml:"prune,omitempty"`

	// Output is the default output format for `autoload load`.
	// Env: AUTOLOAD_OUTPUT, Default: "tree"
	Output string `mapstructure:"output" yaml:"output,omitempty"`

	// Log contains logging-related settings.
	Log LogConfig `mapstructure:"log" yaml:"log,omitempty"`
}

// DefaultOutput is the output format used when none is configured.
const DefaultOutput = "tree"

// DefaultConfig returns a Config with all default values populated.
// Used by `autoload config init` to generate the initial config file.
func DefaultConfig() *Config {
	timestamps := true
	return &Config{
		Prune:  []string{"vendor"},
		Output: DefaultOutput,
		Log:    LogConfig{Timestamps: &timestamps},
	}
}

// WithDefaults returns a copy of c with unset fields filled from defaults.
func (c *Config) WithDefaults() *Config {
	out := *c
	if out.Output == "" {
		out.Output = DefaultOutput
	}
	return &out
}
