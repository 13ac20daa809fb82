package config

// GlobalFlags holds the values of the root command's persistent flags.
type GlobalFlags struct {
	Config     string
	BasePath   string
	Verbose    bool
	Timestamps bool
}

// GlobalConfig holds CLI-wide configuration resolved during PersistentPreRunE.
// It is created empty by the root command, filled once at startup and passed
// to every sub-command constructor.
type GlobalConfig struct {
	// Flags are the raw persistent flag values.
	Flags GlobalFlags

	// Config is the loaded config file (with env overrides and defaults).
	Config *Config

	// ConfigPath is the resolved config file location.
	ConfigPath ResolvedValue

	// BasePath is the resolved component root.
	BasePath ResolvedValue
}
