package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configHeader = `# autoload configuration.
# Environment variables (AUTOLOAD_PATH, AUTOLOAD_OUTPUT, AUTOLOAD_PRUNE,
# AUTOLOAD_LOG_TIMESTAMPS) override the values below.
`

// ErrConfigExists is returned by WriteFile when the target exists and
// force is false.
var ErrConfigExists = errors.New("config file already exists")

// WriteFile writes cfg as YAML to path, creating parent directories.
// An existing file is only replaced when force is set.
func WriteFile(path string, cfg *Config, force bool) error {
	expanded, err := ExpandPath(path)
	if err != nil {
		return fmt.Errorf("expanding config path: %w", err)
	}

	if !force {
		if _, err := os.Stat(expanded); err == nil {
			return fmt.Errorf("%w: %s", ErrConfigExists, expanded)
		}
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(expanded), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(expanded, append([]byte(configHeader), data...), 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
