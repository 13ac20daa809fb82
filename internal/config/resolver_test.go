package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveBasePath_FlagPrecedence(t *testing.T) {
	t.Setenv(EnvBasePath, "/env/components")

	result, err := ResolveBasePath(ResolveBasePathOptions{
		FlagValue:   "/flag/components",
		ConfigValue: "/config/components",
	})
	require.NoError(t, err)

	assert.Equal(t, "/flag/components", result.Value)
	assert.Equal(t, SourceFlag, result.Source)
	assert.Equal(t, "/env/components", result.Shadowed[SourceEnv])
	assert.Equal(t, "/config/components", result.Shadowed[SourceConfig])
}

func TestResolveBasePath_EnvPrecedence(t *testing.T) {
	t.Setenv(EnvBasePath, "/env/components")

	result, err := ResolveBasePath(ResolveBasePathOptions{
		ConfigValue: "/config/components",
	})
	require.NoError(t, err)

	assert.Equal(t, "/env/components", result.Value)
	assert.Equal(t, SourceEnv, result.Source)
	assert.Equal(t, "/config/components", result.Shadowed[SourceConfig])
	assert.NotContains(t, result.Shadowed, SourceFlag)
}

func TestResolveBasePath_ConfigFallback(t *testing.T) {
	t.Setenv(EnvBasePath, "")

	result, err := ResolveBasePath(ResolveBasePathOptions{
		ConfigValue: "/config/components",
	})
	require.NoError(t, err)

	assert.Equal(t, "/config/components", result.Value)
	assert.Equal(t, SourceConfig, result.Source)
	assert.Empty(t, result.Shadowed)
}

func TestResolveBasePath_WorkingDirectoryDefault(t *testing.T) {
	t.Setenv(EnvBasePath, "")

	wd, err := os.Getwd()
	require.NoError(t, err)

	result, err := ResolveBasePath(ResolveBasePathOptions{})
	require.NoError(t, err)

	assert.Equal(t, wd, result.Value)
	assert.Equal(t, SourceDefault, result.Source)
}

func TestResolveBasePath_ExpandsTilde(t *testing.T) {
	t.Setenv(EnvBasePath, "")

	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)

	result, err := ResolveBasePath(ResolveBasePathOptions{FlagValue: "~"})
	require.NoError(t, err)

	assert.Equal(t, homeDir, result.Value)
}

func TestResolveConfigPath_FlagPrecedence(t *testing.T) {
	t.Setenv(EnvConfig, "/env/path/config.yaml")

	result, err := ResolveConfigPath(ResolveConfigPathOptions{
		FlagValue: "/flag/path/config.yaml",
	})
	require.NoError(t, err)

	assert.Equal(t, "/flag/path/config.yaml", result.Value)
	assert.Equal(t, SourceFlag, result.Source)
	assert.Equal(t, "/env/path/config.yaml", result.Shadowed[SourceEnv])
	assert.Contains(t, result.Shadowed, SourceDefault)
}

func TestResolveConfigPath_EnvPrecedence(t *testing.T) {
	t.Setenv(EnvConfig, "/env/path/config.yaml")

	result, err := ResolveConfigPath(ResolveConfigPathOptions{})
	require.NoError(t, err)

	assert.Equal(t, "/env/path/config.yaml", result.Value)
	assert.Equal(t, SourceEnv, result.Source)
	assert.Contains(t, result.Shadowed, SourceDefault)
}

func TestResolveConfigPath_Default(t *testing.T) {
	t.Setenv(EnvConfig, "")

	paths, err := DefaultPaths()
	require.NoError(t, err)

	result, err := ResolveConfigPath(ResolveConfigPathOptions{})
	require.NoError(t, err)

	assert.Equal(t, paths.ConfigFile, result.Value)
	assert.Equal(t, SourceDefault, result.Source)
	assert.Empty(t, result.Shadowed)
}
