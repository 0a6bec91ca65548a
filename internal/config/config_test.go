package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"codeberg.org/mutker/faultctl/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetArgs pins os.Args for the test so that go test's own flags do
// not reach the loader's flag set.
func resetArgs(t *testing.T, args ...string) {
	t.Helper()

	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })
	os.Args = append([]string{"faultctl"}, args...)
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "config_test")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	configPath := filepath.Join(tempDir, "faultctl.toml")
	err = os.WriteFile(configPath, []byte(content), 0o600)
	require.NoError(t, err)

	return configPath
}

func TestLoad(t *testing.T) {
	resetArgs(t)

	configPath := writeConfigFile(t, `
condition = "permission_denied"
journal = true
database = "/path/to/faults.db"
log_level = "debug"
`)

	// Set environment variable to point to the test config file
	t.Setenv("FAULTCTL_CONFIG", configPath)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "permission_denied", cfg.Condition, "Expected Condition permission_denied")
	assert.True(t, cfg.Journal, "Expected Journal true")
	assert.Equal(t, "/path/to/faults.db", cfg.Database, "Expected Database /path/to/faults.db")
	assert.Equal(t, "debug", cfg.LogLevel, "Expected LogLevel debug")
}

func TestLoadDefaults(t *testing.T) {
	resetArgs(t)

	// Ensure no config file is used
	t.Setenv("FAULTCTL_CONFIG", "")

	cfg, err := config.Load()
	require.NoError(t, err, "Failed to load config")

	assert.Equal(t, config.DefaultCondition, cfg.Condition, "Expected default Condition not_supported")
	assert.False(t, cfg.Journal, "Expected default Journal false")
	assert.Equal(t, config.DefaultDatabase, cfg.Database, "Expected default Database path")
	assert.Equal(t, config.DefaultLogLevel, cfg.LogLevel, "Expected default LogLevel warning")
	assert.False(t, cfg.Debug, "Expected default Debug false")
	assert.False(t, cfg.Verbose, "Expected default Verbose false")
}

func TestLoadConfigFileInvalidFormat(t *testing.T) {
	resetArgs(t)

	configPath := writeConfigFile(t, `
This is not a valid TOML file
`)

	t.Setenv("FAULTCTL_CONFIG", configPath)

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to read configuration")
}

func TestInvalidLogLevel(t *testing.T) {
	resetArgs(t)

	configPath := writeConfigFile(t, `
log_level = "invalid"
`)

	t.Setenv("FAULTCTL_CONFIG", configPath)

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid_log_level")
}

func TestUnknownCondition(t *testing.T) {
	resetArgs(t)

	configPath := writeConfigFile(t, `
condition = "no_such_condition"
`)

	t.Setenv("FAULTCTL_CONFIG", configPath)

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "condition_unknown_name")
}

func TestConditionFlag(t *testing.T) {
	resetArgs(t, "--condition", "timed_out")
	t.Setenv("FAULTCTL_CONFIG", "")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "timed_out", cfg.Condition, "Expected Condition to be set by flag")
}

func TestLogLevelFlag(t *testing.T) {
	resetArgs(t, "--log-level", "debug")
	t.Setenv("FAULTCTL_CONFIG", "")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel, "Expected LogLevel to be set by flag")
}

func TestJournalFlags(t *testing.T) {
	resetArgs(t, "--journal", "--database", "/tmp/faults.db")
	t.Setenv("FAULTCTL_CONFIG", "")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.True(t, cfg.Journal, "Expected Journal to be enabled by flag")
	assert.Equal(t, "/tmp/faults.db", cfg.Database, "Expected Database to be set by flag")
}

func TestEnvOverride(t *testing.T) {
	resetArgs(t)
	t.Setenv("FAULTCTL_CONFIG", "")
	t.Setenv("FAULTCTL_LOG_LEVEL", "error")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel, "Expected LogLevel from environment")
}

func TestWithConfigFile(t *testing.T) {
	resetArgs(t)

	configPath := writeConfigFile(t, `
condition = "broken_pipe"
`)

	cfg, err := config.Load(config.WithConfigFile(configPath))
	require.NoError(t, err)
	assert.Equal(t, "broken_pipe", cfg.Condition, "Expected Condition from explicit config file")
}

func TestWithSearchPath(t *testing.T) {
	resetArgs(t)
	t.Setenv("FAULTCTL_CONFIG", "")

	configPath := writeConfigFile(t, `
condition = "io_error"
`)

	cfg, err := config.Load(config.WithSearchPath(filepath.Dir(configPath)))
	require.NoError(t, err)
	assert.Equal(t, "io_error", cfg.Condition, "Expected Condition from the search path file")
}

func TestWithSearchPathMissingFile(t *testing.T) {
	resetArgs(t)
	t.Setenv("FAULTCTL_CONFIG", "")

	cfg, err := config.Load(config.WithSearchPath(t.TempDir()))
	require.NoError(t, err, "Expected a missing file on the search path to be tolerated")
	assert.Equal(t, config.DefaultCondition, cfg.Condition, "Expected defaults")
}
