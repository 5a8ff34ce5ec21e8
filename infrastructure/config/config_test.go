package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks the variables LoadConfig reads so ambient values from
// the test environment cannot leak into the assertions.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"ENVIRONMENT", "LOG_LEVEL", "ICD11_CONFIG_FILE",
		"ICD11_INPUT_PATH", "ICD11_FORMATTED_PATH", "ICD11_HIERARCHY_PATH",
		"SERVER_ADDRESS", "ENABLE_METRICS", "ENABLE_CORS", "WATCH_HIERARCHY",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "./data/ICD11.json", cfg.Pipeline.InputPath)
	assert.Equal(t, "./data/FormattedICD11.json", cfg.Pipeline.FormattedPath)
	assert.Equal(t, "./data/ICD11_Hierarchy.json", cfg.Pipeline.HierarchyPath)
	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.True(t, cfg.Server.WatchHierarchy)
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("ICD11_INPUT_PATH", "/srv/dump.json")
	t.Setenv("SERVER_ADDRESS", ":9090")
	t.Setenv("ENABLE_METRICS", "false")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "/srv/dump.json", cfg.Pipeline.InputPath)
	assert.Equal(t, ":9090", cfg.Server.Address)
	assert.False(t, cfg.Server.EnableMetrics)
}

func TestLoadConfigYAMLFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
environment: staging
pipeline:
  inputPath: /data/in.json
server:
  address: ":7070"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	t.Setenv("ICD11_CONFIG_FILE", path)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "staging", cfg.Environment)
	assert.Equal(t, "/data/in.json", cfg.Pipeline.InputPath)
	assert.Equal(t, ":7070", cfg.Server.Address)
	// untouched values keep their defaults
	assert.Equal(t, "./data/ICD11_Hierarchy.json", cfg.Pipeline.HierarchyPath)
}

func TestEnvBeatsFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`server: {address: ":7070"}`), 0644))
	t.Setenv("ICD11_CONFIG_FILE", path)
	t.Setenv("SERVER_ADDRESS", ":6060")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, ":6060", cfg.Server.Address)
}

func TestLoadConfigMissingFileFails(t *testing.T) {
	clearEnv(t)
	t.Setenv("ICD11_CONFIG_FILE", filepath.Join(t.TempDir(), "absent.yaml"))

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := defaultConfig()
	require.NoError(t, cfg.Validate())

	cfg.Pipeline.InputPath = ""
	assert.Error(t, cfg.Validate())
}
