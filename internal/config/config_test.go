package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"input": "runs/shade_hard.json",
		"format": "json",
		"out": "reports/shade.json",
		"extended": true,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "runs/shade_hard.json", cfg.Input)
	assert.Equal(t, FormatJSON, cfg.Format)
	assert.Equal(t, "reports/shade.json", cfg.Out)
	assert.True(t, cfg.Extended)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_YAML(t *testing.T) {
	content := "input: runs/bran_easy.json\nformat: text\nextended: true\n"

	tmpFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(tmpFile, []byte(content), 0644))

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)

	assert.Equal(t, "runs/bran_easy.json", cfg.Input)
	assert.Equal(t, FormatText, cfg.Format)
	assert.True(t, cfg.Extended)
	assert.False(t, cfg.Verbose)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(tmpFile, []byte("input: [unclosed\n"), 0644))

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config YAML")
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(`{ invalid json }`), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate_UnknownFormat(t *testing.T) {
	cfg := &Config{Format: "xml"}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Format")
}

func TestValidate_OutOverwritesInput(t *testing.T) {
	cfg := &Config{Input: "run.json", Out: "run.json"}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "must not overwrite")
}

func TestValidate_ValidConfig(t *testing.T) {
	for _, cfg := range []*Config{
		{},
		{Format: FormatText},
		{Format: FormatJSON, Input: "run.json", Out: "summary.json"},
	} {
		assert.NoError(t, cfg.Validate())
	}
}

func TestMergeWithDefaults(t *testing.T) {
	partial := Config{
		Format:   FormatJSON,
		Extended: true,
	}

	merged := partial.MergeWithDefaults(Defaults())

	assert.Equal(t, FormatJSON, merged.Format)
	assert.True(t, merged.Extended)
	assert.Equal(t, DefaultInput, merged.Input)
	assert.Empty(t, merged.Out)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{Input: "run.json"}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, "run.json", merged.Input)
	assert.Empty(t, merged.Format)
}

func TestInputFromEnv(t *testing.T) {
	t.Setenv(InputEnvVar, "env_run.json")
	assert.Equal(t, "env_run.json", InputFromEnv())

	t.Setenv(InputEnvVar, "")
	assert.Empty(t, InputFromEnv())
}
