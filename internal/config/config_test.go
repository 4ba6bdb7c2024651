package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "gemini-2.5-flash", cfg.Gemini.Model)
	assert.Equal(t, "gemini-2.0-flash-preview-image-generation", cfg.Gemini.ImageModel)
	assert.Equal(t, uint(3), cfg.Gemini.RetryAttempts)
	assert.Equal(t, "exports", cfg.Outputs.ExportDirectory)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("GEMINI_MODEL", "gemini-2.5-pro")
	t.Setenv("LEARNCONQUER_OWNER_EMAIL", "owner@example.com")
	t.Setenv("LEARNCONQUER_ADMIN_SECRET", "hunter2")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "test-key", cfg.Gemini.APIKey)
	assert.Equal(t, "gemini-2.5-pro", cfg.Gemini.Model)
	assert.Equal(t, "owner@example.com", cfg.Admin.OwnerEmail)
	assert.Equal(t, "hunter2", cfg.Admin.Secret)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	content := `
gemini:
  model: gemini-custom
  retry_attempts: 5
outputs:
  export_directory: /tmp/study-exports
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o644))

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, "gemini-custom", cfg.Gemini.Model)
	assert.Equal(t, uint(5), cfg.Gemini.RetryAttempts)
	assert.Equal(t, "/tmp/study-exports", cfg.Outputs.ExportDirectory)
}

func TestLoad_ValidationFailure(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	content := `
admin:
  owner_email: not-an-email
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o644))

	_, err := Load(configPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "owner_email")
}
