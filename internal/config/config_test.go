package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ganeshdatta23/skillstacker"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
}

// chdir replicates testing.T.Chdir, which needs Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir()) // keep a developer's local config.yaml out of the test

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, skillstacker.DefaultBaseURL, cfg.API.URL)
	assert.Equal(t, skillstacker.DefaultTimeout, cfg.API.Timeout)
}

func TestLoad_EnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("SKILLSTACKER_API_URL", "https://staging.example.com/api/v1")
	t.Setenv("SKILLSTACKER_API_TIMEOUT", "30s")
	t.Setenv("SKILLSTACKER_SESSION_FILE", "/tmp/skillstacker-test-session.json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://staging.example.com/api/v1", cfg.API.URL)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.Equal(t, "/tmp/skillstacker-test-session.json", cfg.Session.File)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	writeFile(t, dir+"/config.yaml", `
api:
  url: https://file.example.com/api/v1
  timeout: 15s
session:
  file: ""
`)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://file.example.com/api/v1", cfg.API.URL)
	assert.Equal(t, 15*time.Second, cfg.API.Timeout)
	assert.Empty(t, cfg.Session.File)
}

func TestLoad_EnvBeatsFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	writeFile(t, dir+"/config.yaml", `
api:
  url: https://file.example.com/api/v1
`)
	t.Setenv("SKILLSTACKER_API_URL", "https://env.example.com/api/v1")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://env.example.com/api/v1", cfg.API.URL)
}
