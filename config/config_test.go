package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/etnz/advisor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, advisor.DefaultPathLimits, cfg.PathLimits())
	assert.Equal(t, advisor.DefaultDisplayPaths, cfg.Simulation.DisplayPaths)
	assert.Equal(t, 30*time.Second, cfg.Market.BreakerTimeout)
	assert.Equal(t, "https://api.frankfurter.app", cfg.FX.BaseURL)
	assert.Equal(t, Default().Assistant.Model, cfg.Assistant.Model)
}

func TestLoad_File(t *testing.T) {
	t.Chdir(t.TempDir())
	path := writeFile(t, t.TempDir(), "adv.yaml", `
currency: EUR
profile: me.yaml
log:
  level: debug
  pretty: true
simulation:
  max_paths: 5000
  seed: 42
market:
  breaker_timeout: 1m
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "EUR", cfg.Currency)
	assert.Equal(t, "me.yaml", cfg.Profile)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Pretty)
	assert.Equal(t, advisor.PathLimits{Min: 100, Max: 5000}, cfg.PathLimits())
	assert.Equal(t, uint64(42), cfg.Simulation.Seed)
	assert.Equal(t, time.Minute, cfg.Market.BreakerTimeout)
}

func TestLoad_Env(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeFile(t, dir, ".env", "ADV_ASSISTANT_API_KEY=from-dotenv\n")
	path := writeFile(t, dir, "adv.yaml", "currency: EUR\n")
	t.Setenv("ADV_CURRENCY", "CAD")
	t.Setenv("ADV_SEED", "7")
	t.Setenv("ADV_LOG_PRETTY", "true")
	t.Setenv("GEMINI_API_KEY", "")
	// .env never overrides a variable that is already set.
	t.Setenv("ADV_ASSISTANT_API_KEY", "")
	os.Unsetenv("ADV_ASSISTANT_API_KEY")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "CAD", cfg.Currency)
	assert.Equal(t, uint64(7), cfg.Simulation.Seed)
	assert.True(t, cfg.Log.Pretty)
	assert.Equal(t, "from-dotenv", cfg.Assistant.APIKey)
}

func TestLoad_Errors(t *testing.T) {
	t.Chdir(t.TempDir())
	dir := t.TempDir()
	testCases := []struct {
		name    string
		content string
		env     map[string]string
	}{
		{name: "bad yaml", content: "log: [unclosed"},
		{name: "bad currency", content: "currency: EURO"},
		{name: "bad level", content: "log:\n  level: loud"},
		{name: "empty path range", content: "simulation:\n  min_paths: 500\n  max_paths: 200"},
		{name: "bad seed", env: map[string]string{"ADV_SEED": "-1"}},
		{name: "bad pretty", env: map[string]string{"ADV_LOG_PRETTY": "maybe"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			path := writeFile(t, dir, "adv.yaml", tc.content)
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}
