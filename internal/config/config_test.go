package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestConfigLoaderLoad(t *testing.T) {
	t.Run("defaults without a config file", func(t *testing.T) {
		loader, err := NewConfigLoader("")
		require.NoError(t, err)

		cfg, err := loader.Load()
		require.NoError(t, err)

		assert.Equal(t, "yaml", cfg.Records.Store)
		assert.Equal(t, filepath.Join("records", "wrong_answers.yml"), cfg.Records.YamlFile)
		assert.Equal(t, "reports", cfg.Outputs.ReportDirectory)
		assert.Equal(t, float64(1), cfg.Review.HoursPerDay)
		assert.Equal(t, 30, cfg.Review.DaysAvailable)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 3306, cfg.Database.Port)
		assert.Equal(t, 8080, cfg.Server.Port)
		assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.CORS.AllowedOrigins)
		assert.Equal(t, "http://localhost:8080", cfg.Client.BaseURL)
		assert.Equal(t, uint(2), cfg.Client.MaxRetryAttempts)
	})

	t.Run("values from a config file", func(t *testing.T) {
		path := writeConfigFile(t, `
records:
  store: mysql
review:
  hours_per_day: 2.5
  days_available: 14
server:
  port: 9000
  cors:
    allowed_origins:
      - https://wrongbook.example.com
`)
		loader, err := NewConfigLoader(path)
		require.NoError(t, err)

		cfg, err := loader.Load()
		require.NoError(t, err)

		assert.Equal(t, "mysql", cfg.Records.Store)
		assert.Equal(t, 2.5, cfg.Review.HoursPerDay)
		assert.Equal(t, 14, cfg.Review.DaysAvailable)
		assert.Equal(t, 9000, cfg.Server.Port)
		assert.Equal(t, []string{"https://wrongbook.example.com"}, cfg.Server.CORS.AllowedOrigins)
		// Defaults still fill the unspecified fields.
		assert.Equal(t, "reports", cfg.Outputs.ReportDirectory)
	})

	t.Run("database password comes from the environment", func(t *testing.T) {
		t.Setenv("DB_PASSWORD", "secret")

		loader, err := NewConfigLoader(writeConfigFile(t, "records:\n  store: yaml\n"))
		require.NoError(t, err)

		cfg, err := loader.Load()
		require.NoError(t, err)
		assert.Equal(t, "secret", cfg.Database.Password)
	})

	t.Run("unknown record store is rejected", func(t *testing.T) {
		loader, err := NewConfigLoader(writeConfigFile(t, "records:\n  store: redis\n"))
		require.NoError(t, err)

		_, err = loader.Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid configuration")
		assert.Contains(t, err.Error(), "store")
	})

	t.Run("negative review hours are rejected", func(t *testing.T) {
		loader, err := NewConfigLoader(writeConfigFile(t, "review:\n  hours_per_day: -1\n"))
		require.NoError(t, err)

		_, err = loader.Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "hours_per_day")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		loader, err := NewConfigLoader(writeConfigFile(t, "records: [unclosed"))
		require.NoError(t, err)

		_, err = loader.Load()
		assert.Error(t, err)
	})
}
