package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validConfigYAML = `
app:
  name: f1-demo
  environment: development
  log_level: debug
database:
  host: localhost
  port: 5432
  name: f1demo
  user: f1demo
  password: ${F1_DEMO_TEST_DB_PASSWORD}
  ssl_mode: disable
  max_connections: 10
  max_idle_connections: 2
server:
  port: 8080
  health_port: 8081
  read_timeout_seconds: 10
  write_timeout_seconds: 15
  rate_limit_per_second: 20
  rate_limit_burst: 40
standings:
  cache_ttl_seconds: 60
  refresh_cron: "@every 5m"
metrics:
  enabled: true
  path: /metrics
`

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadExpandsEnvironmentPlaceholders(t *testing.T) {
	t.Setenv("F1_DEMO_TEST_DB_PASSWORD", "expanded_secret_value")

	cfg, err := Load(writeConfigFile(t, validConfigYAML))
	require.NoError(t, err)

	assert.Equal(t, "f1-demo", cfg.App.Name)
	assert.Equal(t, "expanded_secret_value", cfg.Database.Password)
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	assert.Error(t, err)
}

func TestLoadWithDefaultsWithoutFile(t *testing.T) {
	cfg, err := LoadWithDefaults(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "@every 5m", cfg.Standings.RefreshCron)
	require.NoError(t, Validate(cfg), "defaults must validate")
}

func TestValidateRejectsBadEnvironment(t *testing.T) {
	t.Setenv("F1_DEMO_TEST_DB_PASSWORD", "pw")

	cfg, err := Load(writeConfigFile(t, validConfigYAML))
	require.NoError(t, err)

	cfg.App.Environment = "invalid"
	assert.Error(t, Validate(cfg))
}

func TestValidateCrossField(t *testing.T) {
	t.Setenv("F1_DEMO_TEST_DB_PASSWORD", "pw")

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{
			name:   "idle connections exceed max",
			mutate: func(c *Config) { c.Database.MaxIdleConnections = 50 },
		},
		{
			name:   "health port collides with API port",
			mutate: func(c *Config) { c.Server.HealthPort = c.Server.Port },
		},
		{
			name:   "bad refresh cron",
			mutate: func(c *Config) { c.Standings.RefreshCron = "not a cron" },
		},
		{
			name: "production without SSL",
			mutate: func(c *Config) {
				c.App.Environment = "production"
				c.Database.SSLMode = "disable"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeConfigFile(t, validConfigYAML))
			require.NoError(t, err)
			require.NoError(t, Validate(cfg))

			tt.mutate(cfg)
			assert.Error(t, Validate(cfg))
		})
	}
}

func TestGetDatabaseDSN(t *testing.T) {
	t.Setenv("F1_DEMO_TEST_DB_PASSWORD", "pw")

	cfg, err := Load(writeConfigFile(t, validConfigYAML))
	require.NoError(t, err)

	assert.Equal(t, "postgres://f1demo:pw@localhost:5432/f1demo?sslmode=disable", cfg.GetDatabaseDSN())
}

func TestSecretsOverlay(t *testing.T) {
	cfg := &Config{}
	overlaySecretsOnConfig(cfg, &SecretsOverlay{DatabasePassword: "from-aws"})
	assert.Equal(t, "from-aws", cfg.Database.Password)

	overlaySecretsOnConfig(cfg, &SecretsOverlay{})
	assert.Equal(t, "from-aws", cfg.Database.Password, "empty overlay leaves existing values")
}
