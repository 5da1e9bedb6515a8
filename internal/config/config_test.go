package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_FromFile(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[database]
host = "db.internal"
dbname = "bookings"
max_open_conns = 50

[logs]
level = "debug"

[metrics]
enabled = true
path = "/internal/metrics"

[pagination]
default_page_size = 20
max_page_size = 200
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Server.ReadTimeout)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, 50, cfg.Database.MaxOpenConns)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/internal/metrics", cfg.Metrics.Path)
	assert.Equal(t, 20, cfg.Pagination.DefaultPageSize)
	assert.Equal(t, 200, cfg.Pagination.MaxPageSize)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)

	assert.Equal(t, Default(), *cfg)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
[database]
host = "from-file"
password = "file-secret"
`)
	t.Setenv("BOOKME_DATABASE_HOST", "from-env")
	t.Setenv("BOOKME_DATABASE_PASSWORD", "env-secret")
	t.Setenv("BOOKME_DATABASE_DBNAME", "env_db")
	t.Setenv("BOOKME_SERVER_HTTP_PORT", "8181")
	t.Setenv("BOOKME_PAGINATION_MAX_PAGE_SIZE", "50")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Database.Host)
	assert.Equal(t, "env-secret", cfg.Database.Password)
	assert.Equal(t, "env_db", cfg.Database.DBName)
	assert.Equal(t, 8181, cfg.Server.HTTPPort)
	assert.Equal(t, 50, cfg.Pagination.MaxPageSize)
}

func TestLoad_InvalidEnv(t *testing.T) {
	t.Setenv("BOOKME_SERVER_HTTP_PORT", "not-a-number")

	_, err := Load("")
	assert.ErrorIs(t, err, ErrEnvOverride)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := writeConfig(t, "[server\nhttp_port = ")

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrReadConfig)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(c *Config)
	}{
		{name: "port", mutate: func(c *Config) { c.Server.HTTPPort = 0 }},
		{name: "host", mutate: func(c *Config) { c.Database.Host = "" }},
		{name: "dbname", mutate: func(c *Config) { c.Database.DBName = "" }},
		{name: "max page size", mutate: func(c *Config) { c.Pagination.MaxPageSize = 0 }},
		{name: "default above max", mutate: func(c *Config) { c.Pagination.DefaultPageSize = 101 }},
		{name: "metrics path", mutate: func(c *Config) {
			c.Metrics.Enabled = true
			c.Metrics.Path = ""
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}

	cfg := Default()
	assert.NoError(t, cfg.Validate())
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{Host: "h", Port: 1, User: "u", Password: "p", DBName: "d", SSLMode: "disable"}
	assert.Equal(t, "host=h port=1 user=u password=p dbname=d sslmode=disable", d.DSN())
}
