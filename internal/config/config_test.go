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
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[database]
host = "db.local"
port = 5432
user = "svc"
password = "secret"
dbname = "salon_booking"

[schedule]
work_day_start = "10:00"
work_day_end = "20:00"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "db.local", cfg.Database.Host)
	assert.Equal(t, "10:00", cfg.Schedule.WorkDayStart)

	// Дефолты применяются к незаполненным секциям
	assert.Equal(t, 15, cfg.Server.ReadTimeout)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestLoad_DSN(t *testing.T) {
	path := writeConfig(t, `
[database]
host = "db.local"
port = 5432
user = "svc"
password = "secret"
dbname = "salon_booking"
sslmode = "require"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t,
		"host=db.local port=5432 user=svc password=secret dbname=salon_booking sslmode=require",
		cfg.Database.DSN())
}

func TestLoad_MissingRequired(t *testing.T) {
	path := writeConfig(t, `
[database]
host = "db.local"
`)

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}
