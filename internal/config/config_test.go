package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", "testdata/does-not-exist.toml")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.App.Port)
	assert.Equal(t, "exercise-tracker", cfg.App.Name)
	assert.Equal(t, "0.0.0.0:3000", cfg.HTTPAddr())
	assert.Equal(t, "tracker.event.persist", cfg.RabbitMQ.EventQueue)
	assert.Equal(t, 60, cfg.Redis.LogTTLSeconds)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("CONFIG_FILE", "testdata/does-not-exist.toml")
	t.Setenv("PORT", "8080")
	t.Setenv("MYSQL_HOST", "db.internal")
	t.Setenv("MYSQL_DB", "tracker_test")
	t.Setenv("REDIS_ADDR", "cache.internal:6380")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, "cache.internal:6380", cfg.Redis.Addr)
	assert.Contains(t, cfg.MySQLDSN(), "tcp(db.internal:3306)")
	assert.Contains(t, cfg.MySQLDSN(), "/tracker_test?")
}

func TestLoadBadPortFallsBack(t *testing.T) {
	t.Setenv("CONFIG_FILE", "testdata/does-not-exist.toml")
	t.Setenv("PORT", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 3000, cfg.App.Port)
}
