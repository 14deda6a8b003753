package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir()) // no config.toml present

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "hotelctl", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "hotel.db", cfg.Database.Path)
	assert.Equal(t, 5000, cfg.Database.BusyTimeoutMS)
	assert.Equal(t, "delete", cfg.Database.JournalMode)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "stderr", cfg.Log.Output)
}

func TestLoadEnvOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOTEL_DATABASE_PATH", "/tmp/test-hotel.db")
	t.Setenv("HOTEL_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/test-hotel.db", cfg.Database.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestDSN(t *testing.T) {
	d := DatabaseConfig{Path: "hotel.db", BusyTimeoutMS: 5000, JournalMode: "delete"}
	assert.Equal(t,
		"file:hotel.db?_foreign_keys=on&_busy_timeout=5000&_journal_mode=delete",
		d.DSN())

	d.ForeignKeysOff = true
	assert.Contains(t, d.DSN(), "_foreign_keys=off")
}

func TestMigrateURL(t *testing.T) {
	d := DatabaseConfig{Path: "hotel.db"}
	assert.Equal(t, "sqlite3://hotel.db", d.MigrateURL())
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)
	require.NoError(t, cfg.validate())

	cfg.Log.Format = "xml"
	require.Error(t, cfg.validate())

	cfg = &Config{}
	applyDefaults(cfg)
	cfg.Database.BusyTimeoutMS = -1
	require.Error(t, cfg.validate())
}
