package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Log      LogConfig
}

// AppConfig holds application-specific settings
type AppConfig struct {
	Name string
	Env  string
}

// DatabaseConfig holds the SQLite store settings
type DatabaseConfig struct {
	Path           string // path to the database file
	BusyTimeoutMS  int    // sqlite busy timeout in milliseconds
	JournalMode    string // sqlite journal mode (delete, wal, ...)
	ForeignKeysOff bool   // disable foreign key enforcement (debugging only)
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// Load loads configuration from an optional TOML file and environment
// variables. Priority (highest to lowest):
// 1. Environment variables with HOTEL_ prefix (e.g. HOTEL_DATABASE_PATH)
// 2. config.toml in the working directory
// 3. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// No config file is fine, defaults and env vars apply
	}

	v.SetEnvPrefix("HOTEL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
			Env:  v.GetString("app.env"),
		},
		Database: DatabaseConfig{
			Path:           v.GetString("database.path"),
			BusyTimeoutMS:  v.GetInt("database.busy_timeout_ms"),
			JournalMode:    v.GetString("database.journal_mode"),
			ForeignKeysOff: v.GetBool("database.foreign_keys_off"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
	}

	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults sets default values for any empty config fields
func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "hotelctl"
	}
	if cfg.App.Env == "" {
		cfg.App.Env = "development"
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = "hotel.db"
	}
	if cfg.Database.BusyTimeoutMS == 0 {
		cfg.Database.BusyTimeoutMS = 5000
	}
	if cfg.Database.JournalMode == "" {
		cfg.Database.JournalMode = "delete"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "warn"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
	if cfg.Log.Output == "" {
		cfg.Log.Output = "stderr"
	}
}

// validate performs validation on the configuration
func (c *Config) validate() error {
	if c.Database.Path == "" {
		return fmt.Errorf("database.path cannot be empty")
	}
	if c.Database.BusyTimeoutMS < 0 {
		return fmt.Errorf("database.busy_timeout_ms cannot be negative")
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("log.format must be json or console, got %q", c.Log.Format)
	}
	return nil
}

// DSN returns the SQLite connection string for the configured store
func (d *DatabaseConfig) DSN() string {
	fk := "on"
	if d.ForeignKeysOff {
		fk = "off"
	}
	return fmt.Sprintf("file:%s?_foreign_keys=%s&_busy_timeout=%d&_journal_mode=%s",
		d.Path, fk, d.BusyTimeoutMS, d.JournalMode)
}

// MigrateURL returns the database URL used by the migration tooling
func (d *DatabaseConfig) MigrateURL() string {
	return "sqlite3://" + d.Path
}
