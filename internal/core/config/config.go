// Package config handles configuration loading and validation for mindflow.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/colonyops/mindflow/internal/core/styles"
	"gopkg.in/yaml.v3"
)

// Backend selects the key-value substrate the item collection lives in.
type Backend string

// Supported storage backends.
const (
	BackendSQLite   Backend = "sqlite"
	BackendJSONFile Backend = "jsonfile"
	BackendRedis    Backend = "redis"
	BackendMemory   Backend = "memory"
)

// IsValid reports whether b is a supported backend.
func (b Backend) IsValid() bool {
	switch b {
	case BackendSQLite, BackendJSONFile, BackendRedis, BackendMemory:
		return true
	default:
		return false
	}
}

const (
	// DefaultStorageKey is the KV slot holding the serialized collection.
	DefaultStorageKey = "@mindflow_data"
	// DefaultStorageFile is the document name used by the jsonfile backend.
	DefaultStorageFile = "mindflow.json"
)

// Config holds the application configuration.
type Config struct {
	Storage  StorageConfig  `yaml:"storage"`
	Database DatabaseConfig `yaml:"database"`
	Backup   BackupConfig   `yaml:"backup"`
	Timezone string         `yaml:"timezone"` // IANA name used for day grouping; empty = local
	Theme    string         `yaml:"theme"`    // output color theme
	DataDir  string         `yaml:"-"`        // set by caller, not from config file
}

// StorageConfig selects and addresses the KV substrate.
type StorageConfig struct {
	Backend     Backend `yaml:"backend"`
	Key         string  `yaml:"key"`          // slot holding the item collection
	File        string  `yaml:"file"`         // jsonfile document path; empty = <data_dir>/mindflow.json
	RedisURL    string  `yaml:"redis_url"`    // required for the redis backend
	RedisPrefix string  `yaml:"redis_prefix"` // namespace for keys in a shared database
}

// DatabaseConfig holds SQLite connection pool settings.
type DatabaseConfig struct {
	MaxOpenConns int `yaml:"max_open_conns"`
	MaxIdleConns int `yaml:"max_idle_conns"`
	BusyTimeout  int `yaml:"busy_timeout"` // milliseconds
}

// BackupConfig controls where exports are written.
type BackupConfig struct {
	Dir string `yaml:"dir"` // default export directory; empty = current directory
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Storage: StorageConfig{
			Backend: BackendSQLite,
			Key:     DefaultStorageKey,
		},
		Database: DatabaseConfig{
			MaxOpenConns: 4,
			MaxIdleConns: 2,
			BusyTimeout:  5000,
		},
		Theme: styles.DefaultTheme,
	}
}

// Load reads configuration from the given path and sets the data directory.
// If configPath is empty or doesn't exist, returns defaults with the provided dataDir.
func Load(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.DataDir = dataDir

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}

			// Re-set dataDir since Unmarshal may have cleared it
			cfg.DataDir = dataDir
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Storage.Backend == "" {
		c.Storage.Backend = defaults.Storage.Backend
	}
	if c.Storage.Key == "" {
		c.Storage.Key = defaults.Storage.Key
	}
	if c.Theme == "" {
		c.Theme = defaults.Theme
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = defaults.Database.MaxOpenConns
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = defaults.Database.MaxIdleConns
	}
	if c.Database.BusyTimeout == 0 {
		c.Database.BusyTimeout = defaults.Database.BusyTimeout
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data directory cannot be empty")
	}

	if !c.Storage.Backend.IsValid() {
		return fmt.Errorf("storage.backend %q is not one of sqlite, jsonfile, redis, memory", c.Storage.Backend)
	}

	if c.Storage.Key == "" {
		return fmt.Errorf("storage.key cannot be empty")
	}

	if c.Storage.Backend == BackendRedis && c.Storage.RedisURL == "" {
		return fmt.Errorf("storage.redis_url is required for the redis backend")
	}

	if _, ok := styles.GetPalette(c.Theme); !ok {
		return fmt.Errorf("theme %q is not one of %s", c.Theme, strings.Join(styles.ThemeNames(), ", "))
	}

	if c.Database.MaxOpenConns < 1 {
		return fmt.Errorf("database.max_open_conns must be at least 1")
	}

	if c.Database.MaxIdleConns < 0 {
		return fmt.Errorf("database.max_idle_conns cannot be negative")
	}

	if c.Database.BusyTimeout < 0 {
		return fmt.Errorf("database.busy_timeout cannot be negative")
	}

	return nil
}

// StorageFile returns the document path for the jsonfile backend.
func (c *Config) StorageFile() string {
	if c.Storage.File != "" {
		return c.Storage.File
	}
	return filepath.Join(c.DataDir, DefaultStorageFile)
}

// BackupDir returns the directory exports default to.
func (c *Config) BackupDir() string {
	if c.Backup.Dir != "" {
		return c.Backup.Dir
	}
	return "."
}

// Location returns the time zone used to group items by day.
// An empty or unknown timezone falls back to the local zone.
func (c *Config) Location() *time.Location {
	if c.Timezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}
