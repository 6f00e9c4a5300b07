package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/hay-kot/criterio"
)

// ValidateDeep performs comprehensive validation of the configuration including
// file accessibility, the redis URL, and the timezone name. The configPath
// argument specifies the config file location to validate (empty string skips
// config file check). This calls Validate() first for basic structural
// validation, then adds I/O checks.
func (c *Config) ValidateDeep(configPath string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	return criterio.ValidateStruct(
		c.validateFileAccess(configPath),
		c.validateStorage(),
		criterio.Run("timezone", c.Timezone, isTimezone),
	)
}

// validateFileAccess checks config file, data directory, and backup directory.
func (c *Config) validateFileAccess(configPath string) error {
	return criterio.ValidateStruct(
		validateConfigFile(configPath),
		criterio.Run("data_dir", c.DataDir, isDirectoryOrNotExist),
		criterio.Run("backup.dir", c.Backup.Dir, isDirectoryOrNotExist),
	)
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

// validateStorage checks the settings of the selected backend only.
func (c *Config) validateStorage() error {
	var errs criterio.FieldErrorsBuilder

	switch c.Storage.Backend {
	case BackendJSONFile:
		path := c.StorageFile()
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			errs = errs.Append("storage.file", fmt.Errorf("%s is a directory, not a file", path))
		}
		if err := isDirectoryOrNotExist(filepath.Dir(path)); err != nil {
			errs = errs.Append("storage.file", fmt.Errorf("parent %w", err))
		}
	case BackendRedis:
		if err := isRedisURL(c.Storage.RedisURL); err != nil {
			errs = errs.Append("storage.redis_url", err)
		}
	}

	return errs.ToError()
}

// isDirectoryOrNotExist validates that a path is a directory or doesn't exist.
func isDirectoryOrNotExist(path string) error {
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil // will be created
	}
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("exists but is not a directory")
	}
	return nil
}

func isRedisURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	if u.Scheme != "redis" && u.Scheme != "rediss" && u.Scheme != "unix" {
		return fmt.Errorf("unsupported scheme %q (want redis, rediss or unix)", u.Scheme)
	}
	if u.Scheme != "unix" && u.Host == "" {
		return fmt.Errorf("missing host")
	}
	return nil
}

func isTimezone(name string) error {
	if name == "" {
		return nil
	}
	if _, err := time.LoadLocation(name); err != nil {
		return fmt.Errorf("unknown timezone %q", name)
	}
	return nil
}
