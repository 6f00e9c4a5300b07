package stores

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/colonyops/mindflow/internal/data/db"
	"github.com/rs/zerolog"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// IsBusyError returns true if the error is a SQLITE_BUSY error.
func IsBusyError(err error) bool {
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code() == sqlite3.SQLITE_BUSY
	}
	return false
}

// IsCorruptionError returns true if the error indicates database corruption.
func IsCorruptionError(err error) bool {
	if err == nil {
		return false
	}

	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		code := sqliteErr.Code()
		return code == sqlite3.SQLITE_CORRUPT ||
			code == sqlite3.SQLITE_NOTADB
	}

	errStr := err.Error()
	return strings.Contains(errStr, "database disk image is malformed") ||
		strings.Contains(errStr, "file is not a database")
}

// IsNotFoundError returns true if the error is a "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// OpenDatabase opens the SQLite database in dataDir. If the file is corrupt
// it is moved aside with RecoverFromCorruption and a fresh database is
// created; the stored items are lost but a backup file remains on disk.
func OpenDatabase(dataDir string, opts db.OpenOptions, log zerolog.Logger) (*db.DB, error) {
	database, err := db.Open(dataDir, opts)
	if err == nil {
		return database, nil
	}
	if !IsCorruptionError(err) {
		return nil, err
	}

	log.Error().Err(err).Str("data_dir", dataDir).Msg("database corrupt, moving it aside")
	if rerr := RecoverFromCorruption(dataDir); rerr != nil {
		return nil, fmt.Errorf("recover corrupt database: %w (original error: %w)", rerr, err)
	}

	return db.Open(dataDir, opts)
}

// RecoverFromCorruption renames the corrupt database file, and its WAL/SHM
// companions, to <name>.corrupt.<timestamp> so the next Open starts fresh.
func RecoverFromCorruption(dataDir string) error {
	dbPath := filepath.Join(dataDir, db.FileName)
	backupPath := filepath.Join(dataDir, fmt.Sprintf("%s.corrupt.%s", db.FileName, time.Now().Format("20060102-150405")))

	if err := os.Rename(dbPath, backupPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to backup corrupted database: %w", err)
	}

	// WAL/SHM files left behind would be replayed against the fresh database
	for _, suffix := range []string{"-wal", "-shm"} {
		path := dbPath + suffix
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := os.Rename(path, backupPath+suffix); err != nil {
			if delErr := os.Remove(path); delErr != nil {
				return fmt.Errorf("failed to backup or remove %s file: %w", suffix, err)
			}
		}
	}

	return nil
}
