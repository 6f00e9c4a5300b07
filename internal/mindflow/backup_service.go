package mindflow

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/colonyops/mindflow/internal/core/item"
	"github.com/colonyops/mindflow/internal/core/logging"
	"github.com/rs/zerolog"
)

// BackupService exports and imports the whole collection as a JSON array.
type BackupService struct {
	store item.Store
	log   zerolog.Logger
}

// NewBackupService creates a new BackupService.
func NewBackupService(store item.Store, log zerolog.Logger) *BackupService {
	return &BackupService{
		store: store,
		log:   logging.Scoped(log, "backup-service"),
	}
}

// Export renders the current collection, two-space indented.
func (s *BackupService) Export(ctx context.Context) (string, error) {
	items, err := s.store.LoadAll(ctx)
	if err != nil {
		return "", err
	}
	return item.Encode(items)
}

// ExportFile writes an export to path and returns the file written. An
// empty path or an existing directory receives item.BackupFileName.
func (s *BackupService) ExportFile(ctx context.Context, path string) (string, error) {
	if path == "" {
		path = "."
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, item.BackupFileName)
	}

	payload, err := s.Export(ctx)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create backup directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		return "", fmt.Errorf("write backup: %w", err)
	}

	s.log.Info().Ctx(logging.WithOperation(ctx, "export")).Str("path", path).Msg("backup written")
	return path, nil
}

// Import replaces the whole collection with the items in payload. A payload
// that is not a JSON array of item objects fails with item.ErrMalformed and
// leaves storage untouched. Items are not merged or deduplicated.
func (s *BackupService) Import(ctx context.Context, payload string) error {
	ctx = logging.WithOperation(ctx, "import")

	items, err := item.Decode([]byte(payload))
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}

	for _, it := range items {
		if !it.Type.IsValid() || !it.Status.IsValid() {
			s.log.Warn().Ctx(logging.WithItemID(ctx, it.ID)).
				Str("type", string(it.Type)).
				Str("status", string(it.Status)).
				Msg("imported item has unknown type or status")
		}
	}

	if err := s.store.SaveAll(ctx, items); err != nil {
		return fmt.Errorf("import: %w", err)
	}

	s.log.Info().Ctx(ctx).Int("count", len(items)).Msg("backup imported")
	return nil
}

// ClearAll removes the stored collection.
func (s *BackupService) ClearAll(ctx context.Context) error {
	if err := s.store.Clear(logging.WithOperation(ctx, "clear")); err != nil {
		return fmt.Errorf("clear items: %w", err)
	}
	return nil
}
