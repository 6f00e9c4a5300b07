// Package mindflow wires the item lifecycle, query, and backup services
// around a single item.Store.
package mindflow

import (
	"github.com/colonyops/mindflow/internal/core/config"
	"github.com/colonyops/mindflow/internal/core/item"
	"github.com/colonyops/mindflow/internal/core/kv"
	"github.com/rs/zerolog"
)

// App is the central entry point for all mindflow operations.
// Commands consume App instead of cherry-picking raw dependencies.
type App struct {
	Items   *ItemService
	Library *LibraryService
	Backup  *BackupService
	Doctor  *DoctorService

	Config *config.Config
}

// NewApp constructs an App whose services share store. backend is the raw
// KV substrate behind store, inspected by the doctor checks.
func NewApp(store item.Store, backend kv.KV, cfg *config.Config, log zerolog.Logger) *App {
	return &App{
		Items:   NewItemService(store, log),
		Library: NewLibraryService(store),
		Backup:  NewBackupService(store, log),
		Doctor:  NewDoctorService(backend, cfg),
		Config:  cfg,
	}
}
