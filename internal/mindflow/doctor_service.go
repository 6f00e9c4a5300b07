package mindflow

import (
	"context"

	"github.com/colonyops/mindflow/internal/core/config"
	"github.com/colonyops/mindflow/internal/core/doctor"
	"github.com/colonyops/mindflow/internal/core/kv"
)

// DoctorService runs diagnostic checks against the configuration and the raw
// storage slot backing the item store.
type DoctorService struct {
	store kv.KV
	cfg   *config.Config
}

// NewDoctorService creates a new DoctorService.
func NewDoctorService(store kv.KV, cfg *config.Config) *DoctorService {
	return &DoctorService{store: store, cfg: cfg}
}

// RunChecks executes all diagnostic checks and returns their results.
func (s *DoctorService) RunChecks(ctx context.Context, configPath string) []doctor.Result {
	checks := []doctor.Check{
		doctor.NewConfigCheck(s.cfg, configPath),
		doctor.NewStorageCheck(s.store, s.cfg.Storage.Key),
	}
	return doctor.RunAll(ctx, checks)
}
