package doctor

import (
	"context"
	"errors"

	"github.com/colonyops/mindflow/internal/core/config"
	"github.com/hay-kot/criterio"
)

// ConfigCheck runs deep validation of the loaded configuration.
type ConfigCheck struct {
	cfg        *config.Config
	configPath string
}

// NewConfigCheck creates a new config check.
func NewConfigCheck(cfg *config.Config, configPath string) *ConfigCheck {
	return &ConfigCheck{cfg: cfg, configPath: configPath}
}

func (c *ConfigCheck) Name() string {
	return "Configuration"
}

func (c *ConfigCheck) Run(_ context.Context) Result {
	result := Result{Name: c.Name()}

	err := c.cfg.ValidateDeep(c.configPath)
	if err == nil {
		result.Items = append(result.Items, pass("config", string(c.cfg.Storage.Backend)+" backend"))
		return result
	}

	var fieldErrs criterio.FieldErrors
	if !errors.As(err, &fieldErrs) {
		result.Items = append(result.Items, fail("config", err.Error()))
		return result
	}

	for _, fe := range fieldErrs {
		result.Items = append(result.Items, fail(fe.Field, fe.Err.Error()))
	}
	return result
}
