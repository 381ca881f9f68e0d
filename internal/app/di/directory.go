// Package di provides dependency injection factories for creating application components.
package di

import (
	"fmt"

	"gorm.io/gorm"

	"jitter_backend/internal/feature/directory/adapters"
	"jitter_backend/internal/feature/directory/usecase"
	"jitter_backend/internal/platform/config"
	"jitter_backend/internal/platform/db"
)

// MatchMode maps the case policy setting to the adapters' match mode.
func MatchMode(cfg config.Config) adapters.MatchMode {
	if cfg.SearchCaseInsensitive {
		return adapters.CaseInsensitive
	}
	return adapters.CaseSensitive
}

// NewUserRepository creates a UserRepository implementation for the configured driver.
// The memory driver is filled from the seed file; every other driver uses gormDB.
func NewUserRepository(cfg config.Config, gormDB *gorm.DB) (usecase.UserRepository, error) {
	mode := MatchMode(cfg)
	if cfg.DB.Driver == db.DriverMemory {
		users, err := adapters.LoadSeedFile(cfg.SeedFile)
		if err != nil {
			return nil, err
		}
		return adapters.NewUserMemory(users, mode), nil
	}
	if gormDB == nil {
		return nil, fmt.Errorf("driver %q requires a database connection", cfg.DB.Driver)
	}
	return adapters.NewUserGorm(gormDB, mode), nil
}
