package main

import (
	"fmt"

	"github.com/wrongbook-app/wrongbook/internal/config"
	"github.com/wrongbook-app/wrongbook/internal/database"
	"github.com/wrongbook-app/wrongbook/internal/record"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}

// newRepository opens the configured record store. The returned closer is a
// no-op for the file-backed store.
func newRepository(cfg *config.Config) (record.Repository, func() error, error) {
	switch cfg.Records.Store {
	case "mysql":
		db, err := database.Open(cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("database.Open() > %w", err)
		}
		return record.NewDBRepository(db), db.Close, nil
	default:
		return record.NewYamlRepository(cfg.Records.YamlFile), func() error { return nil }, nil
	}
}
