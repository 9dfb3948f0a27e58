package main

import (
	"github.com/polsala/Depths-of-the-Fractured-Mind-sub000/internal/config"
	"github.com/polsala/Depths-of-the-Fractured-Mind-sub000/internal/logging"
	"github.com/polsala/Depths-of-the-Fractured-Mind-sub000/internal/storage"
)

func loadConfigOrExit(path string) *config.LoadedConfig {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		logging.Fatal("Invalid configuration", err, logging.Fields{"config_path": path})
	}
	return cfg
}

func createRepositoryOrExit(dbPath string) storage.Repository {
	db, err := storage.OpenAndMigrate(dbPath)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, nil)
	}
	return storage.NewSQLiteRepository(db)
}
