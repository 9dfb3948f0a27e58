package storage

import (
	"github.com/polsala/Depths-of-the-Fractured-Mind-sub000/internal/game"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// OpenAndMigrate opens the SQLite database and keeps the schema current
// via AutoMigrate. Profiles and run records are append-mostly tables; no
// destructive migration ever runs at startup.
func OpenAndMigrate(dataSourceName string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&game.PlayerProfile{}, &game.RunRecord{}); err != nil {
		return nil, err
	}
	return db, nil
}
