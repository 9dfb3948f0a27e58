package storage

import (
	"github.com/polsala/Depths-of-the-Fractured-Mind-sub000/internal/game"
)

type Repository interface {
	// UpsertProfile creates or refreshes the profile row for an
	// authenticated player. The display name follows the identity
	// provider on every login.
	UpsertProfile(email, name string) error
	GetProfileByEmail(email string) (*game.PlayerProfile, error)

	SaveRunRecord(rec *game.RunRecord) error
	// GetRunHistory returns the most recent finished runs for a player,
	// newest first.
	GetRunHistory(email string, limit int) ([]game.RunRecord, error)

	// RecordRunEnd folds one finished run into the player's aggregate
	// stats: runs played, victories and deepest depth reached.
	RecordRunEnd(email string, depth int, outcome string) error

	// GetLeaderboard returns the top profiles ordered by victories, then
	// deepest depth.
	GetLeaderboard(limit int) ([]game.PlayerProfile, error)
}
