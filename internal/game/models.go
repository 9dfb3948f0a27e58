package game

import "gorm.io/gorm"

// PlayerProfile stores unique player identity and aggregate run stats.
type PlayerProfile struct {
	gorm.Model
	Email        string `json:"email" gorm:"uniqueIndex"`
	PlayerName   string `json:"player_name"`
	RunsPlayed   int    `json:"runs_played"`
	Victories    int    `json:"victories"`
	DeepestDepth int    `json:"deepest_depth"`
}

// Unify the global profiles table name as "player_profiles".
func (PlayerProfile) TableName() string { return "player_profiles" }

// Run outcomes persisted in RunRecord.
const (
	RunOutcomeVictory   = "victory"
	RunOutcomeDefeat    = "defeat"
	RunOutcomeAbandoned = "abandoned"
)

// RunRecord is the persisted summary of a finished (or abandoned) run.
// PartySnapshot holds the final party state as JSON for the run history
// view; it is opaque to the database.
type RunRecord struct {
	gorm.Model
	RunUUID       string `json:"run_uuid" gorm:"index"`
	Email         string `json:"email" gorm:"index"`
	Depth         int    `json:"depth"`
	Outcome       string `json:"outcome"`
	PartySnapshot string `json:"party_snapshot" gorm:"type:text"`
}

func (RunRecord) TableName() string { return "run_records" }
