package service

import (
	"encoding/json"

	"github.com/polsala/Depths-of-the-Fractured-Mind-sub000/internal/constants"
	"github.com/polsala/Depths-of-the-Fractured-Mind-sub000/internal/game"
	"github.com/polsala/Depths-of-the-Fractured-Mind-sub000/internal/logging"
	"github.com/polsala/Depths-of-the-Fractured-Mind-sub000/internal/storage"
)

// resolveCombatEnd reacts to a terminal combat phase. Victory on the final
// floor's boss completes the run; a party wipe ends it. The terminal combat
// state stays attached to the session so clients can read the summary.
func (m *Manager) resolveCombatEnd(repo storage.Repository, s *RunSession) error {
	switch s.Combat.Phase {
	case game.PhaseVictory:
		if s.Combat.IsBossFight && s.Depth >= FinalDepth {
			m.finishRun(repo, s, game.RunOutcomeVictory)
		}
	case game.PhaseDefeat:
		m.finishRun(repo, s, game.RunOutcomeDefeat)
	case game.PhaseFled:
		// the run continues; nothing to persist
	}
	return nil
}

// Abandon ends the run early with the abandoned outcome.
func Abandon(m *Manager, repo storage.Repository, runID, email string) (*RunSession, error) {
	var out *RunSession
	err := m.withRun(runID, email, func(s *RunSession) error {
		out = s
		if s.Over() {
			return ErrRunOver
		}
		m.finishRun(repo, s, game.RunOutcomeAbandoned)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// finishRun records the final outcome. Persistence failures are logged but
// never surfaced to the player; the in-memory outcome is already final.
func (m *Manager) finishRun(repo storage.Repository, s *RunSession, outcome string) {
	s.Outcome = outcome
	snapshot, err := json.Marshal(s.Party)
	if err != nil {
		logging.Error("failed to snapshot party", err, logging.Fields{constants.LogFieldRunID: s.RunID})
		snapshot = []byte("{}")
	}
	rec := &game.RunRecord{
		RunUUID:       s.RunID,
		Email:         s.Email,
		Depth:         s.Depth,
		Outcome:       outcome,
		PartySnapshot: string(snapshot),
	}
	if err := repo.SaveRunRecord(rec); err != nil {
		logging.Error("failed to save run record", err, logging.Fields{constants.LogFieldRunID: s.RunID})
	}
	if err := repo.RecordRunEnd(s.Email, s.Depth, outcome); err != nil {
		logging.Error("failed to update profile stats", err, logging.Fields{constants.LogFieldEmail: s.Email})
	}
	logging.Info("run finished", logging.Fields{
		constants.LogFieldRunID:   s.RunID,
		constants.LogFieldDepth:   s.Depth,
		constants.LogFieldOutcome: outcome,
	})
}
