package service

import (
	"github.com/polsala/Depths-of-the-Fractured-Mind-sub000/internal/catalog"
	"github.com/polsala/Depths-of-the-Fractured-Mind-sub000/internal/constants"
	"github.com/polsala/Depths-of-the-Fractured-Mind-sub000/internal/encounter"
	"github.com/polsala/Depths-of-the-Fractured-Mind-sub000/internal/engine"
	"github.com/polsala/Depths-of-the-Fractured-Mind-sub000/internal/game"
	"github.com/polsala/Depths-of-the-Fractured-Mind-sub000/internal/logging"
	"github.com/polsala/Depths-of-the-Fractured-Mind-sub000/internal/storage"
)

// randomEncounterChance applies on every descent to a non-boss floor.
const randomEncounterChance = 0.6

// Descend moves the party one floor down. Boss floors always start their
// boss fight; other floors roll a random encounter unless encounters are
// disabled for the session. Descending is blocked while combat is active.
func Descend(m *Manager, repo storage.Repository, runID, email string) (*RunSession, error) {
	var out *RunSession
	err := m.withRun(runID, email, func(s *RunSession) error {
		out = s
		if s.Over() {
			return ErrRunOver
		}
		if s.Combat != nil && !s.Combat.Phase.Terminal() {
			return ErrAlreadyInCombat
		}
		if s.Depth >= FinalDepth {
			return ErrDeepestFloor
		}
		s.Depth++
		logging.Info("party descends", logging.Fields{
			constants.LogFieldRunID: s.RunID,
			constants.LogFieldDepth: s.Depth,
		})

		if bossID := catalog.BossForDepth(s.Depth); bossID != "" {
			return m.startCombat(repo, s, encounter.Boss(bossID), bossID)
		}
		if s.Debug.DisableEncounters {
			s.Combat = nil
			return nil
		}
		rng := m.combatRNG()
		if rng.Float64() < randomEncounterChance {
			return m.startCombat(repo, s, encounter.Random(s.Depth, rng), "")
		}
		s.Combat = nil
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// StartEncounter lets the party seek out a fight on the current floor, for
// grinding before a boss. Always spawns, even when random encounters are
// disabled for the session.
func StartEncounter(m *Manager, repo storage.Repository, runID, email string) (*RunSession, error) {
	var out *RunSession
	err := m.withRun(runID, email, func(s *RunSession) error {
		out = s
		if s.Over() {
			return ErrRunOver
		}
		if s.Combat != nil && !s.Combat.Phase.Terminal() {
			return ErrAlreadyInCombat
		}
		return m.startCombat(repo, s, encounter.Random(s.Depth, m.combatRNG()), "")
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// startCombat wires a roster into a new combat session. Enemies faster
// than the whole party act during creation, so the combat can already be
// over when this returns.
func (m *Manager) startCombat(repo storage.Repository, s *RunSession, enc *game.EncounterState, bossID string) error {
	if enc == nil || len(enc.Enemies) == 0 {
		return ErrActionRejected
	}
	s.Combat = engine.NewCombat(s.Party, enc, engine.Options{
		Depth:    s.Depth,
		BossID:   bossID,
		Debug:    s.Debug,
		RNG:      m.combatRNG(),
		Dialogue: m.Dialogue,
	})
	if bossID != "" {
		logging.Info("boss fight started", logging.Fields{
			constants.LogFieldRunID:  s.RunID,
			constants.LogFieldBossID: bossID,
			constants.LogFieldDepth:  s.Depth,
		})
	}
	if s.Combat.Phase.Terminal() {
		return m.resolveCombatEnd(repo, s)
	}
	return nil
}
