package service

import (
	"github.com/polsala/Depths-of-the-Fractured-Mind-sub000/internal/engine"
	"github.com/polsala/Depths-of-the-Fractured-Mind-sub000/internal/game"
	"github.com/polsala/Depths-of-the-Fractured-Mind-sub000/internal/storage"
)

// SubmitAction validates and executes one combat action for the current
// party actor. Validation happens here, before the engine runs, so a
// rejected action never consumes the actor's turn.
func SubmitAction(m *Manager, repo storage.Repository, runID, email string, action game.CombatAction) (*RunSession, error) {
	var out *RunSession
	err := m.withRun(runID, email, func(s *RunSession) error {
		out = s
		if s.Over() {
			return ErrRunOver
		}
		c := s.Combat
		if c == nil || c.Phase.Terminal() {
			return ErrNotInCombat
		}
		if c.Phase != game.PhaseSelectAction {
			return ErrNotYourTurn
		}
		entry := c.CurrentEntry()
		if entry == nil || !entry.IsPlayer || entry.Index != action.ActorIndex {
			return ErrNotYourTurn
		}
		if err := validateAction(s, action); err != nil {
			return err
		}
		engine.SubmitAction(c, action)
		if c.Phase.Terminal() {
			return m.resolveCombatEnd(repo, s)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// validateAction enforces what the engine itself treats as silent no-ops:
// the member must know the ability and be able to pay for it, and items
// must be in stock.
func validateAction(s *RunSession, action game.CombatAction) error {
	switch action.Type {
	case game.ActionAbility:
		member := s.Party.Members[action.ActorIndex]
		if !knowsAbility(member, action.AbilityID) {
			return ErrActionRejected
		}
		if !engine.CanUseAbility(member, action.AbilityID) {
			return ErrActionRejected
		}
	case game.ActionItem:
		if s.Party.Inventory[action.ItemID] <= 0 {
			return ErrActionRejected
		}
	}
	return nil
}

func knowsAbility(member *game.CharacterState, abilityID string) bool {
	for _, id := range member.AbilityIDs {
		if id == abilityID {
			return true
		}
	}
	return false
}
