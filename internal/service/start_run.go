package service

import (
	"fmt"
	"time"

	"github.com/polsala/Depths-of-the-Fractured-Mind-sub000/internal/catalog"
	"github.com/polsala/Depths-of-the-Fractured-Mind-sub000/internal/constants"
	"github.com/polsala/Depths-of-the-Fractured-Mind-sub000/internal/engine"
	"github.com/polsala/Depths-of-the-Fractured-Mind-sub000/internal/game"
	"github.com/polsala/Depths-of-the-Fractured-Mind-sub000/internal/logging"
)

// PartyMemberRequest is one requested party slot.
type PartyMemberRequest struct {
	Name      string `json:"name"`
	Archetype string `json:"archetype"`
}

// startingInventory is handed to every new party.
var startingInventory = map[string]int{
	"laudanum":       2,
	"sedative_tonic": 1,
}

// StartRun builds a fresh party from the requested archetypes and registers
// a new run session at the first depth. Nothing is persisted until the run
// ends.
func StartRun(m *Manager, email, playerName string, members []PartyMemberRequest, debug game.DebugOptions) (*RunSession, error) {
	if len(members) < 1 || len(members) > 4 {
		return nil, ErrPartySize
	}
	party := &game.Party{Inventory: map[string]int{}}
	for i, req := range members {
		arch := catalog.GetArchetype(req.Archetype)
		if arch == nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownArchetype, req.Archetype)
		}
		name := req.Name
		if name == "" {
			name = arch.Name
		}
		abilities := make([]string, len(arch.StartingAbilityIDs))
		copy(abilities, arch.StartingAbilityIDs)
		party.Members = append(party.Members, &game.CharacterState{
			ID:         fmt.Sprintf("member-%d", i),
			Name:       name,
			Archetype:  arch.ID,
			Level:      1,
			AbilityIDs: abilities,
			Vitals: game.Vitals{
				Stats: arch.Base,
				Alive: true,
			},
		})
	}
	for id, n := range startingInventory {
		party.AddItem(id, n)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	s := &RunSession{
		RunID:        newRunID(),
		Email:        email,
		PlayerName:   playerName,
		Depth:        1,
		Party:        party,
		Debug:        debug,
		CreatedAt:    now,
		LastActivity: now,
	}
	m.runs[s.RunID] = s
	logging.Info("run started", logging.Fields{
		constants.LogFieldRunID: s.RunID,
		constants.LogFieldEmail: email,
		"party_size":            len(party.Members),
	})
	return s, nil
}

// combatRNG picks the manager's injected source or a fresh time-seeded one.
func (m *Manager) combatRNG() game.Rand {
	if m.RNG != nil {
		return m.RNG
	}
	return engine.NewRand(time.Now().UnixNano())
}
