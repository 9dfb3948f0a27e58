package engine

import (
	"sort"

	"github.com/polsala/Depths-of-the-Fractured-Mind-sub000/internal/game"
)

// enemySpeedPenalty makes enemies act after allies with the same focus.
const enemySpeedPenalty = 0.1

// BuildTurnOrder rebuilds the scheduler from the currently living
// combatants and resets the cursor to the fastest actor. It runs at the
// start of every round rather than incrementally, so deaths and stat
// changes are always reflected in the next round.
//
// Speed is focus plus a per-index epsilon, minus a flat penalty for
// enemies; the result is a fully deterministic ordering with ties broken
// by ascending index within a side, allies before enemies.
func BuildTurnOrder(s *game.CombatState) {
	entries := make([]game.TurnOrderEntry, 0, len(s.Party.Members)+len(s.Encounter.Enemies))
	for i, m := range s.Party.Members {
		if !m.Alive {
			continue
		}
		entries = append(entries, game.TurnOrderEntry{
			IsPlayer: true,
			Index:    i,
			Speed:    float64(m.Stats.Focus) + float64(i)*0.001,
		})
	}
	for i, e := range s.Encounter.Enemies {
		if !e.Alive {
			continue
		}
		entries = append(entries, game.TurnOrderEntry{
			IsPlayer: false,
			Index:    i,
			Speed:    float64(e.Stats.Focus) + float64(i)*0.001 - enemySpeedPenalty,
		})
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Speed > entries[j].Speed })
	s.TurnOrder = entries
	s.CurrentTurnIndex = 0
}

// CurrentActor returns the scheduler entry whose turn it is. Exposed for
// the presentation layer; nil means the round is exhausted.
func CurrentActor(s *game.CombatState) *game.TurnOrderEntry {
	return s.CurrentEntry()
}

// advanceToNextActor moves the cursor forward; when the round is over it
// ticks status durations down, bumps the turn counter and rebuilds the
// order for the next round.
func (tc *turnContext) advanceToNextActor() {
	s := tc.s
	s.CurrentTurnIndex++
	if s.CurrentTurnIndex < len(s.TurnOrder) {
		return
	}
	tc.endRound()
	s.Turn++
	BuildTurnOrder(s)
}

// endRound decrements every active status duration by one round and logs
// expiries. Runs exactly once per completed round.
func (tc *turnContext) endRound() {
	s := tc.s
	for _, m := range s.Party.Members {
		if !m.Alive {
			continue
		}
		for _, expired := range m.TickDownStatuses() {
			s.AddLog(game.LogStatus, m.Name+" is no longer "+string(expired)+".")
		}
	}
	for _, e := range s.Encounter.Enemies {
		if !e.Alive {
			continue
		}
		for _, expired := range e.TickDownStatuses() {
			s.AddLog(game.LogStatus, e.Name+" is no longer "+string(expired)+".")
		}
	}
}
