package engine

import (
	"fmt"

	"github.com/polsala/Depths-of-the-Fractured-Mind-sub000/internal/game"
)

const (
	poisonTickDamage = 3
	bleedTickDamage  = 2
)

// applyStatusTicks deals poison and bleed damage to every afflicted living
// combatant on both sides. Runs after each enemy action so damage-over-time
// pressure lands continuously rather than only at round boundaries;
// durations still tick down once per round in endRound.
func (tc *turnContext) applyStatusTicks() {
	s := tc.s
	for i, m := range s.Party.Members {
		if !m.Alive {
			continue
		}
		tc.tickOne(true, i, &m.Vitals, m.Name)
	}
	for i, e := range s.Encounter.Enemies {
		if !e.Alive {
			continue
		}
		tc.tickOne(false, i, &e.Vitals, e.Name)
	}
}

func (tc *turnContext) tickOne(isPlayer bool, idx int, v *game.Vitals, name string) {
	s := tc.s
	total := 0
	if v.HasStatus(game.StatusPoisoned) {
		total += poisonTickDamage
	}
	if v.HasStatus(game.StatusBleeding) {
		total += bleedTickDamage
	}
	if total == 0 {
		return
	}
	s.AddLog(game.LogDamage, fmt.Sprintf("%s suffers %d damage from their afflictions.", name, total))
	if isPlayer {
		tc.damageMember(idx, total)
	} else {
		tc.damageEnemy(idx, total)
	}
}
