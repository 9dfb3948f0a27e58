package engine

import (
	"github.com/polsala/Depths-of-the-Fractured-Mind-sub000/internal/catalog"
	"github.com/polsala/Depths-of-the-Fractured-Mind-sub000/internal/game"
)

// abilityUseChance is how often an enemy with abilities prefers one over a
// basic attack.
const abilityUseChance = 0.4

// ChooseEnemyAction picks an action for the enemy whose turn it is: a
// random living party member as target, and with some probability one of
// the enemy's abilities instead of a basic attack. Unknown ability ids in
// a template fall back to attacking.
func ChooseEnemyAction(s *game.CombatState, entry *game.TurnOrderEntry) game.CombatAction {
	living := s.Party.LivingMembers()
	target := 0
	if len(living) > 0 {
		target = living[s.RNG.Intn(len(living))]
	}
	action := game.CombatAction{
		Type:        game.ActionAttack,
		ActorIndex:  entry.Index,
		TargetIndex: target,
	}

	e := s.Encounter.Enemies[entry.Index]
	if len(e.AbilityIDs) > 0 && s.RNG.Float64() < abilityUseChance {
		id := e.AbilityIDs[s.RNG.Intn(len(e.AbilityIDs))]
		if catalog.GetAbility(id) != nil {
			action.Type = game.ActionAbility
			action.AbilityID = id
		}
	}
	return action
}
