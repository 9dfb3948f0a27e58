package engine

import (
	"fmt"

	"github.com/polsala/Depths-of-the-Fractured-Mind-sub000/internal/game"
)

// executeAction validates actor eligibility and dispatches one action.
// Gates run in order: stale/dead actor no-op, stunned consumes the slot,
// feared may skip the turn. Unknown action types are silent no-ops.
func (tc *turnContext) executeAction(action game.CombatAction) {
	s := tc.s
	entry := s.CurrentEntry()
	if entry == nil || entry.Index != action.ActorIndex {
		return
	}
	actor := s.ActorVitals(entry)
	if actor == nil || !actor.Alive {
		return
	}
	name := s.ActorName(entry)

	if actor.HasStatus(game.StatusStunned) {
		actor.ClearStatus(game.StatusStunned)
		s.AddLog(game.LogStatus, name+" is stunned and cannot act!")
		return
	}
	if actor.HasStatus(game.StatusFeared) && s.RNG.Float64() < 0.5 {
		s.AddLog(game.LogStatus, name+" is paralyzed by fear!")
		return
	}

	switch action.Type {
	case game.ActionAttack:
		tc.execAttack(entry, action)
	case game.ActionAbility:
		tc.execAbility(entry, action)
	case game.ActionItem:
		tc.execItem(entry, action)
	case game.ActionDefend:
		actor.Stats.Defense += 5
		s.AddLog(game.LogInfo, name+" takes a defensive stance (+5 Defense).")
	case game.ActionFlee:
		tc.attemptFlee()
	default:
		// unknown action types never crash combat
	}
}

// execAttack resolves a basic attack against the opposite side. An invalid
// or dead target is a pure no-op.
func (tc *turnContext) execAttack(entry *game.TurnOrderEntry, action game.CombatAction) {
	s := tc.s
	attackerName := s.ActorName(entry)
	attacker := s.ActorVitals(entry)

	target, targetName := tc.opposingTarget(entry, action.TargetIndex)
	if target == nil || !target.Alive {
		return
	}

	res := PerformBasicAttack(&attacker.Stats, &target.Stats, s.RNG)
	if s.Debug.OneHitKill && entry.IsPlayer {
		res = AttackResult{Hit: true, Damage: target.Stats.HP}
	}
	if !res.Hit {
		s.AddLog(game.LogInfo, attackerName+" attacks "+targetName+" but misses.")
		return
	}
	suffix := ""
	if res.Critical {
		suffix = " Critical hit!"
	}
	s.AddLog(game.LogDamage, fmt.Sprintf("%s hits %s for %d damage.%s", attackerName, targetName, res.Damage, suffix))
	if entry.IsPlayer {
		tc.damageEnemy(action.TargetIndex, res.Damage)
	} else {
		tc.damageMember(action.TargetIndex, res.Damage)
	}
}

// opposingTarget resolves an index on the side opposite the actor.
func (tc *turnContext) opposingTarget(entry *game.TurnOrderEntry, idx int) (*game.Vitals, string) {
	s := tc.s
	if entry.IsPlayer {
		if idx < 0 || idx >= len(s.Encounter.Enemies) {
			return nil, ""
		}
		e := s.Encounter.Enemies[idx]
		return &e.Vitals, e.Name
	}
	if idx < 0 || idx >= len(s.Party.Members) {
		return nil, ""
	}
	m := s.Party.Members[idx]
	return &m.Vitals, m.Name
}

// damageEnemy applies damage to an enemy by index, logging defeat and
// checking the boss low-health dialogue trigger.
func (tc *turnContext) damageEnemy(idx int, n int) {
	s := tc.s
	if idx < 0 || idx >= len(s.Encounter.Enemies) {
		return
	}
	e := s.Encounter.Enemies[idx]
	wasAlive := e.Alive
	e.ApplyDamage(n)
	if wasAlive && !e.Alive {
		s.AddLog(game.LogSystem, e.Name+" is defeated!")
		return
	}
	tc.checkBossLowHealth(e)
}

// damageMember applies damage to a party member by index, logging death.
func (tc *turnContext) damageMember(idx int, n int) {
	s := tc.s
	if idx < 0 || idx >= len(s.Party.Members) {
		return
	}
	m := s.Party.Members[idx]
	wasAlive := m.Alive
	m.ApplyDamage(n)
	if wasAlive && !m.Alive {
		s.AddLog(game.LogSystem, m.Name+" falls!")
	}
}
