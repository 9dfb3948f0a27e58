package engine

import (
	"fmt"

	"github.com/polsala/Depths-of-the-Fractured-Mind-sub000/internal/catalog"
	"github.com/polsala/Depths-of-the-Fractured-Mind-sub000/internal/game"
)

// targetRef addresses one combatant on either side of the battle.
type targetRef struct {
	isPlayer bool
	index    int
}

func (tc *turnContext) refVitals(r targetRef) *game.Vitals {
	s := tc.s
	if r.isPlayer {
		if r.index < 0 || r.index >= len(s.Party.Members) {
			return nil
		}
		return &s.Party.Members[r.index].Vitals
	}
	if r.index < 0 || r.index >= len(s.Encounter.Enemies) {
		return nil
	}
	return &s.Encounter.Enemies[r.index].Vitals
}

func (tc *turnContext) refName(r targetRef) string {
	s := tc.s
	if r.isPlayer {
		if r.index < 0 || r.index >= len(s.Party.Members) {
			return ""
		}
		return s.Party.Members[r.index].Name
	}
	if r.index < 0 || r.index >= len(s.Encounter.Enemies) {
		return ""
	}
	return s.Encounter.Enemies[r.index].Name
}

// CanUseAbility is consulted by the submission layer before an ability
// action is even offered: sanity gates and resource costs are checked
// against the caster's current state. The HP cost must be strictly less
// than current HP, so a caster can never kill themselves paying it.
func CanUseAbility(caster *game.CharacterState, abilityID string) bool {
	ab := catalog.GetAbility(abilityID)
	if ab == nil {
		return false
	}
	if ab.RequiresHighSanity && float64(caster.Stats.Sanity) < 0.7*float64(caster.Stats.MaxSanity) {
		return false
	}
	if ab.RequiresLowSanity && float64(caster.Stats.Sanity) > 0.3*float64(caster.Stats.MaxSanity) {
		return false
	}
	if ab.Cost.HP > 0 && ab.Cost.HP >= caster.Stats.HP {
		return false
	}
	if ab.Cost.Sanity > caster.Stats.Sanity {
		return false
	}
	return true
}

// execAbility pays the ability's costs and fans its effects out to the
// resolved targets. Unknown ability ids are silent no-ops. Costs are paid
// clamped at zero even when they would drain the resource completely;
// affordability gating belongs to CanUseAbility before submission.
func (tc *turnContext) execAbility(entry *game.TurnOrderEntry, action game.CombatAction) {
	s := tc.s
	ab := catalog.GetAbility(action.AbilityID)
	if ab == nil {
		return
	}
	caster := s.ActorVitals(entry)
	casterName := s.ActorName(entry)

	if ab.Cost.HP > 0 {
		caster.ApplyDamage(ab.Cost.HP)
	}
	if ab.Cost.Sanity > 0 {
		caster.ApplySanityDamage(ab.Cost.Sanity)
	}
	s.AddLog(game.LogInfo, casterName+" uses "+ab.Name+"!")

	targets := tc.resolveTargets(entry, ab.Target, action.TargetIndex)
	// Every effect is fully processed over the target snapshot even when
	// an earlier effect in the same ability already defeated a target.
	for _, eff := range ab.Effects {
		for _, ref := range targets {
			tc.applyEffect(eff, ref)
		}
	}
}

// resolveTargets maps an ability's target shape to concrete combatants,
// relative to the caster's side: for enemy casters "ally" means a fellow
// enemy and "enemy" a party member. Living combatants only; an explicit
// target index outside the valid range yields no targets.
func (tc *turnContext) resolveTargets(entry *game.TurnOrderEntry, shape catalog.TargetShape, targetIndex int) []targetRef {
	s := tc.s
	self := targetRef{isPlayer: entry.IsPlayer, index: entry.Index}

	alliesOf := func(isPlayer bool) []targetRef {
		var out []targetRef
		if isPlayer {
			for _, i := range s.Party.LivingMembers() {
				out = append(out, targetRef{isPlayer: true, index: i})
			}
			return out
		}
		for _, i := range s.Encounter.LivingEnemies() {
			out = append(out, targetRef{isPlayer: false, index: i})
		}
		return out
	}

	switch shape {
	case catalog.TargetSelf:
		return []targetRef{self}
	case catalog.TargetAlly:
		ref := targetRef{isPlayer: entry.IsPlayer, index: targetIndex}
		if v := tc.refVitals(ref); v == nil || !v.Alive {
			return nil
		}
		return []targetRef{ref}
	case catalog.TargetAllAllies:
		return alliesOf(entry.IsPlayer)
	case catalog.TargetEnemy:
		ref := targetRef{isPlayer: !entry.IsPlayer, index: targetIndex}
		if v := tc.refVitals(ref); v == nil || !v.Alive {
			return nil
		}
		return []targetRef{ref}
	case catalog.TargetAllEnemies:
		return alliesOf(!entry.IsPlayer)
	case catalog.TargetAll:
		return append(alliesOf(entry.IsPlayer), alliesOf(!entry.IsPlayer)...)
	default:
		return nil
	}
}

// applyEffect applies a single ability effect to a single target.
func (tc *turnContext) applyEffect(eff catalog.AbilityEffect, ref targetRef) {
	s := tc.s
	v := tc.refVitals(ref)
	if v == nil {
		return
	}
	name := tc.refName(ref)

	switch eff.Type {
	case catalog.EffectDamage:
		s.AddLog(game.LogDamage, fmt.Sprintf("%s takes %d damage.", name, eff.Value))
		if ref.isPlayer {
			tc.damageMember(ref.index, eff.Value)
		} else {
			tc.damageEnemy(ref.index, eff.Value)
		}
	case catalog.EffectHeal:
		if healed := v.ApplyHeal(eff.Value); healed > 0 {
			s.AddLog(game.LogHeal, fmt.Sprintf("%s recovers %d HP.", name, healed))
		}
	case catalog.EffectSanityDamage:
		lost := v.ApplySanityDamage(eff.Value)
		s.AddLog(game.LogDamage, fmt.Sprintf("%s loses %d sanity.", name, lost))
	case catalog.EffectSanityHeal:
		if restored := v.ApplySanityHeal(eff.Value); restored > 0 {
			s.AddLog(game.LogHeal, fmt.Sprintf("%s regains %d sanity.", name, restored))
		}
	case catalog.EffectBuff:
		v.Stats.Adjust(eff.Stat, eff.Value)
		s.AddLog(game.LogStatus, fmt.Sprintf("%s's %s rises by %d.", name, eff.Stat, eff.Value))
	case catalog.EffectDebuff:
		v.Stats.Adjust(eff.Stat, -eff.Value)
		s.AddLog(game.LogStatus, fmt.Sprintf("%s's %s drops by %d.", name, eff.Stat, eff.Value))
	case catalog.EffectStatus:
		v.ApplyStatus(eff.Status, eff.Duration)
		s.AddLog(game.LogStatus, name+" is "+string(eff.Status)+"!")
	default:
		// unknown effect types degrade to no-ops
	}
}
