package engine

import (
	"math"

	"github.com/polsala/Depths-of-the-Fractured-Mind-sub000/internal/game"
)

// AttackResult is the outcome of a basic attack roll. On a miss Damage is
// zero and no further effects apply.
type AttackResult struct {
	Hit      bool
	Critical bool
	Damage   int
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// PerformBasicAttack computes hit, critical and damage for an attack of
// attacker against defender. Pure: the caller applies the returned damage.
//
// Defense halves into the damage term rather than subtracting flat so
// high-defense targets stay damageable, and a hit always deals at least 1
// damage to avoid zero-damage stalemates.
func PerformBasicAttack(attacker, defender *game.Stats, rng game.Rand) AttackResult {
	hitChance := clampFloat(0.70+float64(attacker.Focus)*0.01-float64(defender.Defense)*0.01, 0.10, 0.95)
	if rng.Float64() >= hitChance {
		return AttackResult{}
	}
	damage := attacker.Attack - defender.Defense/2
	if damage < 1 {
		damage = 1
	}
	res := AttackResult{Hit: true, Damage: damage}
	if rng.Float64() < 0.10 {
		res.Critical = true
		res.Damage = int(math.Floor(float64(damage) * 1.5))
	}
	return res
}
