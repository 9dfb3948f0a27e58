package game

// Stats is the shared numeric attribute bag for every combatant. HP and
// Sanity are always kept inside [0, max] by the mutation helpers below;
// nothing else in the codebase writes those fields directly during combat.
type Stats struct {
	HP        int `json:"hp"`
	MaxHP     int `json:"max_hp"`
	Sanity    int `json:"sanity"`
	MaxSanity int `json:"max_sanity"`
	Attack    int `json:"attack"`
	Defense   int `json:"defense"`
	Will      int `json:"will"`
	Focus     int `json:"focus"`
}

// Stat names accepted by buff/debuff effects.
const (
	StatAttack  = "attack"
	StatDefense = "defense"
	StatWill    = "will"
	StatFocus   = "focus"
)

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Adjust applies a delta to a named stat, clamping the result at zero.
// Unknown stat names are ignored.
func (s *Stats) Adjust(stat string, delta int) {
	switch stat {
	case StatAttack:
		s.Attack = clampInt(s.Attack+delta, 0, 1<<30)
	case StatDefense:
		s.Defense = clampInt(s.Defense+delta, 0, 1<<30)
	case StatWill:
		s.Will = clampInt(s.Will+delta, 0, 1<<30)
	case StatFocus:
		s.Focus = clampInt(s.Focus+delta, 0, 1<<30)
	}
}

// StatusEffect identifies a named condition attached to a combatant.
type StatusEffect string

const (
	StatusStunned  StatusEffect = "stunned"
	StatusFeared   StatusEffect = "feared"
	StatusPoisoned StatusEffect = "poisoned"
	StatusBleeding StatusEffect = "bleeding"
)

// Vitals groups the mutable combat condition shared by party members and
// enemies: the stat bag, active status effects with remaining rounds, and
// the derived liveness flag. Alive is true iff HP > 0 and every damage or
// heal path goes through these helpers so the invariant holds after each
// mutation.
type Vitals struct {
	Stats         Stats                `json:"stats"`
	StatusEffects map[StatusEffect]int `json:"status_effects"`
	Alive         bool                 `json:"alive"`
}

// ApplyDamage reduces HP by n (clamped at 0) and updates liveness.
// Returns the damage actually taken.
func (v *Vitals) ApplyDamage(n int) int {
	if n < 0 {
		n = 0
	}
	before := v.Stats.HP
	v.Stats.HP = clampInt(v.Stats.HP-n, 0, v.Stats.MaxHP)
	v.Alive = v.Stats.HP > 0
	return before - v.Stats.HP
}

// ApplyHeal raises HP by n (clamped at MaxHP). Returns the amount healed.
// Healing does not resurrect: a dead combatant stays dead.
func (v *Vitals) ApplyHeal(n int) int {
	if !v.Alive || n < 0 {
		return 0
	}
	before := v.Stats.HP
	v.Stats.HP = clampInt(v.Stats.HP+n, 0, v.Stats.MaxHP)
	return v.Stats.HP - before
}

// ApplySanityDamage reduces Sanity by n, clamped at 0.
func (v *Vitals) ApplySanityDamage(n int) int {
	if n < 0 {
		n = 0
	}
	before := v.Stats.Sanity
	v.Stats.Sanity = clampInt(v.Stats.Sanity-n, 0, v.Stats.MaxSanity)
	return before - v.Stats.Sanity
}

// ApplySanityHeal raises Sanity by n, clamped at MaxSanity.
func (v *Vitals) ApplySanityHeal(n int) int {
	if n < 0 {
		return 0
	}
	before := v.Stats.Sanity
	v.Stats.Sanity = clampInt(v.Stats.Sanity+n, 0, v.Stats.MaxSanity)
	return v.Stats.Sanity - before
}

// HasStatus reports whether the status is currently active.
func (v *Vitals) HasStatus(s StatusEffect) bool {
	if v.StatusEffects == nil {
		return false
	}
	_, ok := v.StatusEffects[s]
	return ok
}

// ApplyStatus attaches a status effect with the given duration in rounds.
// Reapplying refreshes the duration only if the new one is longer.
func (v *Vitals) ApplyStatus(s StatusEffect, duration int) {
	if duration < 1 {
		duration = 1
	}
	if v.StatusEffects == nil {
		v.StatusEffects = make(map[StatusEffect]int)
	}
	if remaining, ok := v.StatusEffects[s]; !ok || duration > remaining {
		v.StatusEffects[s] = duration
	}
}

// ClearStatus removes a status effect.
func (v *Vitals) ClearStatus(s StatusEffect) {
	delete(v.StatusEffects, s)
}

// ClearAllStatuses removes every active status effect.
func (v *Vitals) ClearAllStatuses() {
	v.StatusEffects = make(map[StatusEffect]int)
}

// TickDownStatuses decrements every status duration by one round and
// returns the statuses that expired.
func (v *Vitals) TickDownStatuses() []StatusEffect {
	var expired []StatusEffect
	for s, remaining := range v.StatusEffects {
		if remaining <= 1 {
			delete(v.StatusEffects, s)
			expired = append(expired, s)
			continue
		}
		v.StatusEffects[s] = remaining - 1
	}
	return expired
}
