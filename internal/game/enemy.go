package game

// EnemyState mirrors CharacterState minus leveling. Instances are created
// fresh per encounter from a static template (stats deep-copied) and
// discarded when the encounter ends.
type EnemyState struct {
	TemplateID string   `json:"template_id"`
	Name       string   `json:"name"`
	AbilityIDs []string `json:"ability_ids"`
	ExpReward  int      `json:"exp_reward"`
	IsBoss     bool     `json:"is_boss"`
	Vitals
}

// EncounterState is the ordered roster of a single combat session.
type EncounterState struct {
	Enemies []*EnemyState `json:"enemies"`
}

// Defeated reports whether every enemy is down.
func (e *EncounterState) Defeated() bool {
	for _, en := range e.Enemies {
		if en.Alive {
			return false
		}
	}
	return true
}

// LivingEnemies returns the indices of enemies still alive.
func (e *EncounterState) LivingEnemies() []int {
	out := make([]int, 0, len(e.Enemies))
	for i, en := range e.Enemies {
		if en.Alive {
			out = append(out, i)
		}
	}
	return out
}

// AverageFocus is used by the flee-chance formula.
func (e *EncounterState) AverageFocus() float64 {
	living := 0
	total := 0
	for _, en := range e.Enemies {
		if en.Alive {
			living++
			total += en.Stats.Focus
		}
	}
	if living == 0 {
		return 0
	}
	return float64(total) / float64(living)
}
