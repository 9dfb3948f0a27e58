package engine

import (
	"fmt"
	"math"

	"github.com/polsala/Depths-of-the-Fractured-Mind-sub000/internal/catalog"
	"github.com/polsala/Depths-of-the-Fractured-Mind-sub000/internal/game"
)

// equipmentDropChance applies after the consumable roll in non-boss fights.
const equipmentDropChance = 0.3

// ExperienceToNext returns the experience required to advance from the
// given level to the next one. Level 1 costs 100, each further level half
// again as much.
func ExperienceToNext(level int) int {
	return int(100 * math.Pow(1.5, float64(level-1)))
}

// resolveVictory flips the session to the victory phase and assembles the
// summary: boss dialogue, experience awards with level-ups, and loot.
func (tc *turnContext) resolveVictory() {
	s := tc.s
	s.Phase = game.PhaseVictory

	if s.IsBossFight {
		if d := catalog.GetBossDialogue(s.BossID); d != nil {
			for _, line := range d.Victory {
				s.AddLog(game.LogDialogue, line)
			}
		}
	}
	s.AddLog(game.LogSystem, "Victory!")

	exp := totalExperience(s)
	summary := &game.VictorySummary{Experience: exp}
	for _, i := range s.Party.LivingMembers() {
		m := s.Party.Members[i]
		reward := game.CharacterReward{
			Name:             m.Name,
			LevelBefore:      m.Level,
			ExperienceBefore: m.Experience,
		}
		tc.awardExperience(m, exp)
		reward.LevelAfter = m.Level
		reward.ExperienceAfter = m.Experience
		summary.Characters = append(summary.Characters, reward)
	}
	summary.Loot = tc.rollLoot()
	s.Victory = summary
}

// totalExperience sums the enemies' rewards and applies the debug
// multiplier. A zero multiplier means unset and counts as 1; negative
// multipliers clamp the award to zero.
func totalExperience(s *game.CombatState) int {
	total := 0
	for _, e := range s.Encounter.Enemies {
		total += e.ExpReward
	}
	mult := s.Debug.XPMultiplier
	if mult == 0 {
		mult = 1
	}
	if mult < 0 {
		return 0
	}
	return int(float64(total) * mult)
}

// awardExperience grants exp to one character and processes any level-ups.
// Leveling fully restores HP and sanity.
func (tc *turnContext) awardExperience(m *game.CharacterState, exp int) {
	s := tc.s
	m.Experience += exp
	s.AddLog(game.LogSystem, fmt.Sprintf("%s gains %d experience.", m.Name, exp))
	for m.Experience >= ExperienceToNext(m.Level) {
		m.Experience -= ExperienceToNext(m.Level)
		m.Level++
		tc.levelUp(m)
	}
}

// levelUp applies the fixed per-level gains plus the archetype's bonus
// increments, then restores the character to full.
func (tc *turnContext) levelUp(m *game.CharacterState) {
	s := tc.s
	m.Stats.MaxHP += 3
	m.Stats.MaxSanity += 2
	if a := catalog.GetArchetype(m.Archetype); a != nil {
		m.Stats.MaxHP += a.PerLevel.MaxHP
		m.Stats.MaxSanity += a.PerLevel.MaxSanity
		m.Stats.Attack += a.PerLevel.Attack
		m.Stats.Defense += a.PerLevel.Defense
		m.Stats.Will += a.PerLevel.Will
		m.Stats.Focus += a.PerLevel.Focus
	}
	m.Stats.HP = m.Stats.MaxHP
	m.Stats.Sanity = m.Stats.MaxSanity
	s.AddLog(game.LogSystem, fmt.Sprintf("%s reaches level %d!", m.Name, m.Level))
}

// rollLoot produces the victory drops: a chance at a consumable scaling
// with the enemy count, the boss's guaranteed loot in boss fights, or a
// chance at depth-appropriate equipment otherwise. Drops go straight into
// the shared inventory and are echoed in the summary.
func (tc *turnContext) rollLoot() []string {
	s := tc.s
	var loot []string

	chance := 0.2 + 0.1*float64(len(s.Encounter.Enemies))
	if chance > 0.8 {
		chance = 0.8
	}
	if s.RNG.Float64() < chance {
		pool := catalog.ConsumableDrops()
		id := pool[s.RNG.Intn(len(pool))]
		loot = append(loot, id)
		s.Party.AddItem(id, 1)
		if item := catalog.GetItem(id); item != nil {
			s.AddLog(game.LogSystem, "The party finds "+item.Name+".")
		}
	}

	if s.IsBossFight {
		for _, id := range catalog.BossLoot(s.BossID) {
			loot = append(loot, id)
			s.Party.AddItem(id, 1)
			s.AddLog(game.LogSystem, "The party claims "+id+".")
		}
		return loot
	}

	if s.RNG.Float64() < equipmentDropChance {
		pool := catalog.EquipmentForDepth(s.Depth)
		if len(pool) > 0 {
			eq := pool[s.RNG.Intn(len(pool))]
			loot = append(loot, eq.ID)
			s.Party.AddItem(eq.ID, 1)
			s.AddLog(game.LogSystem, "The party finds "+eq.Name+".")
		}
	}
	return loot
}

// resolveDefeat flips the session to the defeat phase, surfacing the
// boss's victory-over-the-party lines first.
func (tc *turnContext) resolveDefeat() {
	s := tc.s
	s.Phase = game.PhaseDefeat
	if s.IsBossFight {
		if d := catalog.GetBossDialogue(s.BossID); d != nil {
			for _, line := range d.Defeat {
				s.AddLog(game.LogDialogue, line)
			}
		}
	}
	s.AddLog(game.LogSystem, "The party has fallen.")
}
