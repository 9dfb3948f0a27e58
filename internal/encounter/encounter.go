// Package encounter spawns combat rosters from the static enemy catalog.
package encounter

import (
	"github.com/polsala/Depths-of-the-Fractured-Mind-sub000/internal/catalog"
	"github.com/polsala/Depths-of-the-Fractured-Mind-sub000/internal/game"
)

const maxGroupSize = 3

// Spawn instantiates a live enemy from a template. Stats are copied by
// value so combat never writes back into the catalog.
func Spawn(tpl *catalog.Enemy) *game.EnemyState {
	abilities := make([]string, len(tpl.AbilityIDs))
	copy(abilities, tpl.AbilityIDs)
	return &game.EnemyState{
		TemplateID: tpl.ID,
		Name:       tpl.Name,
		AbilityIDs: abilities,
		ExpReward:  tpl.ExpReward,
		IsBoss:     tpl.IsBoss,
		Vitals: game.Vitals{
			Stats: tpl.Stats,
			Alive: tpl.Stats.HP > 0,
		},
	}
}

// Random rolls a depth-appropriate roster of one to three enemies drawn
// from the templates unlocked at that depth. Returns nil when the depth
// has no eligible templates.
func Random(depth int, rng game.Rand) *game.EncounterState {
	pool := catalog.EnemiesForDepth(depth)
	if len(pool) == 0 {
		return nil
	}
	count := 1 + rng.Intn(maxGroupSize)
	enemies := make([]*game.EnemyState, 0, count)
	for i := 0; i < count; i++ {
		enemies = append(enemies, Spawn(pool[rng.Intn(len(pool))]))
	}
	return &game.EncounterState{Enemies: enemies}
}

// Boss builds the single-enemy roster for a boss id. Returns nil for
// unknown ids.
func Boss(bossID string) *game.EncounterState {
	tpl := catalog.GetEnemy(bossID)
	if tpl == nil || !tpl.IsBoss {
		return nil
	}
	return &game.EncounterState{Enemies: []*game.EnemyState{Spawn(tpl)}}
}
