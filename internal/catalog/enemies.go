package catalog

import (
	"sort"

	"github.com/polsala/Depths-of-the-Fractured-Mind-sub000/internal/game"
)

// Enemy is the static template an EnemyState is spawned from. Stats are
// deep-copied at spawn time so combat never mutates the template.
type Enemy struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Stats      game.Stats `json:"stats"`
	AbilityIDs []string   `json:"ability_ids"`
	ExpReward  int        `json:"exp_reward"`
	IsBoss     bool       `json:"is_boss"`
	MinDepth   int        `json:"min_depth"`
}

var enemies = map[string]*Enemy{
	"pallid_crawler": {
		ID: "pallid_crawler", Name: "Pallid Crawler",
		Stats:      game.Stats{HP: 18, MaxHP: 18, Sanity: 10, MaxSanity: 10, Attack: 6, Defense: 2, Will: 2, Focus: 4},
		AbilityIDs: []string{"venomous_bite"},
		ExpReward:  10, MinDepth: 1,
	},
	"hollow_acolyte": {
		ID: "hollow_acolyte", Name: "Hollow Acolyte",
		Stats:      game.Stats{HP: 22, MaxHP: 22, Sanity: 20, MaxSanity: 20, Attack: 5, Defense: 3, Will: 6, Focus: 5},
		AbilityIDs: []string{"maddening_whisper"},
		ExpReward:  12, MinDepth: 1,
	},
	"carrion_hound": {
		ID: "carrion_hound", Name: "Carrion Hound",
		Stats:      game.Stats{HP: 26, MaxHP: 26, Sanity: 5, MaxSanity: 5, Attack: 9, Defense: 3, Will: 1, Focus: 7},
		AbilityIDs: []string{"rending_claws"},
		ExpReward:  15, MinDepth: 2,
	},
	"weeping_mass": {
		ID: "weeping_mass", Name: "Weeping Mass",
		Stats:      game.Stats{HP: 40, MaxHP: 40, Sanity: 15, MaxSanity: 15, Attack: 7, Defense: 6, Will: 4, Focus: 2},
		AbilityIDs: []string{"numbing_gaze"},
		ExpReward:  20, MinDepth: 3,
	},
	"faceless_warden": {
		ID: "faceless_warden", Name: "Faceless Warden",
		Stats:      game.Stats{HP: 48, MaxHP: 48, Sanity: 25, MaxSanity: 25, Attack: 11, Defense: 8, Will: 6, Focus: 6},
		AbilityIDs: []string{"rending_claws", "numbing_gaze"},
		ExpReward:  28, MinDepth: 4,
	},
	"choir_of_teeth": {
		ID: "choir_of_teeth", Name: "Choir of Teeth",
		Stats:      game.Stats{HP: 55, MaxHP: 55, Sanity: 30, MaxSanity: 30, Attack: 12, Defense: 7, Will: 8, Focus: 8},
		AbilityIDs: []string{"void_howl", "rending_claws"},
		ExpReward:  35, MinDepth: 6,
	},

	// Bosses are never part of random rosters, only spawned by id.
	"the_archivist": {
		ID: "the_archivist", Name: "The Archivist",
		Stats:      game.Stats{HP: 120, MaxHP: 120, Sanity: 60, MaxSanity: 60, Attack: 13, Defense: 8, Will: 12, Focus: 9},
		AbilityIDs: []string{"maddening_whisper", "void_howl"},
		ExpReward:  60, IsBoss: true, MinDepth: 5,
	},
	"mother_of_threads": {
		ID: "mother_of_threads", Name: "Mother of Threads",
		Stats:      game.Stats{HP: 180, MaxHP: 180, Sanity: 80, MaxSanity: 80, Attack: 16, Defense: 11, Will: 14, Focus: 11},
		AbilityIDs: []string{"rending_claws", "numbing_gaze", "void_howl"},
		ExpReward:  100, IsBoss: true, MinDepth: 10,
	},
	"the_fractured_king": {
		ID: "the_fractured_king", Name: "The Fractured King",
		Stats:      game.Stats{HP: 260, MaxHP: 260, Sanity: 120, MaxSanity: 120, Attack: 20, Defense: 14, Will: 18, Focus: 13},
		AbilityIDs: []string{"maddening_whisper", "void_howl", "rending_claws"},
		ExpReward:  150, IsBoss: true, MinDepth: 15,
	},
}

// GetEnemy returns the enemy template for id, or nil when unknown.
func GetEnemy(id string) *Enemy {
	return enemies[id]
}

// EnemiesForDepth returns the non-boss templates eligible to spawn at the
// given depth, in stable id order.
func EnemiesForDepth(depth int) []*Enemy {
	ids := make([]string, 0, len(enemies))
	for id := range enemies {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := make([]*Enemy, 0, len(ids))
	for _, id := range ids {
		e := enemies[id]
		if !e.IsBoss && e.MinDepth <= depth {
			out = append(out, e)
		}
	}
	return out
}

// bossByDepth maps depth milestones to boss encounters.
var bossByDepth = map[int]string{
	5:  "the_archivist",
	10: "mother_of_threads",
	15: "the_fractured_king",
}

// BossForDepth returns the boss id guarding the given depth, or "" when
// the depth has no boss.
func BossForDepth(depth int) string {
	return bossByDepth[depth]
}
