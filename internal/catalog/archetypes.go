package catalog

import (
	"sort"

	"github.com/polsala/Depths-of-the-Fractured-Mind-sub000/internal/game"
)

// Archetype defines a playable character class: base stats at level 1,
// the extra increments gained per level on top of the fixed per-level
// gains, and the abilities the character starts with.
type Archetype struct {
	ID                 string     `json:"id"`
	Name               string     `json:"name"`
	Description        string     `json:"description"`
	Base               game.Stats `json:"base"`
	PerLevel           game.Stats `json:"per_level"`
	StartingAbilityIDs []string   `json:"starting_ability_ids"`
}

var archetypes = map[string]*Archetype{
	"soldier": {
		ID: "soldier", Name: "Soldier",
		Description:        "Holds the line. Hits hard and keeps standing.",
		Base:               game.Stats{HP: 46, MaxHP: 46, Sanity: 30, MaxSanity: 30, Attack: 12, Defense: 8, Will: 4, Focus: 6},
		PerLevel:           game.Stats{MaxHP: 3, Attack: 2, Defense: 1},
		StartingAbilityIDs: []string{"crushing_blow", "rallying_cry"},
	},
	"scholar": {
		ID: "scholar", Name: "Scholar",
		Description:        "Reads the dark and explains it away, for a while.",
		Base:               game.Stats{HP: 32, MaxHP: 32, Sanity: 48, MaxSanity: 48, Attack: 7, Defense: 4, Will: 10, Focus: 9},
		PerLevel:           game.Stats{MaxSanity: 3, Will: 2, Focus: 1},
		StartingAbilityIDs: []string{"lantern_of_reason", "incisive_analysis"},
	},
	"occultist": {
		ID: "occultist", Name: "Occultist",
		Description:        "Spends sanity like coin and knows the exchange rate.",
		Base:               game.Stats{HP: 30, MaxHP: 30, Sanity: 40, MaxSanity: 40, Attack: 9, Defense: 3, Will: 12, Focus: 8},
		PerLevel:           game.Stats{MaxSanity: 2, Attack: 1, Will: 2},
		StartingAbilityIDs: []string{"abyssal_lash", "forbidden_rite"},
	},
	"medium": {
		ID: "medium", Name: "Medium",
		Description:        "Talks to what the others only hear.",
		Base:               game.Stats{HP: 34, MaxHP: 34, Sanity: 44, MaxSanity: 44, Attack: 6, Defense: 5, Will: 11, Focus: 10},
		PerLevel:           game.Stats{MaxHP: 2, MaxSanity: 2, Will: 1, Focus: 1},
		StartingAbilityIDs: []string{"soothing_presence", "spirit_ward", "wail_of_the_lost"},
	},
}

// GetArchetype returns the archetype for id, or nil when unknown.
func GetArchetype(id string) *Archetype {
	return archetypes[id]
}

// Archetypes returns all archetypes in stable id order.
func Archetypes() []*Archetype {
	ids := make([]string, 0, len(archetypes))
	for id := range archetypes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := make([]*Archetype, 0, len(ids))
	for _, id := range ids {
		out = append(out, archetypes[id])
	}
	return out
}
