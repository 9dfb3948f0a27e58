// Package catalog holds the static content tables: abilities, items,
// enemies, archetypes and boss dialogue. The combat engine only reads this
// data by string identifier and never mutates it; unknown ids degrade to
// nil lookups which the engine treats as no-ops.
package catalog

import (
	"github.com/polsala/Depths-of-the-Fractured-Mind-sub000/internal/game"
)

// TargetShape describes who an ability affects. For enemy casters the
// shapes are mirrored: "enemy" means a party member, "ally" a fellow enemy.
type TargetShape string

const (
	TargetSelf       TargetShape = "self"
	TargetAlly       TargetShape = "ally"
	TargetAllAllies  TargetShape = "all-allies"
	TargetEnemy      TargetShape = "enemy"
	TargetAllEnemies TargetShape = "all-enemies"
	TargetAll        TargetShape = "all"
)

// EffectType is the kind of a single ability effect.
type EffectType string

const (
	EffectDamage       EffectType = "damage"
	EffectHeal         EffectType = "heal"
	EffectSanityDamage EffectType = "sanity-damage"
	EffectSanityHeal   EffectType = "sanity-heal"
	EffectBuff         EffectType = "buff"
	EffectDebuff       EffectType = "debuff"
	EffectStatus       EffectType = "status"
)

// AbilityEffect is one entry of an ability's ordered effect list. Value,
// Stat, Status and Duration are used depending on Type.
type AbilityEffect struct {
	Type     EffectType        `json:"type"`
	Value    int               `json:"value,omitempty"`
	Stat     string            `json:"stat,omitempty"`
	Status   game.StatusEffect `json:"status,omitempty"`
	Duration int               `json:"duration,omitempty"`
}

// AbilityCost is the resource price paid by the caster. Costs are deducted
// clamped at zero; gating against unaffordable costs happens in
// CanUseAbility before submission.
type AbilityCost struct {
	HP     int `json:"hp,omitempty"`
	Sanity int `json:"sanity,omitempty"`
}

// Ability is read-only reference data describing a castable ability.
type Ability struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Target      TargetShape `json:"target"`
	Cost        AbilityCost `json:"cost"`
	// Sanity gates: high demands current sanity >= 70% of max, low <= 30%.
	RequiresHighSanity bool            `json:"requires_high_sanity,omitempty"`
	RequiresLowSanity  bool            `json:"requires_low_sanity,omitempty"`
	Effects            []AbilityEffect `json:"effects"`
}

var abilities = map[string]*Ability{
	// Party abilities
	"crushing_blow": {
		ID: "crushing_blow", Name: "Crushing Blow",
		Description: "A reckless two-handed swing that strains the attacker.",
		Target:      TargetEnemy,
		Cost:        AbilityCost{HP: 3},
		Effects:     []AbilityEffect{{Type: EffectDamage, Value: 10}},
	},
	"rallying_cry": {
		ID: "rallying_cry", Name: "Rallying Cry",
		Description: "Steadies the whole party's sword arms.",
		Target:      TargetAllAllies,
		Effects:     []AbilityEffect{{Type: EffectBuff, Stat: game.StatAttack, Value: 2}},
	},
	"lantern_of_reason": {
		ID: "lantern_of_reason", Name: "Lantern of Reason",
		Description: "A recitation of first principles against the dark.",
		Target:      TargetAllAllies,
		Effects:     []AbilityEffect{{Type: EffectSanityHeal, Value: 6}},
	},
	"incisive_analysis": {
		ID: "incisive_analysis", Name: "Incisive Analysis",
		Description: "Names the flaw in the creature's form.",
		Target:      TargetEnemy,
		Effects:     []AbilityEffect{{Type: EffectDebuff, Stat: game.StatDefense, Value: 3}},
	},
	"abyssal_lash": {
		ID: "abyssal_lash", Name: "Abyssal Lash",
		Description: "Channels something that should not be channelled.",
		Target:      TargetEnemy,
		Cost:        AbilityCost{Sanity: 5},
		Effects: []AbilityEffect{
			{Type: EffectDamage, Value: 4},
			{Type: EffectSanityDamage, Value: 8},
		},
	},
	"forbidden_rite": {
		ID: "forbidden_rite", Name: "Forbidden Rite",
		Description:       "Only a mind already slipping can shape these words.",
		Target:            TargetAllEnemies,
		Cost:              AbilityCost{Sanity: 10},
		RequiresLowSanity: true,
		Effects:           []AbilityEffect{{Type: EffectDamage, Value: 6}},
	},
	"soothing_presence": {
		ID: "soothing_presence", Name: "Soothing Presence",
		Description: "Closes wounds with a touch.",
		Target:      TargetAlly,
		Effects:     []AbilityEffect{{Type: EffectHeal, Value: 10}},
	},
	"spirit_ward": {
		ID: "spirit_ward", Name: "Spirit Ward",
		Description:        "A circle of protection that demands a clear head.",
		Target:             TargetAllAllies,
		Cost:               AbilityCost{Sanity: 4},
		RequiresHighSanity: true,
		Effects:            []AbilityEffect{{Type: EffectBuff, Stat: game.StatDefense, Value: 2}},
	},
	"wail_of_the_lost": {
		ID: "wail_of_the_lost", Name: "Wail of the Lost",
		Description: "Borrowed voices that terrify the living.",
		Target:      TargetAllEnemies,
		Cost:        AbilityCost{Sanity: 8},
		Effects:     []AbilityEffect{{Type: EffectStatus, Status: game.StatusFeared, Duration: 2}},
	},

	// Enemy abilities
	"venomous_bite": {
		ID: "venomous_bite", Name: "Venomous Bite",
		Target: TargetEnemy,
		Effects: []AbilityEffect{
			{Type: EffectDamage, Value: 3},
			{Type: EffectStatus, Status: game.StatusPoisoned, Duration: 3},
		},
	},
	"rending_claws": {
		ID: "rending_claws", Name: "Rending Claws",
		Target: TargetEnemy,
		Effects: []AbilityEffect{
			{Type: EffectDamage, Value: 5},
			{Type: EffectStatus, Status: game.StatusBleeding, Duration: 2},
		},
	},
	"maddening_whisper": {
		ID: "maddening_whisper", Name: "Maddening Whisper",
		Target: TargetEnemy,
		Effects: []AbilityEffect{
			{Type: EffectSanityDamage, Value: 6},
			{Type: EffectStatus, Status: game.StatusFeared, Duration: 2},
		},
	},
	"numbing_gaze": {
		ID: "numbing_gaze", Name: "Numbing Gaze",
		Target:  TargetEnemy,
		Effects: []AbilityEffect{{Type: EffectStatus, Status: game.StatusStunned, Duration: 1}},
	},
	"void_howl": {
		ID: "void_howl", Name: "Void Howl",
		Target:  TargetAllEnemies,
		Effects: []AbilityEffect{{Type: EffectSanityDamage, Value: 4}},
	},
}

// GetAbility returns the ability for id, or nil when unknown.
func GetAbility(id string) *Ability {
	return abilities[id]
}
