package engine

import (
	"testing"

	"github.com/polsala/Depths-of-the-Fractured-Mind-sub000/internal/game"
)

func TestCanUseAbilityGates(t *testing.T) {
	m := testMember("occultist", 8)
	m.Stats.Sanity = 2
	m.Stats.MaxSanity = 40
	// abyssal_lash costs 5 sanity
	if CanUseAbility(m, "abyssal_lash") {
		t.Fatal("sanity cost above current sanity must block the ability")
	}
	m.Stats.Sanity = 10
	if !CanUseAbility(m, "abyssal_lash") {
		t.Fatal("affordable ability must pass")
	}

	// forbidden_rite requires sanity at or below 30% of max
	m.Stats.Sanity = 40
	if CanUseAbility(m, "forbidden_rite") {
		t.Fatal("low-sanity ability must be blocked at full sanity")
	}
	m.Stats.Sanity = 12
	if !CanUseAbility(m, "forbidden_rite") {
		t.Fatal("low-sanity ability must unlock at 30% sanity")
	}

	// spirit_ward requires sanity at or above 70% of max
	m.Stats.Sanity = 20
	if CanUseAbility(m, "spirit_ward") {
		t.Fatal("high-sanity ability must be blocked below the threshold")
	}
	m.Stats.Sanity = 28
	if !CanUseAbility(m, "spirit_ward") {
		t.Fatal("high-sanity ability must unlock at 70% sanity")
	}

	if CanUseAbility(m, "no_such_ability") {
		t.Fatal("unknown ability id must be unusable")
	}
}

func TestCanUseAbilityHPCostIsStrict(t *testing.T) {
	m := testMember("soldier", 6)
	// crushing_blow costs 3 HP
	m.Stats.HP = 3
	if CanUseAbility(m, "crushing_blow") {
		t.Fatal("HP cost equal to current HP must block the ability")
	}
	m.Stats.HP = 4
	if !CanUseAbility(m, "crushing_blow") {
		t.Fatal("HP cost below current HP must pass")
	}
}

func TestAllAlliesEffectSkipsDead(t *testing.T) {
	a := testMember("a", 10)
	b := testMember("b", 8)
	fallen := testMember("fallen", 6)
	fallen.ApplyDamage(fallen.Stats.HP)
	a.ApplySanityDamage(20)
	b.ApplySanityDamage(20)
	party := &game.Party{Members: []*game.CharacterState{a, b, fallen}}
	enc := &game.EncounterState{Enemies: []*game.EnemyState{testEnemy("e", 1)}}
	s := testState(party, enc)
	BuildTurnOrder(s)
	tc := &turnContext{s: s}

	// lantern_of_reason restores 6 sanity to all living allies
	entry := &game.TurnOrderEntry{IsPlayer: true, Index: 0}
	tc.execAbility(entry, game.CombatAction{Type: game.ActionAbility, ActorIndex: 0, AbilityID: "lantern_of_reason"})

	if a.Stats.Sanity != 16 || b.Stats.Sanity != 16 {
		t.Fatalf("living allies sanity = %d/%d, want 16/16", a.Stats.Sanity, b.Stats.Sanity)
	}
	if fallen.Stats.Sanity != fallen.Stats.MaxSanity {
		t.Fatal("dead ally must not be targeted")
	}
}

func TestEnemyAbilityTargetsRelativeToCaster(t *testing.T) {
	a := testMember("a", 10)
	party := &game.Party{Members: []*game.CharacterState{a}}
	enemy := testEnemy("whisperer", 1)
	enemy.AbilityIDs = []string{"maddening_whisper"}
	enc := &game.EncounterState{Enemies: []*game.EnemyState{enemy}}
	s := testState(party, enc)
	tc := &turnContext{s: s}

	// for an enemy caster, "enemy" target shape resolves to the party
	entry := &game.TurnOrderEntry{IsPlayer: false, Index: 0}
	tc.execAbility(entry, game.CombatAction{Type: game.ActionAbility, ActorIndex: 0, TargetIndex: 0, AbilityID: "maddening_whisper"})

	if a.Stats.Sanity != a.Stats.MaxSanity-6 {
		t.Fatalf("member sanity = %d, want %d", a.Stats.Sanity, a.Stats.MaxSanity-6)
	}
	if !a.HasStatus(game.StatusFeared) {
		t.Fatal("maddening_whisper must apply fear to the party member")
	}
}

func TestBuffAndDebuffAdjustStats(t *testing.T) {
	a := testMember("a", 10)
	b := testMember("b", 8)
	party := &game.Party{Members: []*game.CharacterState{a, b}}
	enemy := testEnemy("e", 1)
	enemy.Stats.Defense = 4
	enc := &game.EncounterState{Enemies: []*game.EnemyState{enemy}}
	s := testState(party, enc)
	tc := &turnContext{s: s}
	entry := &game.TurnOrderEntry{IsPlayer: true, Index: 0}

	atkA, atkB := a.Stats.Attack, b.Stats.Attack
	tc.execAbility(entry, game.CombatAction{Type: game.ActionAbility, ActorIndex: 0, AbilityID: "rallying_cry"})
	if a.Stats.Attack != atkA+2 || b.Stats.Attack != atkB+2 {
		t.Fatalf("attack after rallying_cry = %d/%d, want +2 each", a.Stats.Attack, b.Stats.Attack)
	}

	tc.execAbility(entry, game.CombatAction{Type: game.ActionAbility, ActorIndex: 0, TargetIndex: 0, AbilityID: "incisive_analysis"})
	if enemy.Stats.Defense != 1 {
		t.Fatalf("enemy defense = %d, want 1 after debuff", enemy.Stats.Defense)
	}

	// debuffs clamp at zero
	tc.execAbility(entry, game.CombatAction{Type: game.ActionAbility, ActorIndex: 0, TargetIndex: 0, AbilityID: "incisive_analysis"})
	if enemy.Stats.Defense != 0 {
		t.Fatalf("enemy defense = %d, want clamp at 0", enemy.Stats.Defense)
	}
}

func TestSmokeBombEndsCombatUnlessBoss(t *testing.T) {
	s := newDuel(&scriptRand{})
	s.Party.AddItem("smoke_bomb", 1)
	SubmitAction(s, game.CombatAction{Type: game.ActionItem, ActorIndex: 0, ItemID: "smoke_bomb"})
	if s.Phase != game.PhaseFled {
		t.Fatalf("phase = %s, want fled after smoke bomb", s.Phase)
	}

	party := &game.Party{Members: []*game.CharacterState{testMember("Ada", 10)}, Inventory: map[string]int{"smoke_bomb": 1}}
	boss := testEnemy("the_archivist", 1)
	boss.IsBoss = true
	boss.Stats.HP = 100
	boss.Stats.MaxHP = 100
	enc := &game.EncounterState{Enemies: []*game.EnemyState{boss}}
	bs := NewCombat(party, enc, Options{Depth: 5, BossID: "the_archivist", RNG: &scriptRand{}})
	SubmitAction(bs, game.CombatAction{Type: game.ActionItem, ActorIndex: 0, ItemID: "smoke_bomb"})
	if bs.Phase == game.PhaseFled {
		t.Fatal("smoke bomb must not end a boss fight")
	}
	if party.Inventory["smoke_bomb"] != 0 {
		t.Fatal("smoke bomb is spent even when escape is denied")
	}
}
