package catalog

import "testing"

func TestUnknownLookupsReturnNil(t *testing.T) {
	if GetAbility("no_such_ability") != nil {
		t.Fatalf("unknown ability should be nil")
	}
	if GetItem("no_such_item") != nil {
		t.Fatalf("unknown item should be nil")
	}
	if GetEnemy("no_such_enemy") != nil {
		t.Fatalf("unknown enemy should be nil")
	}
	if GetArchetype("no_such_archetype") != nil {
		t.Fatalf("unknown archetype should be nil")
	}
	if GetBossDialogue("no_such_boss") != nil {
		t.Fatalf("unknown boss dialogue should be nil")
	}
	if BossLoot("no_such_boss") != nil {
		t.Fatalf("unknown boss loot should be nil")
	}
}

func TestEnemyAbilityReferencesResolve(t *testing.T) {
	for depth := 1; depth <= 20; depth++ {
		for _, e := range EnemiesForDepth(depth) {
			for _, aid := range e.AbilityIDs {
				if GetAbility(aid) == nil {
					t.Fatalf("enemy %s references unknown ability %s", e.ID, aid)
				}
			}
		}
	}
}

func TestArchetypeAbilityReferencesResolve(t *testing.T) {
	for _, a := range Archetypes() {
		for _, aid := range a.StartingAbilityIDs {
			if GetAbility(aid) == nil {
				t.Fatalf("archetype %s references unknown ability %s", a.ID, aid)
			}
		}
	}
}

func TestEnemiesForDepthScaling(t *testing.T) {
	shallow := EnemiesForDepth(1)
	deep := EnemiesForDepth(10)
	if len(shallow) >= len(deep) {
		t.Fatalf("deeper floors should unlock more enemies: %d vs %d", len(shallow), len(deep))
	}
	for _, e := range shallow {
		if e.IsBoss {
			t.Fatalf("bosses must not appear in random pools")
		}
		if e.MinDepth > 1 {
			t.Fatalf("enemy %s not eligible at depth 1", e.ID)
		}
	}
}

func TestBossMilestones(t *testing.T) {
	if BossForDepth(5) == "" || BossForDepth(10) == "" || BossForDepth(15) == "" {
		t.Fatalf("boss milestones missing")
	}
	if BossForDepth(3) != "" {
		t.Fatalf("depth 3 should have no boss")
	}
	for _, depth := range []int{5, 10, 15} {
		id := BossForDepth(depth)
		e := GetEnemy(id)
		if e == nil || !e.IsBoss {
			t.Fatalf("boss %s missing or not flagged as boss", id)
		}
		if GetBossDialogue(id) == nil {
			t.Fatalf("boss %s has no dialogue", id)
		}
		if len(BossLoot(id)) == 0 {
			t.Fatalf("boss %s has no guaranteed loot", id)
		}
	}
}

func TestRegisterValidation(t *testing.T) {
	if err := RegisterEnemy(Enemy{ID: "pallid_crawler"}); err == nil {
		t.Fatalf("duplicate enemy id should be rejected")
	}
	if err := RegisterAbility(Ability{ID: "x", Target: "sideways", Effects: []AbilityEffect{{Type: EffectDamage}}}); err == nil {
		t.Fatalf("bad target shape should be rejected")
	}
	if err := RegisterItem(Item{ID: "y", Kind: "mystery"}); err == nil {
		t.Fatalf("bad item kind should be rejected")
	}
}
