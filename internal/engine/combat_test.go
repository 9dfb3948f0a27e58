package engine

import (
	"strings"
	"testing"

	"github.com/polsala/Depths-of-the-Fractured-Mind-sub000/internal/game"
)

func logContains(s *game.CombatState, substr string) bool {
	for _, e := range s.Log {
		if strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

func dialogueLines(s *game.CombatState) int {
	n := 0
	for _, e := range s.Log {
		if e.Type == game.LogDialogue {
			n++
		}
	}
	return n
}

// newDuel starts a one-on-one combat where the member always outruns the
// enemy, so the first turn belongs to the player.
func newDuel(rng game.Rand) *game.CombatState {
	party := &game.Party{
		Members:   []*game.CharacterState{testMember("Ada", 10)},
		Inventory: map[string]int{},
	}
	enc := &game.EncounterState{Enemies: []*game.EnemyState{testEnemy("crawler", 1)}}
	return NewCombat(party, enc, Options{Depth: 1, RNG: rng})
}

func TestSubmitActionRejectsWrongActor(t *testing.T) {
	s := newDuel(&scriptRand{})
	before := len(s.Log)
	SubmitAction(s, game.CombatAction{Type: game.ActionAttack, ActorIndex: 5, TargetIndex: 0})
	if s.Phase != game.PhaseSelectAction {
		t.Fatalf("phase = %s, want select-action", s.Phase)
	}
	if len(s.Log) != before {
		t.Fatal("rejected submission must not advance combat")
	}
}

func TestStunnedActorLosesTurn(t *testing.T) {
	s := newDuel(&scriptRand{})
	s.Party.Members[0].ApplyStatus(game.StatusStunned, 2)
	enemyHP := s.Encounter.Enemies[0].Stats.HP

	SubmitAction(s, game.CombatAction{Type: game.ActionAttack, ActorIndex: 0, TargetIndex: 0})

	if !logContains(s, "stunned") {
		t.Fatal("expected a stunned log entry")
	}
	if s.Encounter.Enemies[0].Stats.HP != enemyHP {
		t.Fatal("stunned actor must not deal damage")
	}
	if s.Party.Members[0].HasStatus(game.StatusStunned) {
		t.Fatal("acting while stunned must consume the status")
	}
}

func TestFearedActorMaySkip(t *testing.T) {
	// 0.4 < 0.5 fear roll: the turn is skipped and the status persists.
	s := newDuel(&scriptRand{floats: []float64{0.4}})
	s.Party.Members[0].ApplyStatus(game.StatusFeared, 3)
	enemyHP := s.Encounter.Enemies[0].Stats.HP

	SubmitAction(s, game.CombatAction{Type: game.ActionAttack, ActorIndex: 0, TargetIndex: 0})

	if s.Encounter.Enemies[0].Stats.HP != enemyHP {
		t.Fatal("feared skip must not deal damage")
	}
	if !s.Party.Members[0].HasStatus(game.StatusFeared) {
		t.Fatal("fear must persist after a skipped turn")
	}
}

func TestDefendRaisesDefense(t *testing.T) {
	s := newDuel(&scriptRand{})
	before := s.Party.Members[0].Stats.Defense

	SubmitAction(s, game.CombatAction{Type: game.ActionDefend, ActorIndex: 0})

	if got := s.Party.Members[0].Stats.Defense; got != before+5 {
		t.Fatalf("defense = %d, want %d", got, before+5)
	}
}

func TestOneHitKillOverride(t *testing.T) {
	party := &game.Party{Members: []*game.CharacterState{testMember("Ada", 10)}}
	enemy := testEnemy("brute", 1)
	enemy.Stats.HP = 500
	enemy.Stats.MaxHP = 500
	enc := &game.EncounterState{Enemies: []*game.EnemyState{enemy}}
	s := NewCombat(party, enc, Options{Depth: 1, Debug: game.DebugOptions{OneHitKill: true}, RNG: &scriptRand{}})

	SubmitAction(s, game.CombatAction{Type: game.ActionAttack, ActorIndex: 0, TargetIndex: 0})

	if enemy.Alive {
		t.Fatal("one-hit-kill attack must defeat the target")
	}
	if s.Phase != game.PhaseVictory {
		t.Fatalf("phase = %s, want victory", s.Phase)
	}
}

func TestAbilityPaysCostAndDamages(t *testing.T) {
	s := newDuel(&scriptRand{})
	s.Party.Members[0].AbilityIDs = []string{"crushing_blow"}
	hpBefore := s.Party.Members[0].Stats.HP
	enemyHP := s.Encounter.Enemies[0].Stats.HP

	SubmitAction(s, game.CombatAction{
		Type:       game.ActionAbility,
		ActorIndex: 0, TargetIndex: 0,
		AbilityID: "crushing_blow",
	})

	if got := s.Party.Members[0].Stats.HP; got != hpBefore-3 {
		t.Fatalf("caster HP = %d, want cost of 3 paid from %d", got, hpBefore)
	}
	if got := s.Encounter.Enemies[0].Stats.HP; got != enemyHP-10 {
		t.Fatalf("enemy HP = %d, want %d", got, enemyHP-10)
	}
}

func TestUnknownAbilityIsNoOp(t *testing.T) {
	s := newDuel(&scriptRand{})
	enemyHP := s.Encounter.Enemies[0].Stats.HP

	SubmitAction(s, game.CombatAction{
		Type:       game.ActionAbility,
		ActorIndex: 0, TargetIndex: 0,
		AbilityID: "does_not_exist",
	})

	if s.Encounter.Enemies[0].Stats.HP != enemyHP {
		t.Fatal("unknown ability must not deal damage")
	}
	if s.Phase.Terminal() {
		t.Fatalf("phase = %s, combat must continue", s.Phase)
	}
}

func TestItemHealsAndIsConsumed(t *testing.T) {
	s := newDuel(&scriptRand{})
	s.Party.AddItem("laudanum", 1)
	m := s.Party.Members[0]
	m.ApplyDamage(20)

	SubmitAction(s, game.CombatAction{
		Type:       game.ActionItem,
		ActorIndex: 0, TargetIndex: 0,
		ItemID: "laudanum",
	})

	if got := m.Stats.HP; got != 22 {
		t.Fatalf("HP after laudanum = %d, want 22", got)
	}
	if s.Party.Inventory["laudanum"] != 0 {
		t.Fatal("item must be consumed")
	}
}

func TestFleeSucceeds(t *testing.T) {
	// equal average focus: chance 0.40, roll 0.2 escapes
	s := newDuel(&scriptRand{floats: []float64{0.2}})
	s.Encounter.Enemies[0].Stats.Focus = 10

	SubmitAction(s, game.CombatAction{Type: game.ActionFlee, ActorIndex: 0})

	if s.Phase != game.PhaseFled {
		t.Fatalf("phase = %s, want fled", s.Phase)
	}
}

func TestFleeDeniedInBossFight(t *testing.T) {
	party := &game.Party{Members: []*game.CharacterState{testMember("Ada", 10)}}
	boss := testEnemy("the_fractured_king", 1)
	boss.IsBoss = true
	boss.Stats.HP = 100
	boss.Stats.MaxHP = 100
	enc := &game.EncounterState{Enemies: []*game.EnemyState{boss}}
	s := NewCombat(party, enc, Options{Depth: 15, BossID: "the_fractured_king", RNG: &scriptRand{}})

	SubmitAction(s, game.CombatAction{Type: game.ActionFlee, ActorIndex: 0})

	if s.Phase == game.PhaseFled {
		t.Fatal("boss fights must not be escapable")
	}
	if !logContains(s, "no escape") {
		t.Fatal("expected the flee denial log line")
	}
}

func TestStatusTickAfterEnemyAction(t *testing.T) {
	s := newDuel(&scriptRand{})
	m := s.Party.Members[0]
	m.ApplyStatus(game.StatusPoisoned, 3)
	m.ApplyStatus(game.StatusBleeding, 3)
	hpBefore := m.Stats.HP

	// defend consumes no rolls; the enemy attack then misses on the
	// default 0.99 roll, leaving only the 5 tick damage.
	SubmitAction(s, game.CombatAction{Type: game.ActionDefend, ActorIndex: 0})

	if got := m.Stats.HP; got != hpBefore-5 {
		t.Fatalf("HP = %d, want %d after poison and bleed ticks", got, hpBefore-5)
	}
}

func TestBossLowHealthDialogueFiresOnce(t *testing.T) {
	party := &game.Party{Members: []*game.CharacterState{testMember("Ada", 10)}}
	boss := testEnemy("mother_of_threads", 1)
	boss.IsBoss = true
	boss.Stats.HP = 100
	boss.Stats.MaxHP = 100
	enc := &game.EncounterState{Enemies: []*game.EnemyState{boss}}
	s := NewCombat(party, enc, Options{Depth: 10, BossID: "mother_of_threads", RNG: &scriptRand{}})
	tc := &turnContext{s: s}

	intro := dialogueLines(s)
	tc.damageEnemy(0, 75)
	afterFirst := dialogueLines(s)
	if afterFirst <= intro {
		t.Fatal("low-health dialogue must fire when HP drops below 30%")
	}
	tc.damageEnemy(0, 5)
	if dialogueLines(s) != afterFirst {
		t.Fatal("low-health dialogue must fire only once")
	}
}

func TestMidRoundDeathSkipsStaleEntryAndRebuilds(t *testing.T) {
	party := &game.Party{Members: []*game.CharacterState{testMember("Ada", 10)}}
	enc := &game.EncounterState{Enemies: []*game.EnemyState{
		testEnemy("ghoul", 5),
		testEnemy("crawler", 3),
	}}
	s := NewCombat(party, enc, Options{Depth: 1, Debug: game.DebugOptions{OneHitKill: true}, RNG: &scriptRand{}})

	// The first enemy dies before its slot in the current round comes up;
	// its stale entry must be skipped, and the survivor still acts.
	SubmitAction(s, game.CombatAction{Type: game.ActionAttack, ActorIndex: 0, TargetIndex: 0})

	if enc.Enemies[0].Alive {
		t.Fatal("target must be dead")
	}
	if s.Phase != game.PhaseSelectAction {
		t.Fatalf("phase = %s, want select-action after the surviving enemy acts", s.Phase)
	}
	if s.Turn != 2 {
		t.Fatalf("turn = %d, want 2 after the round completes", s.Turn)
	}
	if len(s.TurnOrder) != 2 {
		t.Fatalf("rebuilt order has %d entries, want 2", len(s.TurnOrder))
	}
	for _, e := range s.TurnOrder {
		if !e.IsPlayer && e.Index == 0 {
			t.Fatal("rebuilt order must exclude the dead enemy")
		}
	}
}

func TestSimultaneousWipeIsVictory(t *testing.T) {
	s := newDuel(&scriptRand{})
	s.Party.Members[0].ApplyDamage(s.Party.Members[0].Stats.HP)
	s.Encounter.Enemies[0].ApplyDamage(s.Encounter.Enemies[0].Stats.HP)
	tc := &turnContext{s: s}

	if !tc.checkEndOfCombat() {
		t.Fatal("wiped sides must end combat")
	}
	if s.Phase != game.PhaseVictory {
		t.Fatalf("phase = %s, want victory when both sides fall", s.Phase)
	}
}
