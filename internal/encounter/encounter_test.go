package encounter

import (
	"testing"

	"github.com/polsala/Depths-of-the-Fractured-Mind-sub000/internal/catalog"
)

type fixedRand struct {
	ints []int
}

func (r *fixedRand) Float64() float64 { return 0.5 }

func (r *fixedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

func TestSpawnCopiesTemplateStats(t *testing.T) {
	tpl := catalog.GetEnemy("pallid_crawler")
	e := Spawn(tpl)
	if !e.Alive {
		t.Fatal("spawned enemy must be alive")
	}
	e.ApplyDamage(10)
	if tpl.Stats.HP != tpl.Stats.MaxHP {
		t.Fatal("combat damage must not write back into the template")
	}
	e.AbilityIDs[0] = "mutated"
	if tpl.AbilityIDs[0] != "venomous_bite" {
		t.Fatal("spawned ability list must be an independent copy")
	}
}

func TestRandomRespectsDepth(t *testing.T) {
	// roll the largest group at depth 1: only depth-1 templates may appear
	enc := Random(1, &fixedRand{ints: []int{2, 0, 1, 0}})
	if enc == nil || len(enc.Enemies) != 3 {
		t.Fatalf("expected roster of 3, got %+v", enc)
	}
	for _, e := range enc.Enemies {
		tpl := catalog.GetEnemy(e.TemplateID)
		if tpl == nil || tpl.MinDepth > 1 || tpl.IsBoss {
			t.Fatalf("template %q must not spawn at depth 1", e.TemplateID)
		}
	}
}

func TestBossRoster(t *testing.T) {
	enc := Boss("mother_of_threads")
	if enc == nil || len(enc.Enemies) != 1 {
		t.Fatalf("expected single boss, got %+v", enc)
	}
	if !enc.Enemies[0].IsBoss {
		t.Fatal("boss flag must carry over from the template")
	}
	if Boss("pallid_crawler") != nil {
		t.Fatal("non-boss ids must not build boss rosters")
	}
	if Boss("unknown") != nil {
		t.Fatal("unknown ids must not build boss rosters")
	}
}
