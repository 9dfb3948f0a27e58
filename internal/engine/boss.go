package engine

import (
	"sync"

	"github.com/polsala/Depths-of-the-Fractured-Mind-sub000/internal/catalog"
	"github.com/polsala/Depths-of-the-Fractured-Mind-sub000/internal/game"
)

// lowHealthThreshold is the HP fraction below which a boss speaks its
// low-health lines.
const lowHealthThreshold = 0.3

// checkBossLowHealth surfaces a boss's low-health dialogue the first time
// its HP drops under the threshold. The dialogue memory decides what
// "first time" means: per encounter by default, per process when the
// shared memory is configured.
func (tc *turnContext) checkBossLowHealth(e *game.EnemyState) {
	s := tc.s
	if !e.IsBoss || !e.Alive {
		return
	}
	if float64(e.Stats.HP) >= lowHealthThreshold*float64(e.Stats.MaxHP) {
		return
	}
	if s.Dialogue.SeenLowHealth(e.TemplateID) {
		return
	}
	s.Dialogue.MarkLowHealth(e.TemplateID)
	if d := catalog.GetBossDialogue(e.TemplateID); d != nil {
		for _, line := range d.LowHealth {
			s.AddLog(game.LogDialogue, line)
		}
	}
}

// processDialogueMemory is a DialogueMemory shared by every combat in the
// process. Safe for concurrent sessions.
type processDialogueMemory struct {
	mu    sync.Mutex
	shown map[string]bool
}

func (m *processDialogueMemory) SeenLowHealth(bossID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.shown[bossID]
}

func (m *processDialogueMemory) MarkLowHealth(bossID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.shown[bossID] = true
}

var sharedDialogue = &processDialogueMemory{shown: make(map[string]bool)}

// SharedDialogueMemory returns the process-wide dialogue memory, for
// deployments that want each boss's low-health lines at most once per
// server lifetime.
func SharedDialogueMemory() game.DialogueMemory {
	return sharedDialogue
}
