package engine

import (
	"time"

	"github.com/polsala/Depths-of-the-Fractured-Mind-sub000/internal/catalog"
	"github.com/polsala/Depths-of-the-Fractured-Mind-sub000/internal/game"
)

// Options configures a new combat session.
type Options struct {
	Depth  int
	BossID string
	Debug  game.DebugOptions
	// RNG defaults to a time-seeded source when nil.
	RNG game.Rand
	// Dialogue defaults to per-encounter tracking when nil; pass
	// SharedDialogueMemory() to suppress boss low-health dialogue across
	// encounters for the process lifetime.
	Dialogue game.DialogueMemory
}

// turnContext bundles the combat state for the duration of one submitted
// action's resolution. The state is mutated in place and never copied.
type turnContext struct {
	s *game.CombatState
}

// NewCombat assembles the combat state for an encounter, builds the first
// round's turn order, surfaces boss intro dialogue and lets any enemies
// faster than the whole party act immediately.
func NewCombat(party *game.Party, enc *game.EncounterState, opts Options) *game.CombatState {
	rng := opts.RNG
	if rng == nil {
		rng = NewRand(time.Now().UnixNano())
	}
	dlg := opts.Dialogue
	if dlg == nil {
		dlg = game.NewEncounterDialogueMemory()
	}
	isBoss := opts.BossID != ""
	for _, e := range enc.Enemies {
		if e.IsBoss {
			isBoss = true
		}
	}
	s := &game.CombatState{
		Party:       party,
		Encounter:   enc,
		Turn:        1,
		Depth:       opts.Depth,
		Phase:       game.PhaseSelectAction,
		IsBossFight: isBoss,
		BossID:      opts.BossID,
		Debug:       opts.Debug,
		RNG:         rng,
		Dialogue:    dlg,
	}
	BuildTurnOrder(s)

	if s.IsBossFight {
		if d := catalog.GetBossDialogue(s.BossID); d != nil {
			for _, line := range d.Intro {
				s.AddLog(game.LogDialogue, line)
			}
		}
	}
	names := ""
	for i, e := range enc.Enemies {
		if i > 0 {
			names += ", "
		}
		names += e.Name
	}
	s.AddLog(game.LogSystem, "Enemies approach: "+names+"!")

	tc := &turnContext{s: s}
	tc.autoplayEnemies()
	return s
}

// SubmitAction is the engine's single entry point: it consumes one action
// for the current party actor, mutates the state in place and returns
// nothing. All results are observable via the state's log, phase and
// entity stats. Submitting into a terminal or mid-execution phase is a
// no-op; combat never errors mid-session.
func SubmitAction(s *game.CombatState, action game.CombatAction) {
	if s.Phase != game.PhaseSelectAction {
		return
	}
	entry := s.CurrentEntry()
	if entry == nil || !entry.IsPlayer || entry.Index != action.ActorIndex {
		return
	}
	s.Phase = game.PhaseExecuteAction
	tc := &turnContext{s: s}
	tc.executeAction(action)
	tc.finishTurn()
}

// finishTurn runs the post-execution sequence: terminal checks, scheduler
// advance, then automatic enemy turns until a player turn is reached or
// combat ends.
func (tc *turnContext) finishTurn() {
	if tc.s.Phase.Terminal() {
		return
	}
	if tc.checkEndOfCombat() {
		return
	}
	tc.advanceToNextActor()
	tc.autoplayEnemies()
}

// autoplayEnemies loops through consecutive enemy turns, skipping stale
// dead references, until a living player actor is up or combat ends.
func (tc *turnContext) autoplayEnemies() {
	s := tc.s
	for {
		if s.Phase.Terminal() {
			return
		}
		entry := s.CurrentEntry()
		if entry == nil {
			tc.advanceToNextActor()
			continue
		}
		actor := s.ActorVitals(entry)
		if actor == nil || !actor.Alive {
			// stale reference from a mid-round death: skip, don't remove
			tc.advanceToNextActor()
			continue
		}
		if entry.IsPlayer {
			s.Phase = game.PhaseSelectAction
			return
		}
		tc.executeAction(ChooseEnemyAction(s, entry))
		tc.applyStatusTicks()
		if tc.checkEndOfCombat() {
			return
		}
		tc.advanceToNextActor()
	}
}

// checkEndOfCombat resolves victory or defeat when a side is wiped out.
// Ordering matters: the encounter check runs first so a simultaneous wipe
// counts as a win.
func (tc *turnContext) checkEndOfCombat() bool {
	if tc.s.Encounter.Defeated() {
		tc.resolveVictory()
		return true
	}
	if tc.s.Party.Defeated() {
		tc.resolveDefeat()
		return true
	}
	return false
}
