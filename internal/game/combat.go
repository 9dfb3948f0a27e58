package game

// Phase tags the combat state machine. Exactly one phase is active at any
// point; victory, defeat and fled are terminal.
type Phase string

const (
	PhaseSelectAction  Phase = "select-action"
	PhaseExecuteAction Phase = "execute-action"
	PhaseVictory       Phase = "victory"
	PhaseDefeat        Phase = "defeat"
	PhaseFled          Phase = "fled"
)

// Terminal reports whether the phase ends the combat session.
func (p Phase) Terminal() bool {
	return p == PhaseVictory || p == PhaseDefeat || p == PhaseFled
}

// ActionType is the kind of a submitted combat action. Using a dedicated
// type instead of plain string makes dispatch switches self-documenting.
type ActionType string

const (
	ActionAttack  ActionType = "attack"
	ActionAbility ActionType = "ability"
	ActionItem    ActionType = "item"
	ActionDefend  ActionType = "defend"
	ActionFlee    ActionType = "flee"
)

// CombatAction is an immutable request created by the UI or AI layer and
// consumed exactly once by the action executor.
type CombatAction struct {
	Type        ActionType `json:"type"`
	ActorIndex  int        `json:"actor_index"`
	TargetIndex int        `json:"target_index"`
	AbilityID   string     `json:"ability_id,omitempty"`
	ItemID      string     `json:"item_id,omitempty"`
}

// TurnOrderEntry is the scheduler's ranking unit. The order is rebuilt at
// the start of every round, so entries may go stale mid-round; stale (dead)
// actors are skipped, not removed.
type TurnOrderEntry struct {
	IsPlayer bool    `json:"is_player"`
	Index    int     `json:"index"`
	Speed    float64 `json:"speed"`
}

// LogType classifies combat log entries for UI styling.
type LogType string

const (
	LogInfo     LogType = "info"
	LogDamage   LogType = "damage"
	LogHeal     LogType = "heal"
	LogStatus   LogType = "status"
	LogDialogue LogType = "dialogue"
	LogSystem   LogType = "system"
)

// CombatLogEntry is one line of the combat log stream.
type CombatLogEntry struct {
	Message string  `json:"message"`
	Type    LogType `json:"type"`
}

// MaxLogEntries bounds the retained combat log; the oldest entry is
// evicted first.
const MaxLogEntries = 50

// DebugOptions are session-scoped overrides injected at encounter creation
// and read-only thereafter.
type DebugOptions struct {
	OneHitKill        bool    `json:"one_hit_kill"`
	XPMultiplier      float64 `json:"xp_multiplier"`
	DisableEncounters bool    `json:"disable_encounters"`
}

// CharacterReward captures a single character's progression from a victory.
type CharacterReward struct {
	Name             string `json:"name"`
	LevelBefore      int    `json:"level_before"`
	LevelAfter       int    `json:"level_after"`
	ExperienceBefore int    `json:"experience_before"`
	ExperienceAfter  int    `json:"experience_after"`
}

// VictorySummary is assembled once on victory for UI consumption.
type VictorySummary struct {
	Experience int               `json:"experience"`
	Characters []CharacterReward `json:"characters"`
	Loot       []string          `json:"loot"`
}

// Rand is the injectable random source used by the combat engine so tests
// can drive every roll deterministically.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// DialogueMemory tracks which boss low-health dialogues have already been
// shown. The default implementation is owned by the combat state and resets
// per encounter; a process-wide implementation can be swapped in via
// configuration to suppress repeats across encounters.
type DialogueMemory interface {
	SeenLowHealth(bossID string) bool
	MarkLowHealth(bossID string)
}

// EncounterDialogueMemory is the per-encounter DialogueMemory.
type EncounterDialogueMemory struct {
	shown map[string]bool
}

func NewEncounterDialogueMemory() *EncounterDialogueMemory {
	return &EncounterDialogueMemory{shown: make(map[string]bool)}
}

func (m *EncounterDialogueMemory) SeenLowHealth(bossID string) bool { return m.shown[bossID] }
func (m *EncounterDialogueMemory) MarkLowHealth(bossID string)      { m.shown[bossID] = true }

// CombatState is the aggregate root of a combat session. It is exclusively
// owned by the active session and always passed as a single pointer through
// the engine; it is never cloned mid-resolution.
type CombatState struct {
	Party            *Party           `json:"party"`
	Encounter        *EncounterState  `json:"encounter"`
	Turn             int              `json:"turn"`
	Depth            int              `json:"depth"`
	Phase            Phase            `json:"phase"`
	TurnOrder        []TurnOrderEntry `json:"turn_order"`
	CurrentTurnIndex int              `json:"current_turn_index"`
	Log              []CombatLogEntry `json:"log"`
	IsBossFight      bool             `json:"is_boss_fight"`
	BossID           string           `json:"boss_id,omitempty"`
	Debug            DebugOptions     `json:"debug"`
	Victory          *VictorySummary  `json:"victory,omitempty"`

	RNG      Rand           `json:"-"`
	Dialogue DialogueMemory `json:"-"`
}

// AddLog appends a log entry, evicting the oldest beyond MaxLogEntries.
func (s *CombatState) AddLog(t LogType, msg string) {
	s.Log = append(s.Log, CombatLogEntry{Message: msg, Type: t})
	if len(s.Log) > MaxLogEntries {
		s.Log = s.Log[len(s.Log)-MaxLogEntries:]
	}
}

// CurrentEntry returns the scheduler entry whose turn it is, or nil when
// the order is exhausted for this round.
func (s *CombatState) CurrentEntry() *TurnOrderEntry {
	if s.CurrentTurnIndex < 0 || s.CurrentTurnIndex >= len(s.TurnOrder) {
		return nil
	}
	return &s.TurnOrder[s.CurrentTurnIndex]
}

// ActorVitals resolves a scheduler entry to the underlying combatant, or
// nil when the reference is stale or out of range.
func (s *CombatState) ActorVitals(e *TurnOrderEntry) *Vitals {
	if e == nil {
		return nil
	}
	if e.IsPlayer {
		if e.Index < 0 || e.Index >= len(s.Party.Members) {
			return nil
		}
		return &s.Party.Members[e.Index].Vitals
	}
	if e.Index < 0 || e.Index >= len(s.Encounter.Enemies) {
		return nil
	}
	return &s.Encounter.Enemies[e.Index].Vitals
}

// ActorName resolves a scheduler entry to a display name.
func (s *CombatState) ActorName(e *TurnOrderEntry) string {
	if e == nil {
		return ""
	}
	if e.IsPlayer {
		if e.Index < 0 || e.Index >= len(s.Party.Members) {
			return ""
		}
		return s.Party.Members[e.Index].Name
	}
	if e.Index < 0 || e.Index >= len(s.Encounter.Enemies) {
		return ""
	}
	return s.Encounter.Enemies[e.Index].Name
}
