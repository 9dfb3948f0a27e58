package service

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"sync"
	"time"

	"github.com/polsala/Depths-of-the-Fractured-Mind-sub000/internal/game"
)

// FinalDepth is the floor guarded by the last boss; defeating it wins the
// run.
const FinalDepth = 15

// RunSession is one player's live dungeon run. Sessions are held in memory
// for their whole lifetime; only the final summary is persisted.
type RunSession struct {
	RunID      string            `json:"run_id"`
	Email      string            `json:"-"`
	PlayerName string            `json:"player_name"`
	Depth      int               `json:"depth"`
	Party      *game.Party       `json:"party"`
	Combat     *game.CombatState `json:"combat,omitempty"`
	Debug      game.DebugOptions `json:"debug"`
	// Outcome is empty while the run is active.
	Outcome      string    `json:"outcome,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	LastActivity time.Time `json:"last_activity"`
}

// Over reports whether the run reached a final outcome.
func (s *RunSession) Over() bool { return s.Outcome != "" }

// Notifier receives a callback after every state-changing run operation so
// the transport layer can push updates to connected clients.
type Notifier interface {
	RunUpdated(runID string)
}

// Manager owns the live run sessions. All run operations go through its
// mutex, so a session is never mutated concurrently.
type Manager struct {
	mu   sync.Mutex
	runs map[string]*RunSession

	// Dialogue is passed into every combat; nil selects the default
	// per-encounter boss dialogue memory.
	Dialogue game.DialogueMemory
	// RNG overrides the per-combat random source, for tests.
	RNG      game.Rand
	Notifier Notifier

	now func() time.Time
}

func NewManager() *Manager {
	return &Manager{
		runs: make(map[string]*RunSession),
		now:  time.Now,
	}
}

func newRunID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return hex.EncodeToString(b)
}

// withRun runs fn with the session for runID under the manager lock,
// checking ownership and refreshing the activity timestamp. The notifier
// fires after the lock is released so a slow consumer cannot hold up run
// operations.
func (m *Manager) withRun(runID, email string, fn func(s *RunSession) error) error {
	m.mu.Lock()
	s, ok := m.runs[runID]
	if !ok {
		m.mu.Unlock()
		return ErrRunNotFound
	}
	if s.Email != email {
		m.mu.Unlock()
		return ErrRunNotYours
	}
	s.LastActivity = m.now()
	err := fn(s)
	m.mu.Unlock()
	if err == nil && m.Notifier != nil {
		m.Notifier.RunUpdated(runID)
	}
	return err
}

// GetRun returns a session for read access.
func (m *Manager) GetRun(runID, email string) (*RunSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.runs[runID]
	if !ok {
		return nil, ErrRunNotFound
	}
	if s.Email != email {
		return nil, ErrRunNotYours
	}
	return s, nil
}

// SnapshotJSON serializes the session while holding the manager lock, so a
// response body never races an in-flight action on the same run.
func (m *Manager) SnapshotJSON(runID, email string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.runs[runID]
	if !ok {
		return nil, ErrRunNotFound
	}
	if s.Email != email {
		return nil, ErrRunNotYours
	}
	return json.Marshal(s)
}

func (m *Manager) remove(runID string) {
	delete(m.runs, runID)
}
