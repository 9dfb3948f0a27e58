package service

import (
	"time"

	"github.com/polsala/Depths-of-the-Fractured-Mind-sub000/internal/constants"
	"github.com/polsala/Depths-of-the-Fractured-Mind-sub000/internal/game"
	"github.com/polsala/Depths-of-the-Fractured-Mind-sub000/internal/logging"
	"github.com/polsala/Depths-of-the-Fractured-Mind-sub000/internal/storage"
)

// ExpireIdle abandons runs with no activity for idleTTL and drops finished
// sessions that have been kept around for the same window. Returns the
// number of runs abandoned. Called periodically from the server loop.
func ExpireIdle(m *Manager, repo storage.Repository, idleTTL time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	cutoff := m.now().Add(-idleTTL)
	abandoned := 0
	for id, s := range m.runs {
		if !s.LastActivity.Before(cutoff) {
			continue
		}
		if s.Over() {
			m.remove(id)
			continue
		}
		logging.Info("abandoning idle run", logging.Fields{
			constants.LogFieldRunID: id,
			constants.LogFieldEmail: s.Email,
		})
		m.finishRun(repo, s, game.RunOutcomeAbandoned)
		m.remove(id)
		abandoned++
	}
	return abandoned
}
