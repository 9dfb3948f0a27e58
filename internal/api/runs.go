package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polsala/Depths-of-the-Fractured-Mind-sub000/internal/constants"
	"github.com/polsala/Depths-of-the-Fractured-Mind-sub000/internal/game"
	"github.com/polsala/Depths-of-the-Fractured-Mind-sub000/internal/service"
)

type CreateRunPayload struct {
	Members []service.PartyMemberRequest `json:"members"`
	Debug   game.DebugOptions            `json:"debug"`
}

// writeRunSnapshot responds with the session serialized under the manager
// lock, so the body never races a concurrent action on the same run.
func (h *RunHandler) writeRunSnapshot(c *gin.Context, status int, runID string) {
	body, err := h.manager.SnapshotJSON(runID, sessionEmail(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.Data(status, constants.ContentTypeJSON, body)
}

// CreateRun forms a party and opens a new run session.
func (h *RunHandler) CreateRun(c *gin.Context) {
	var req CreateRunPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	s, err := service.StartRun(h.manager, sessionEmail(c), sessionName(c), req.Members, req.Debug)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	h.writeRunSnapshot(c, http.StatusCreated, s.RunID)
}

// GetRun returns the full run session, including any combat in progress.
func (h *RunHandler) GetRun(c *gin.Context) {
	h.writeRunSnapshot(c, http.StatusOK, c.Param("runID"))
}

// Descend moves the party one floor down, possibly into combat.
func (h *RunHandler) Descend(c *gin.Context) {
	s, err := service.Descend(h.manager, h.repo, c.Param("runID"), sessionEmail(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	h.writeRunSnapshot(c, http.StatusOK, s.RunID)
}

// StartEncounter spawns a fight on the current floor.
func (h *RunHandler) StartEncounter(c *gin.Context) {
	s, err := service.StartEncounter(h.manager, h.repo, c.Param("runID"), sessionEmail(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	h.writeRunSnapshot(c, http.StatusOK, s.RunID)
}

// SubmitAction executes one combat action for the current party actor.
func (h *RunHandler) SubmitAction(c *gin.Context) {
	var action game.CombatAction
	if err := c.ShouldBindJSON(&action); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	s, err := service.SubmitAction(h.manager, h.repo, c.Param("runID"), sessionEmail(c), action)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	h.writeRunSnapshot(c, http.StatusOK, s.RunID)
}

// Abandon ends the run early.
func (h *RunHandler) Abandon(c *gin.Context) {
	s, err := service.Abandon(h.manager, h.repo, c.Param("runID"), sessionEmail(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	h.writeRunSnapshot(c, http.StatusOK, s.RunID)
}
