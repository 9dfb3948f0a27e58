package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polsala/Depths-of-the-Fractured-Mind-sub000/internal/catalog"
	"github.com/polsala/Depths-of-the-Fractured-Mind-sub000/internal/constants"
	"github.com/polsala/Depths-of-the-Fractured-Mind-sub000/internal/version"
)

// ListArchetypes returns the playable archetypes for party formation.
func (h *RunHandler) ListArchetypes(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.Archetypes())
}

// Leaderboard returns the top profiles by victories and deepest depth.
func (h *RunHandler) Leaderboard(c *gin.Context) {
	profiles, err := h.repo.GetLeaderboard(10)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchLeaderboard})
		return
	}
	out, err := MarshalIntoSnakeTimestamps(profiles)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchLeaderboard})
		return
	}
	c.JSON(http.StatusOK, out)
}

// PlayerStats returns the session player's aggregate profile and recent
// run history.
func (h *RunHandler) PlayerStats(c *gin.Context) {
	email := sessionEmail(c)
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrEmailRequired})
		return
	}
	profile, err := h.repo.GetProfileByEmail(email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchStats})
		return
	}
	history, err := h.repo.GetRunHistory(email, 20)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchStats})
		return
	}
	out, err := MarshalIntoSnakeTimestamps(gin.H{"profile": profile, "history": history})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchStats})
		return
	}
	c.JSON(http.StatusOK, out)
}

// Version returns build and VCS metadata injected at build time.
func Version(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"version": version.Version,
		"commit":  version.Commit,
		"date":    version.Date,
		"dirty":   version.Dirty,
	})
}
