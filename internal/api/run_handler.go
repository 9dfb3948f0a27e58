package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polsala/Depths-of-the-Fractured-Mind-sub000/internal/constants"
	"github.com/polsala/Depths-of-the-Fractured-Mind-sub000/internal/service"
	"github.com/polsala/Depths-of-the-Fractured-Mind-sub000/internal/storage"
)

// RunHandler groups all run-related HTTP handlers.
type RunHandler struct {
	manager *service.Manager
	repo    storage.Repository
}

func NewRunHandler(manager *service.Manager, repo storage.Repository) *RunHandler {
	return &RunHandler{manager: manager, repo: repo}
}

// writeServiceError maps service sentinel errors to HTTP status codes and
// the shared error message constants.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrRunNotFound):
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrRunNotFound})
	case errors.Is(err, service.ErrRunNotYours):
		c.JSON(http.StatusForbidden, gin.H{constants.JSONKeyError: constants.ErrRunNotYours})
	case errors.Is(err, service.ErrRunOver):
		c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrRunAlreadyOver})
	case errors.Is(err, service.ErrNotInCombat):
		c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrNotInCombat})
	case errors.Is(err, service.ErrAlreadyInCombat):
		c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrAlreadyInCombat})
	case errors.Is(err, service.ErrNotYourTurn):
		c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrNotYourTurn})
	case errors.Is(err, service.ErrActionRejected), errors.Is(err, service.ErrDeepestFloor):
		c.JSON(http.StatusUnprocessableEntity, gin.H{constants.JSONKeyError: constants.ErrActionRejected})
	case errors.Is(err, service.ErrUnknownArchetype), errors.Is(err, service.ErrPartySize):
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest, constants.JSONKeyDetails: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedUpdateRun})
	}
}
