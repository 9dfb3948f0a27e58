package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/polsala/Depths-of-the-Fractured-Mind-sub000/internal/constants"
	"github.com/polsala/Depths-of-the-Fractured-Mind-sub000/internal/storage"
)

const sessionTTL = 24 * time.Hour

type AuthHandler struct {
	repo storage.Repository
}

func NewAuthHandler(repo storage.Repository) *AuthHandler {
	return &AuthHandler{repo: repo}
}

type GoogleOAuthCallbackRequest struct {
	Code string `json:"code"`
}

// GoogleOAuthCallback exchanges the one-time code from the frontend's
// Google login for a profile, upserts the player and mints the session
// cookie.
func (h *AuthHandler) GoogleOAuthCallback(c *gin.Context) {
	var req GoogleOAuthCallbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}

	googleClientID := os.Getenv(constants.EnvGoogleClientID)
	googleClientSecret := os.Getenv(constants.EnvGoogleClientSecret)
	if googleClientID == "" || googleClientSecret == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrMissingGoogleEnv})
		return
	}

	conf := &oauth2.Config{
		ClientID:     googleClientID,
		ClientSecret: googleClientSecret,
		RedirectURL:  constants.GoogleOAuthRedirect,
		Scopes:       constants.GoogleUserInfoScopes,
		Endpoint:     google.Endpoint,
	}

	token, err := conf.Exchange(context.Background(), req.Code)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{constants.JSONKeyError: constants.ErrFailedExchangeToken, constants.JSONKeyDetails: err.Error()})
		return
	}

	client := conf.Client(context.Background(), token)
	resp, err := client.Get(constants.GoogleUserInfoURL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedGetUserInfo, constants.JSONKeyDetails: err.Error()})
		return
	}
	defer resp.Body.Close()

	userData, err := io.ReadAll(resp.Body)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: fmt.Sprintf(constants.ErrFailedReadUserData, err.Error())})
		return
	}

	var payload map[string]any
	_ = json.Unmarshal(userData, &payload)
	email, _ := payload["email"].(string)
	name, _ := payload["name"].(string)
	if email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{constants.JSONKeyError: constants.ErrNoEmailInGoogleProfile})
		return
	}

	// Keep a server-stored display name when the player already has one.
	nameToUse := name
	if h.repo != nil {
		if p, err := h.repo.GetProfileByEmail(email); err == nil && p.PlayerName != "" {
			nameToUse = p.PlayerName
		}
		_ = h.repo.UpsertProfile(email, nameToUse)
	}

	sess, err := createSessionToken(email, nameToUse, sessionTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedCreateSession, constants.JSONKeyDetails: err.Error()})
		return
	}
	setSessionCookie(c, sess, sessionTTL)

	out := map[string]any{"email": email, "name": nameToUse}
	if pic, ok := payload["picture"].(string); ok && pic != "" {
		out["picture"] = pic
	}
	c.JSON(http.StatusOK, out)
}
