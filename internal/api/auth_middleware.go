package api

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/polsala/Depths-of-the-Fractured-Mind-sub000/internal/constants"
)

// setSessionCookie sets the session cookie with appropriate flags for dev/prod.
func setSessionCookie(c *gin.Context, token string, ttl time.Duration) {
	secure := os.Getenv(constants.EnvSessionSecureCookie) == "1"
	c.SetCookie(constants.CookieSessionName, token, int(ttl.Seconds()), "/", "", secure, true)
}

// AuthRequired validates the session cookie and injects identity into context.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(constants.CookieSessionName)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{constants.JSONKeyError: constants.ErrAuthRequired})
			return
		}
		claims, err := parseAndValidateSession(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{constants.JSONKeyError: constants.ErrInvalidSession})
			return
		}
		c.Set("userEmail", claims.Sub)
		c.Set("userName", claims.Name)
		c.Next()
	}
}

func sessionEmail(c *gin.Context) string {
	if v, ok := c.Get("userEmail"); ok {
		if s, _ := v.(string); s != "" {
			return s
		}
	}
	return ""
}

func sessionName(c *gin.Context) string {
	if v, ok := c.Get("userName"); ok {
		if s, _ := v.(string); s != "" {
			return s
		}
	}
	return ""
}
