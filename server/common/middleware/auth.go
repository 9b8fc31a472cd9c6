package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"outreach_web/server/common/transport/httpresp"
)

const (
	ContextSessionID = "session_id"
	ContextEmail     = "session_email"
)

type tokenAuth interface {
	ParseSessionContext(token string) (sessionID, email string, err error)
}

// SessionRequired guards the dashboard API. It only proves the session token
// is valid; whether the session still has its durable record is the session
// service's business.
func SessionRequired(auth tokenAuth) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httpresp.NewErrorResponse(httpresp.ErrMissingBearerToken))
			return
		}
		token := strings.TrimPrefix(header, "Bearer ")
		sessionID, email, err := auth.ParseSessionContext(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httpresp.NewErrorResponse(httpresp.ErrInvalidToken))
			return
		}
		c.Set(ContextSessionID, sessionID)
		c.Set(ContextEmail, email)
		c.Next()
	}
}

// SessionFromContext returns the session id set by SessionRequired.
func SessionFromContext(c *gin.Context) (string, bool) {
	raw, ok := c.Get(ContextSessionID)
	if !ok {
		return "", false
	}
	sessionID, ok := raw.(string)
	if !ok || sessionID == "" {
		return "", false
	}
	return sessionID, true
}
