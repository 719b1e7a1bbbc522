package middleware

import (
	"net/http"

	"github.com/Modeva-Ecommerce/modeva-storefront/config"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionIDKey = "sessionID"

// Session makes sure every visitor carries a session cookie. Cart, wishlist
// and pending sign-ups are stored under its value.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(config.App.SessionCookie)
		if err != nil || uuid.Validate(sid) != nil {
			sid = uuid.NewString()
			setSessionCookie(c, sid)
		}
		c.Set(sessionIDKey, sid)
		c.Next()
	}
}

// RotateSession issues a fresh session ID, e.g. after sign-in or logout
func RotateSession(c *gin.Context) string {
	sid := uuid.NewString()
	setSessionCookie(c, sid)
	c.Set(sessionIDKey, sid)
	return sid
}

func setSessionCookie(c *gin.Context, sid string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		config.App.SessionCookie,
		sid,
		int(config.App.SessionTTL.Seconds()),
		"/",
		"",
		config.App.IsProduction,
		true,
	)
}

// GetSessionID returns the session ID set by Session
func GetSessionID(c *gin.Context) string {
	return c.GetString(sessionIDKey)
}
