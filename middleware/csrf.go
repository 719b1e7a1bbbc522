package middleware

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"log"
	"net/http"

	"github.com/Modeva-Ecommerce/modeva-storefront/config"
	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"github.com/gin-gonic/gin"
)

const csrfTokenKey = "csrfToken"

// csrfFormField is read when a form posts without the header
const csrfFormField = "csrfmiddlewaretoken"

// CSRF implements the double-submit cookie check. Safe requests get a
// token cookie when they have none; unsafe requests must echo the cookie in
// the X-CSRFToken header (or the form field).
func CSRF() gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(config.App.CSRFCookie)
		hasCookie := err == nil && cookie != ""

		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodTrace:
			if !hasCookie {
				cookie = newCSRFToken()
				setCSRFCookie(c, cookie)
			}
			c.Set(csrfTokenKey, cookie)
			c.Next()
			return
		}

		sent := c.GetHeader(config.App.CSRFHeader)
		if sent == "" {
			sent = c.PostForm(csrfFormField)
		}
		if !hasCookie || sent == "" || subtle.ConstantTimeCompare([]byte(sent), []byte(cookie)) != 1 {
			log.Printf("⚠️ [csrf] rejected %s %s from %s", c.Request.Method, c.Request.URL.Path, c.ClientIP())
			c.AbortWithStatusJSON(http.StatusForbidden, models.ActionFailed("CSRF verification failed. Please refresh the page."))
			return
		}

		c.Set(csrfTokenKey, cookie)
		c.Next()
	}
}

// GetCSRFToken returns the token of the current request
func GetCSRFToken(c *gin.Context) string {
	return c.GetString(csrfTokenKey)
}

func newCSRFToken() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		log.Fatalf("❌ cannot read random bytes: %v", err)
	}
	return hex.EncodeToString(b)
}

// setCSRFCookie leaves the cookie readable by page scripts, which copy it
// into the header.
func setCSRFCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(config.App.CSRFCookie, token, 365*24*60*60, "/", "", config.App.IsProduction, false)
}
