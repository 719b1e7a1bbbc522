// ════════════════════════════════════════════════════════════
// Path: utils/login_tracker.go
// Sign-in audit trail for storefront customers
// ════════════════════════════════════════════════════════════

package utils

import (
	"log"
	"net"
	"strings"
	"time"

	"github.com/Modeva-Ecommerce/modeva-storefront/config"
	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// uaRule maps a user agent fragment to a label. Rules are checked in order.
type uaRule struct {
	contains, without string
	label             string
}

var (
	deviceRules = []uaRule{
		{contains: "ipad", label: "tablet"},
		{contains: "tablet", label: "tablet"},
		{contains: "mobile", label: "mobile"},
		{contains: "android", label: "mobile"},
	}
	browserRules = []uaRule{
		{contains: "edg", label: "Edge"},
		{contains: "chrome", label: "Chrome"},
		{contains: "firefox", label: "Firefox"},
		{contains: "safari", without: "chrome", label: "Safari"},
	}
	// iOS and Android agents also mention Mac OS X or Linux
	osRules = []uaRule{
		{contains: "windows", label: "Windows"},
		{contains: "iphone", label: "iOS"},
		{contains: "ipad", label: "iOS"},
		{contains: "android", label: "Android"},
		{contains: "mac os", label: "macOS"},
		{contains: "linux", label: "Linux"},
	}
)

func matchRule(ua string, rules []uaRule, fallback string) string {
	for _, r := range rules {
		if strings.Contains(ua, r.contains) && (r.without == "" || !strings.Contains(ua, r.without)) {
			return r.label
		}
	}
	return fallback
}

// NewLoginEvent describes a sign-in by customerID from the request in c
func NewLoginEvent(c *gin.Context, customerID uuid.UUID, method string, at time.Time) models.LoginEvent {
	userAgent := c.GetHeader("User-Agent")
	ua := strings.ToLower(userAgent)
	return models.LoginEvent{
		ID:         uuid.New(),
		CustomerID: customerID,
		Method:     method,
		LoggedInAt: at,
		IPAddress:  GetClientIP(c),
		UserAgent:  userAgent,
		DeviceType: matchRule(ua, deviceRules, "desktop"),
		Browser:    matchRule(ua, browserRules, "Other"),
		OS:         matchRule(ua, osRules, "Other"),
	}
}

// LogLoginEvent stores the sign-in in login_events. Without a database
// connection it is a no-op.
func LogLoginEvent(c *gin.Context, customerID uuid.UUID, method string) error {
	if config.StoreDB == nil {
		return nil
	}
	event := NewLoginEvent(c, customerID, method, time.Now().UTC())

	_, err := config.StoreDB.Exec(c.Request.Context(), `
		INSERT INTO login_events (id, customer_id, method, logged_in_at, ip_address, user_agent, device_type, browser, os)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		event.ID, event.CustomerID, event.Method, event.LoggedInAt,
		event.IPAddress, event.UserAgent, event.DeviceType, event.Browser, event.OS,
	)
	if err != nil {
		return err
	}

	log.Printf("✅ [auth] %s sign-in recorded for customer %s (%s on %s, ip=%s)",
		method, customerID, event.Browser, event.DeviceType, event.IPAddress)
	return nil
}

// GetClientIP prefers the first X-Forwarded-For hop, then X-Real-IP, then
// gin's own view of the peer.
func GetClientIP(c *gin.Context) string {
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := strings.TrimSpace(first); net.ParseIP(ip) != nil {
			return ip
		}
	}
	if xri := strings.TrimSpace(c.GetHeader("X-Real-IP")); net.ParseIP(xri) != nil {
		return xri
	}
	return c.ClientIP()
}
