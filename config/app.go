// ════════════════════════════════════════════════════════════
// Path: config/app.go
// Storefront settings read from the environment
// ════════════════════════════════════════════════════════════

package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type AppConfig struct {
	SiteName         string
	Port             string
	IsProduction     bool
	FrontendURL      string
	AllowedOrigins   []string
	PageSize         int
	OTPExpiry        time.Duration
	SessionTTL       time.Duration
	JWTSecret        string
	JWTExpiry        time.Duration
	SessionCookie    string
	AuthCookie       string
	CSRFCookie       string
	CSRFHeader       string
	OTPRateLimit     int
	OTPRateWindow    time.Duration
	SessionBackend   string
	RedisURL         string
	CloudinaryName   string
	CloudinaryKey    string
	CloudinarySecret string
}

// App holds the settings loaded by LoadApp.
var App = DefaultApp()

// DefaultApp returns the development defaults.
func DefaultApp() AppConfig {
	return AppConfig{
		SiteName:       "Modeva",
		Port:           "8081",
		FrontendURL:    "http://localhost:3001",
		AllowedOrigins: []string{"http://localhost:3000", "http://localhost:3001"},
		PageSize:       24,
		OTPExpiry:      10 * time.Minute,
		SessionTTL:     14 * 24 * time.Hour,
		JWTExpiry:      24 * time.Hour,
		SessionCookie:  "sessionid",
		AuthCookie:     "auth_token",
		CSRFCookie:     "csrftoken",
		CSRFHeader:     "X-CSRFToken",
		OTPRateLimit:   5,
		OTPRateWindow:  10 * time.Minute,
		SessionBackend: "redis",
		RedisURL:       "redis://localhost:6379/0",
	}
}

// LoadApp reads the environment on top of the defaults.
func LoadApp() {
	cfg := DefaultApp()

	cfg.SiteName = getEnv("SITE_NAME", cfg.SiteName)
	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.IsProduction = os.Getenv("APP_ENV") == "production"
	cfg.FrontendURL = getEnv("STOREFRONT_URL", cfg.FrontendURL)
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		cfg.AllowedOrigins = splitList(origins)
	}
	cfg.PageSize = getEnvInt("PAGE_SIZE", cfg.PageSize)
	cfg.OTPExpiry = time.Duration(getEnvInt("OTP_EXPIRY_MINUTES", int(cfg.OTPExpiry/time.Minute))) * time.Minute
	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	cfg.JWTExpiry = getEnvDuration("JWT_EXPIRY", cfg.JWTExpiry)
	cfg.SessionTTL = getEnvDuration("SESSION_TTL", cfg.SessionTTL)
	cfg.OTPRateLimit = getEnvInt("OTP_RATE_LIMIT", cfg.OTPRateLimit)
	cfg.OTPRateWindow = getEnvDuration("OTP_RATE_WINDOW", cfg.OTPRateWindow)
	cfg.SessionBackend = getEnv("SESSION_BACKEND", cfg.SessionBackend)
	cfg.RedisURL = getEnv("REDIS_URL", cfg.RedisURL)
	cfg.CloudinaryName = os.Getenv("CLOUDINARY_CLOUD_NAME")
	cfg.CloudinaryKey = os.Getenv("CLOUDINARY_API_KEY")
	cfg.CloudinarySecret = os.Getenv("CLOUDINARY_API_SECRET")

	if cfg.JWTSecret == "" {
		log.Fatal("❌ JWT_SECRET environment variable not set")
	}

	App = cfg
	log.Printf("✅ Storefront config loaded (site=%s, page size=%d, otp expiry=%s)", cfg.SiteName, cfg.PageSize, cfg.OTPExpiry)
}

func getEnvInt(key string, defaultValue int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		log.Printf("⚠️ invalid %s=%q, using %d", key, raw, defaultValue)
		return defaultValue
	}
	return v
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Printf("⚠️ invalid %s=%q, using %s", key, raw, defaultValue)
		return defaultValue
	}
	return d
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
