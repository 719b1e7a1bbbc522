package middleware

import (
	"log"
	"net/http"
	"time"

	"github.com/Modeva-Ecommerce/modeva-storefront/config"
	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RateLimiter limits the JSON API per IP, method and route
func RateLimiter(maxRequests int, window time.Duration) gin.HandlerFunc {
	return rateLimit(maxRequests, window, func(c *gin.Context, rate *models.RateLimiter) {
		c.JSON(http.StatusTooManyRequests, models.ApiResponse{
			Message: "Too many requests",
			Error:   true,
			Rate:    rate,
		})
	})
}

// OTPRateLimiter limits the OTP form endpoints, answering in the form shape
func OTPRateLimiter(maxRequests int, window time.Duration) gin.HandlerFunc {
	return rateLimit(maxRequests, window, func(c *gin.Context, _ *models.RateLimiter) {
		c.JSON(http.StatusTooManyRequests, models.ActionFailed("Too many attempts. Please try again in a few minutes."))
	})
}

func rateLimit(maxRequests int, window time.Duration, reject func(*gin.Context, *models.RateLimiter)) gin.HandlerFunc {
	return func(c *gin.Context) {
		client := config.RedisClient
		if client == nil {
			c.Next()
			return
		}

		rate, err := countRequest(c, client, maxRequests, window)
		if err != nil {
			log.Printf("⚠️ [rate-limit] redis unavailable, letting request through: %v", err)
			c.Next()
			return
		}

		// Store in context for controllers
		c.Set("rateLimiter", &rate.RateLimiter)

		if rate.exceeded {
			reject(c, &rate.RateLimiter)
			c.Abort()
			return
		}

		c.Next()
	}
}

type countedRate struct {
	models.RateLimiter
	exceeded bool
}

func countRequest(c *gin.Context, client *redis.Client, maxRequests int, window time.Duration) (*countedRate, error) {
	ctx := c.Request.Context()

	// Key is per-IP, per-method, per-endpoint
	key := "rl:" + c.ClientIP() + ":" + c.Request.Method + ":" + c.FullPath()
	resetKey := key + ":resetAt"

	count, err := client.Incr(ctx, key).Result()
	if err != nil {
		return nil, err
	}

	// First request → set expiry and stable resetAt
	if count == 1 {
		client.Expire(ctx, key, window)
		client.Set(ctx, resetKey, time.Now().Add(window).Unix(), window)
	}

	resetAtUnix, _ := client.Get(ctx, resetKey).Int64()
	resetAt := time.Unix(resetAtUnix, 0)

	return &countedRate{
		RateLimiter: models.RateLimiter{
			Limit:          maxRequests,
			Remaining:      max(maxRequests-int(count), 0),
			ResetAt:        resetAt,
			ResetInSeconds: max(int(time.Until(resetAt).Seconds()), 0),
		},
		exceeded: int(count) > maxRequests,
	}, nil
}
