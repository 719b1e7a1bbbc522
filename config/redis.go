package config

import (
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"
)

// RedisClient holds shopper sessions (cart, wishlist, pending sign-ups) and
// the OTP rate-limit counters. It stays nil with SESSION_BACKEND=memory.
var RedisClient *redis.Client

// SessionRedisOptions parses rawURL for the session store. Keys carry their
// own TTLs, so the client only needs the connection details.
func SessionRedisOptions(rawURL string) (*redis.Options, error) {
	if rawURL == "" {
		return nil, fmt.Errorf("REDIS_URL is empty")
	}
	opt, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse REDIS_URL: %w", err)
	}
	if opt.ClientName == "" {
		opt.ClientName = "modeva-storefront"
	}
	return opt, nil
}

// ConnectRedis dials App.RedisURL and stops the server if sessions cannot be kept.
func ConnectRedis() {
	opt, err := SessionRedisOptions(App.RedisURL)
	if err != nil {
		log.Fatalf("❌ [sessions] %v", err)
	}

	client := redis.NewClient(opt)

	ctx, cancel := WithTimeout()
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("❌ [sessions] Redis at %s unreachable: %v", opt.Addr, err)
	}

	RedisClient = client
	log.Printf("✅ [sessions] Redis session store ready (addr=%s, db=%d)", opt.Addr, opt.DB)
}
