package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// SessionStore keeps per-visitor state (cart, wishlist, pending sign-up)
// under a session ID. Values are JSON encoded.
type SessionStore interface {
	// Get decodes the value under key into dst, or returns ErrNotFound.
	Get(ctx context.Context, sessionID, key string, dst any) error
	Set(ctx context.Context, sessionID, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, sessionID, key string) error
	// Destroy drops every key of the session.
	Destroy(ctx context.Context, sessionID string) error
}

// ─────────────────────────────────────────────────────────────
// Redis
// ─────────────────────────────────────────────────────────────

type RedisSessionStore struct {
	client *redis.Client
}

func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

func sessionKey(sessionID, key string) string {
	return "sess:" + sessionID + ":" + key
}

func (s *RedisSessionStore) Get(ctx context.Context, sessionID, key string, dst any) error {
	raw, err := s.client.Get(ctx, sessionKey(sessionID, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("session get %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("session decode %s: %w", key, err)
	}
	return nil
}

func (s *RedisSessionStore) Set(ctx context.Context, sessionID, key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("session encode %s: %w", key, err)
	}
	if err := s.client.Set(ctx, sessionKey(sessionID, key), raw, ttl).Err(); err != nil {
		return fmt.Errorf("session set %s: %w", key, err)
	}
	return nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, sessionID, key string) error {
	return s.client.Del(ctx, sessionKey(sessionID, key)).Err()
}

func (s *RedisSessionStore) Destroy(ctx context.Context, sessionID string) error {
	iter := s.client.Scan(ctx, 0, sessionKey(sessionID, "*"), 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("session scan: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	return s.client.Del(ctx, keys...).Err()
}

// ─────────────────────────────────────────────────────────────
// In-process (SESSION_BACKEND=memory, single instance development)
// ─────────────────────────────────────────────────────────────

type memoryEntry struct {
	raw       []byte
	expiresAt time.Time
}

type MemorySessionStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{entries: make(map[string]memoryEntry), now: time.Now}
}

func (s *MemorySessionStore) Get(_ context.Context, sessionID, key string, dst any) error {
	s.mu.Lock()
	e, ok := s.entries[sessionKey(sessionID, key)]
	if ok && !e.expiresAt.IsZero() && !s.now().Before(e.expiresAt) {
		delete(s.entries, sessionKey(sessionID, key))
		ok = false
	}
	s.mu.Unlock()

	if !ok {
		return ErrNotFound
	}
	return json.Unmarshal(e.raw, dst)
}

func (s *MemorySessionStore) Set(_ context.Context, sessionID, key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("session encode %s: %w", key, err)
	}
	e := memoryEntry{raw: raw}
	if ttl > 0 {
		e.expiresAt = s.now().Add(ttl)
	}
	s.mu.Lock()
	s.entries[sessionKey(sessionID, key)] = e
	s.mu.Unlock()
	return nil
}

func (s *MemorySessionStore) Delete(_ context.Context, sessionID, key string) error {
	s.mu.Lock()
	delete(s.entries, sessionKey(sessionID, key))
	s.mu.Unlock()
	return nil
}

func (s *MemorySessionStore) Destroy(_ context.Context, sessionID string) error {
	prefix := sessionKey(sessionID, "")
	s.mu.Lock()
	for k := range s.entries {
		if strings.HasPrefix(k, prefix) {
			delete(s.entries, k)
		}
	}
	s.mu.Unlock()
	return nil
}

// Global instance
var sessionStore SessionStore

// InitSessionStore picks the backend named by SESSION_BACKEND
func InitSessionStore(backend string, client *redis.Client) {
	if backend == "memory" {
		sessionStore = NewMemorySessionStore()
		log.Println("⚠️ Using in-memory session store (single instance only)")
		return
	}
	sessionStore = NewRedisSessionStore(client)
	log.Println("✅ Redis session store initialized")
}

// GetSessionStore returns the global session store
func GetSessionStore() SessionStore {
	if sessionStore == nil {
		sessionStore = NewMemorySessionStore()
	}
	return sessionStore
}

// SetSessionStore replaces the global session store
func SetSessionStore(s SessionStore) {
	sessionStore = s
}
