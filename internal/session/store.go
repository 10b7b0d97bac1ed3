package session

import (
	"context"       // Context for Redis operations
	"encoding/json" // JSON encoding/decoding
	"errors"        // Error values
	"fmt"           // Error wrapping
	"time"          // Session lifetime

	"github.com/google/uuid"       // Session ids
	"github.com/redis/go-redis/v9" // Redis client
)

// ErrNotFound is returned when a session id has no live binding
var ErrNotFound = errors.New("session not found")

// Data is what a session remembers about its owner
type Data struct {
	UserID    uint      `json:"user_id"`    // Bound user
	CreatedAt time.Time `json:"created_at"` // Login time
}

// Store keeps session id to user bindings outside the process
type Store interface {
	Create(ctx context.Context, userID uint) (string, error)
	Get(ctx context.Context, sessionID string) (Data, error)
	Destroy(ctx context.Context, sessionID string) error
}

// RedisStore is a Store backed by Redis keys with a fixed TTL
type RedisStore struct {
	rdb    *redis.Client
	ttl    time.Duration
	prefix string
}

// NewRedisStore creates a Redis backed store whose sessions expire after ttl
func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl, prefix: "session:"}
}

func (s *RedisStore) key(sessionID string) string {
	return s.prefix + sessionID
}

// Create stores a new binding and returns its id
func (s *RedisStore) Create(ctx context.Context, userID uint) (string, error) {
	sessionID := uuid.NewString()
	b, err := json.Marshal(Data{UserID: userID, CreatedAt: time.Now().UTC()}) // Marshal value to JSON
	if err != nil {
		return "", err
	}
	if err := s.rdb.Set(ctx, s.key(sessionID), b, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	return sessionID, nil
}

// Get loads a binding, ErrNotFound when absent or expired
func (s *RedisStore) Get(ctx context.Context, sessionID string) (Data, error) {
	var data Data
	val, err := s.rdb.Get(ctx, s.key(sessionID)).Result() // Get value from Redis
	if errors.Is(err, redis.Nil) {
		return data, ErrNotFound // Key does not exist
	} else if err != nil {
		return data, fmt.Errorf("load session: %w", err) // Other Redis error
	}
	if err := json.Unmarshal([]byte(val), &data); err != nil {
		return data, fmt.Errorf("decode session: %w", err)
	}
	return data, nil
}

// Destroy deletes a binding; deleting an unknown id is not an error
func (s *RedisStore) Destroy(ctx context.Context, sessionID string) error {
	if err := s.rdb.Del(ctx, s.key(sessionID)).Err(); err != nil {
		return fmt.Errorf("destroy session: %w", err)
	}
	return nil
}
