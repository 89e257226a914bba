package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "legaldoc:session:"

// RedisStore keeps sessions in Redis with a TTL
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a Redis-backed store
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

// Save implements Store
func (r *RedisStore) Save(ctx context.Context, s *Session) error {
	if s.Token == "" {
		s.Token = newToken()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("session: failed to encode: %w", err)
	}
	if err := r.client.Set(ctx, keyPrefix+s.Token, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("session: failed to save: %w", err)
	}
	return nil
}

// Get implements Store
func (r *RedisStore) Get(ctx context.Context, token string) (*Session, error) {
	data, err := r.client.Get(ctx, keyPrefix+token).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("session: failed to load: %w", err)
	}
	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("session: failed to decode: %w", err)
	}
	return &s, nil
}

// Delete implements Store
func (r *RedisStore) Delete(ctx context.Context, token string) error {
	return r.client.Del(ctx, keyPrefix+token).Err()
}
