// README: Redis-backed session store for deployments that outlive a process.
package planner

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore persists sessions as JSON values. It satisfies the same Store
// contract as MemoryStore, so the service layer is oblivious to the backend.
// AppendTurn is read-modify-write; the per-session locks held by the service
// keep competing writers out within the host process, which is the only
// coordination this design promises.
type RedisStore struct {
	redis *redis.Client
	ttl   time.Duration
}

// NewRedisStore returns a store writing under the planner key namespace.
// ttl of zero means sessions never expire on their own.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{redis: client, ttl: ttl}
}

func sessionKey(id string) string {
	return "planner:session:" + id
}

func (r *RedisStore) Create(ctx context.Context, s *Session) error {
	return r.save(ctx, s)
}

func (r *RedisStore) Get(ctx context.Context, id string) (*Session, error) {
	val, err := r.redis.Get(ctx, sessionKey(id)).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get session: %w", err)
	}
	var s Session
	if err := json.Unmarshal([]byte(val), &s); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", id, err)
	}
	return &s, nil
}

func (r *RedisStore) AppendTurn(ctx context.Context, id string, role Role, content string) error {
	s, err := r.Get(ctx, id)
	if err != nil {
		return err
	}
	s.History = append(s.History, Turn{Role: role, Content: content})
	if role == RoleAssistant {
		s.CurrentItinerary = content
	}
	return r.save(ctx, s)
}

func (r *RedisStore) Delete(ctx context.Context, id string) error {
	n, err := r.redis.Del(ctx, sessionKey(id)).Result()
	if err != nil {
		return fmt.Errorf("redis delete session: %w", err)
	}
	if n == 0 {
		return ErrSessionNotFound
	}
	return nil
}

func (r *RedisStore) save(ctx context.Context, s *Session) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode session %s: %w", s.ID, err)
	}
	if err := r.redis.Set(ctx, sessionKey(s.ID), raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set session: %w", err)
	}
	return nil
}
