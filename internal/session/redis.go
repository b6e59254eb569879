package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// keySession namespaces session entries: session:{session_id} -> {"id","name"}
const keySession = "session:%s"

// RedisStore keeps sessions in Redis so several instances behind a balancer
// can share them. Selected with SESSION_BACKEND=redis.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(addr string, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		ttl:    ttl,
	}
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, fmt.Sprintf(keySession, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	return s.client.Set(ctx, fmt.Sprintf(keySession, key), value, s.ttl).Err()
}

func (s *RedisStore) Clear(ctx context.Context, key string) error {
	return s.client.Del(ctx, fmt.Sprintf(keySession, key)).Err()
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
