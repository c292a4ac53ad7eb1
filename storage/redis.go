package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/arkasala/badmintongo-storefront/cart"
)

// RedisStore persists carts as JSON blobs under their cart key. Entries
// have no TTL: a cart survives page reloads until checkout clears it.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(addr, password string, db int) *RedisStore {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	return &RedisStore{client: rdb}
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisStore) Load(ctx context.Context, key string) ([]cart.Item, error) {
	val, err := s.client.Get(ctx, key).Result()

	if err == redis.Nil {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read cart '%v': %w", key, err)
	}

	var items []cart.Item

	if err := json.Unmarshal([]byte(val), &items); err != nil {
		return nil, fmt.Errorf("failed to decode cart '%v': %w", key, err)
	}

	return items, nil
}

func (s *RedisStore) Save(ctx context.Context, key string, items []cart.Item) error {
	data, err := json.Marshal(items)

	if err != nil {
		return fmt.Errorf("failed to encode cart '%v': %w", key, err)
	}

	if err := s.client.Set(ctx, key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to write cart '%v': %w", key, err)
	}

	return nil
}
