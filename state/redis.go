package state

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"
	"github.com/supakorn-kn/travel-admin/env"
)

// RedisStore keeps values in Redis under a common key prefix so several
// admin instances share view state and drafts.
type RedisStore struct {
	client *redis.Client
	prefix string
}

func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

// ConnectRedis opens a client from config and checks it answers.
func ConnectRedis(ctx context.Context, config env.StoreConfig) (*RedisStore, error) {

	client := redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr,
		Password: config.RedisPassword,
		DB:       config.RedisDB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return NewRedisStore(client, config.KeyPrefix), nil
}

func (s *RedisStore) Get(ctx context.Context, key string, out any) (bool, error) {

	raw, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}

	if err != nil {
		return false, err
	}

	return true, json.Unmarshal(raw, out)
}

func (s *RedisStore) Set(ctx context.Context, key string, value any) error {

	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, s.prefix+key, raw, 0).Err()
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, s.prefix+key).Err()
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
