package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/matzehuels/punishboard/pkg/observability"
)

// RedisConfig configures a [RedisStore].
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	// Key is the Redis key; it is prefixed with "punishboard:".
	Key string
}

// RedisStore keeps the list as a JSON array in a Redis string.
type RedisStore struct {
	client *redis.Client
	key    string
}

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(ctx context.Context, cfg RedisConfig) (*RedisStore, error) {
	if cfg.Addr == "" {
		cfg.Addr = "localhost:6379"
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("connect redis %s: %w", cfg.Addr, err)
	}
	return NewRedisStoreFromClient(client, cfg.Key), nil
}

// NewRedisStoreFromClient wraps an existing client.
func NewRedisStoreFromClient(client *redis.Client, key string) *RedisStore {
	return &RedisStore{client: client, key: redisKey(key)}
}

func redisKey(key string) string {
	if key == "" {
		key = DefaultKey
	}
	return "punishboard:" + key
}

func (s *RedisStore) Load(ctx context.Context) ([]string, error) {
	raw, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		observability.Store().OnLoad(ctx, "redis", 0, nil)
		return nil, nil
	}
	if err != nil {
		err = fmt.Errorf("redis get %s: %w", s.key, err)
		observability.Store().OnLoad(ctx, "redis", 0, err)
		return nil, err
	}

	var spaces []string
	if err := json.Unmarshal(raw, &spaces); err != nil {
		err = fmt.Errorf("parse space list: %w", err)
		observability.Store().OnLoad(ctx, "redis", 0, err)
		return nil, err
	}
	observability.Store().OnLoad(ctx, "redis", len(spaces), nil)
	return spaces, nil
}

func (s *RedisStore) Save(ctx context.Context, spaces []string) error {
	if spaces == nil {
		spaces = []string{}
	}
	raw, err := json.Marshal(spaces)
	if err != nil {
		return fmt.Errorf("marshal space list: %w", err)
	}
	if err := s.client.Set(ctx, s.key, raw, 0).Err(); err != nil {
		err = fmt.Errorf("redis set %s: %w", s.key, err)
		observability.Store().OnSave(ctx, "redis", len(spaces), err)
		return err
	}
	observability.Store().OnSave(ctx, "redis", len(spaces), nil)
	return nil
}

func (s *RedisStore) Close() error { return s.client.Close() }

var _ Store = (*RedisStore)(nil)
