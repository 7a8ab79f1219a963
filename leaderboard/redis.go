package leaderboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisKey is the namespaced key entries live under
const RedisKey = "leaderboard:" + StorageKey

type redisStore struct {
	client *redis.Client
}

// NewRedisStore stores entries as one JSON value under RedisKey
func NewRedisStore(client *redis.Client) Store {
	return &redisStore{client: client}
}

func (s *redisStore) Load(ctx context.Context) ([]Entry, error) {
	if s.client == nil {
		return nil, ErrNoClient
	}

	data, err := s.client.Get(ctx, RedisKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get leaderboard from Redis: %w", err)
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal leaderboard: %w", err)
	}
	return entries, nil
}

func (s *redisStore) Save(ctx context.Context, entries []Entry) error {
	if s.client == nil {
		return ErrNoClient
	}

	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to marshal leaderboard: %w", err)
	}
	if err := s.client.Set(ctx, RedisKey, string(data), 0).Err(); err != nil {
		return fmt.Errorf("failed to set leaderboard in Redis: %w", err)
	}
	return nil
}

func (s *redisStore) Clear(ctx context.Context) error {
	if s.client == nil {
		return ErrNoClient
	}
	if err := s.client.Del(ctx, RedisKey).Err(); err != nil {
		return fmt.Errorf("failed to delete leaderboard from Redis: %w", err)
	}
	return nil
}
