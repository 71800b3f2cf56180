package storage

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisSnapshotStore keeps each collection as one JSON string value.
type RedisSnapshotStore struct {
	Client *redis.Client
	Prefix string
}

func NewRedisSnapshotStore(client *redis.Client, prefix string) *RedisSnapshotStore {
	return &RedisSnapshotStore{Client: client, Prefix: prefix}
}

func (s *RedisSnapshotStore) Key(name string) string {
	return s.Prefix + name
}

func (s *RedisSnapshotStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	raw, err := s.Client.Get(ctx, s.Key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return raw, true, nil
}

func (s *RedisSnapshotStore) Save(ctx context.Context, key string, value []byte) error {
	return s.Client.Set(ctx, s.Key(key), value, 0).Err()
}
