package prefs

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Fixed key for the display-mode flag.
const darkModeKey = "prefs:display:dark"

// RedisStore persists the flag in Redis so it survives restarts.
type RedisStore struct {
	client *redis.Client
}

func NewRedis(addr, password string) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}
	return &RedisStore{client: client}, nil
}

func (s *RedisStore) DarkMode(ctx context.Context) (bool, error) {
	val, err := s.client.Get(ctx, darkModeKey).Result()
	if err == redis.Nil {
		return false, nil // never set
	}
	if err != nil {
		return false, err
	}
	return val == "1", nil
}

func (s *RedisStore) SetDarkMode(ctx context.Context, dark bool) error {
	val := "0"
	if dark {
		val = "1"
	}
	return s.client.Set(ctx, darkModeKey, val, 0).Err()
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
