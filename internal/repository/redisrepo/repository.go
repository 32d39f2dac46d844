package redisrepo

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

type Default interface {
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Get(ctx context.Context, key string) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// Likes tracks which posts a given device has liked. It replaces the
// browser-local liked-set of the web client, one redis set per device.
type Likes interface {
	Add(ctx context.Context, deviceID string, postID string) error
	Remove(ctx context.Context, deviceID string, postID string) error
	Contains(ctx context.Context, deviceID string, postID string) (bool, error)
	Members(ctx context.Context, deviceID string) ([]string, error)
}

type RedisRepository struct {
	Default Default
	Likes   Likes
}

func New(rdb *redis.Client) *RedisRepository {
	return &RedisRepository{
		Default: newDefaultRepo(rdb),
		Likes:   newLikesRepo(rdb),
	}
}
