package redisrepo

import (
	"context"

	"github.com/redis/go-redis/v9"
)

type likesRepo struct {
	rdb *redis.Client
}

func newLikesRepo(rdb *redis.Client) Likes {
	return &likesRepo{
		rdb: rdb,
	}
}

func (r *likesRepo) Add(ctx context.Context, deviceID string, postID string) error {
	return r.rdb.SAdd(ctx, LikedPostsKey(deviceID), postID).Err()
}

func (r *likesRepo) Remove(ctx context.Context, deviceID string, postID string) error {
	return r.rdb.SRem(ctx, LikedPostsKey(deviceID), postID).Err()
}

func (r *likesRepo) Contains(ctx context.Context, deviceID string, postID string) (bool, error) {
	return r.rdb.SIsMember(ctx, LikedPostsKey(deviceID), postID).Result()
}

func (r *likesRepo) Members(ctx context.Context, deviceID string) ([]string, error) {
	return r.rdb.SMembers(ctx, LikedPostsKey(deviceID)).Result()
}
