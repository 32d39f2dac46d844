package redisrepo

import "fmt"

const (
	POSTS_KEY       = "posts"
	PODCASTS_KEY    = "podcasts"
	SONGS_KEY       = "songs"
	REQUESTS_KEY    = "requests"
	LIKED_POSTS_KEY = "device:%s-liked-posts" // <deviceID>
)

func LikedPostsKey(deviceID string) string {
	return fmt.Sprintf(LIKED_POSTS_KEY, deviceID)
}
