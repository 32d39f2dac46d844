package sheetdb

import (
	"context"

	"github.com/AnNhien/companion-service/internal/model"
)

const (
	SheetPosts    = "posts"
	SheetPodcasts = "podcasts"
	SheetSongs    = "songs"
	SheetUsers    = "users"
	SheetRequests = "requests"
)

type Posts interface {
	List(ctx context.Context) ([]*model.Post, error)
	FindByID(ctx context.Context, id string) (*model.Post, error)
	Create(ctx context.Context, post model.Post) error
	UpdateLikes(ctx context.Context, id string, likes int64) error
	UpdateComments(ctx context.Context, id string, comments []model.Comment) error
	Delete(ctx context.Context, id string) error
}

type Podcasts interface {
	List(ctx context.Context) ([]*model.Podcast, error)
	Create(ctx context.Context, podcast model.Podcast) error
	Delete(ctx context.Context, id string) error
}

type Songs interface {
	List(ctx context.Context) ([]*model.Song, error)
	Create(ctx context.Context, song model.Song) error
	Delete(ctx context.Context, id string) error
}

type Users interface {
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	Create(ctx context.Context, user model.User) error
}

type Requests interface {
	List(ctx context.Context) ([]*model.UserRequest, error)
	Create(ctx context.Context, req model.UserRequest) error
	Delete(ctx context.Context, id string) error
}

type SheetRepository struct {
	Posts
	Podcasts
	Songs
	Users
	Requests
}

func New(client *Client) *SheetRepository {
	return &SheetRepository{
		Posts:    newPostsRepo(client),
		Podcasts: newPodcastsRepo(client),
		Songs:    newSongsRepo(client),
		Users:    newUsersRepo(client),
		Requests: newRequestsRepo(client),
	}
}
