package service

import (
	"context"

	"github.com/AnNhien/companion-service/internal/dto"
	"github.com/AnNhien/companion-service/internal/model"
	"github.com/AnNhien/companion-service/internal/repository"
	"go.uber.org/zap"
)

type Feed interface {
	ListPosts(ctx context.Context, deviceID string) ([]*dto.GetPost, error)
	CreatePost(ctx context.Context, author string, category string, content string) (*model.Post, error)
	DeletePost(ctx context.Context, id string) error
	ToggleLike(ctx context.Context, deviceID string, postID string) (*dto.ToggleLikeResponse, error)
	AddComment(ctx context.Context, postID string, content string, author string, replyToID string) ([]model.Comment, error)
}

type Library interface {
	ListPodcasts(ctx context.Context) ([]*model.Podcast, error)
	CreatePodcast(ctx context.Context, input dto.CreatePodcastRequest) (*model.Podcast, error)
	DeletePodcast(ctx context.Context, id string) error

	ListSongs(ctx context.Context, query string, mood string) ([]*model.Song, error)
	CreateSong(ctx context.Context, input dto.CreateSongRequest) (*model.Song, error)
	DeleteSong(ctx context.Context, id string) error
	NextSong(ctx context.Context, query string, mood string, currentID string) (*model.Song, error)
	PrevSong(ctx context.Context, query string, mood string, currentID string) (*model.Song, error)

	ListRequests(ctx context.Context) ([]*model.UserRequest, error)
	CreateRequest(ctx context.Context, input dto.CreateUserRequestDto) (*model.UserRequest, error)
	DeleteRequest(ctx context.Context, id string) error
}

type Auth interface {
	Register(ctx context.Context, name string, username string, password string) (*dto.AuthResponse, error)
	Login(ctx context.Context, username string, password string) (*dto.AuthResponse, error)
	Guest(name string) (*dto.AuthResponse, error)
}

type Chat interface {
	StreamReply(ctx context.Context, userName string, message string, onChunk func(string)) error
	Moderate(ctx context.Context, text string) (model.ModerationResult, error)
	SuggestSongs(ctx context.Context, mood string) ([]model.SongSuggestion, error)
}

type Service struct {
	Feed
	Library
	Auth
	Chat
}

func New(logger *zap.Logger, repo *repository.Repository) *Service {
	chat := newChatService(logger)

	return &Service{
		Feed:    newFeedService(logger, repo, chat),
		Library: newLibraryService(logger, repo),
		Auth:    newAuthService(logger, repo),
		Chat:    chat,
	}
}
