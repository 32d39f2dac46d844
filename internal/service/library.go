package service

import (
	"context"
	"time"

	"github.com/AnNhien/companion-service/internal/dto"
	"github.com/AnNhien/companion-service/internal/model"
	"github.com/AnNhien/companion-service/internal/repository"
	"github.com/AnNhien/companion-service/internal/repository/redisrepo"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const libraryCacheTTL = time.Hour

type libraryService struct {
	logger *zap.Logger
	repo   *repository.Repository
}

func newLibraryService(logger *zap.Logger, repo *repository.Repository) Library {
	return &libraryService{
		logger: logger,
		repo:   repo,
	}
}

func (s *libraryService) ListPodcasts(ctx context.Context) ([]*model.Podcast, error) {
	podcasts, err := redisrepo.GetMany[model.Podcast](s.repo.Redis.Default, ctx, redisrepo.PODCASTS_KEY)
	if err == nil {
		return podcasts, nil
	}
	if err != redis.Nil {
		s.logger.Sugar().Errorf("failed to get podcasts from redis: %s", err.Error())
	}

	podcasts, err = s.repo.Sheet.Podcasts.List(ctx)
	if err != nil {
		s.logger.Sugar().Errorf("failed to list podcasts: %s", err.Error())
		return nil, ErrInternal
	}

	if err := s.repo.Redis.Default.SetJSON(ctx, redisrepo.PODCASTS_KEY, podcasts, libraryCacheTTL); err != nil {
		s.logger.Sugar().Errorf("failed to set podcasts in redis: %s", err.Error())
	}

	return podcasts, nil
}

func (s *libraryService) CreatePodcast(ctx context.Context, input dto.CreatePodcastRequest) (*model.Podcast, error) {
	podcast := model.Podcast{
		ID:          model.NewPodcastID(),
		Title:       input.Title,
		Description: input.Description,
		Author:      input.Author,
		AudioURL:    input.AudioURL,
		Duration:    input.Duration,
		CreatedAt:   time.Now().UnixMilli(),
	}

	if err := s.repo.Sheet.Podcasts.Create(ctx, podcast); err != nil {
		s.logger.Sugar().Errorf("failed to create podcast: %s", err.Error())
		return nil, ErrInternal
	}

	s.invalidate(ctx, redisrepo.PODCASTS_KEY)

	return &podcast, nil
}

func (s *libraryService) DeletePodcast(ctx context.Context, id string) error {
	if err := s.repo.Sheet.Podcasts.Delete(ctx, id); err != nil {
		s.logger.Sugar().Errorf("failed to delete podcast(%s): %s", id, err.Error())
		return ErrInternal
	}

	s.invalidate(ctx, redisrepo.PODCASTS_KEY)

	return nil
}

func (s *libraryService) ListSongs(ctx context.Context, query string, mood string) ([]*model.Song, error) {
	songs, err := s.allSongs(ctx)
	if err != nil {
		return nil, err
	}

	return NewPlaylist(songs).Filter(query, mood), nil
}

func (s *libraryService) CreateSong(ctx context.Context, input dto.CreateSongRequest) (*model.Song, error) {
	song := model.Song{
		ID:        model.NewSongID(),
		Title:     input.Title,
		Artist:    input.Artist,
		AudioURL:  input.AudioURL,
		Mood:      input.Mood,
		CreatedAt: time.Now().UnixMilli(),
	}

	if err := s.repo.Sheet.Songs.Create(ctx, song); err != nil {
		s.logger.Sugar().Errorf("failed to create song: %s", err.Error())
		return nil, ErrInternal
	}

	s.invalidate(ctx, redisrepo.SONGS_KEY)

	return &song, nil
}

func (s *libraryService) DeleteSong(ctx context.Context, id string) error {
	if err := s.repo.Sheet.Songs.Delete(ctx, id); err != nil {
		s.logger.Sugar().Errorf("failed to delete song(%s): %s", id, err.Error())
		return ErrInternal
	}

	s.invalidate(ctx, redisrepo.SONGS_KEY)

	return nil
}

func (s *libraryService) NextSong(ctx context.Context, query string, mood string, currentID string) (*model.Song, error) {
	songs, err := s.allSongs(ctx)
	if err != nil {
		return nil, err
	}

	return NewPlaylist(songs).Next(query, mood, currentID), nil
}

func (s *libraryService) PrevSong(ctx context.Context, query string, mood string, currentID string) (*model.Song, error) {
	songs, err := s.allSongs(ctx)
	if err != nil {
		return nil, err
	}

	return NewPlaylist(songs).Prev(query, mood, currentID), nil
}

func (s *libraryService) allSongs(ctx context.Context) ([]*model.Song, error) {
	songs, err := redisrepo.GetMany[model.Song](s.repo.Redis.Default, ctx, redisrepo.SONGS_KEY)
	if err == nil {
		return songs, nil
	}
	if err != redis.Nil {
		s.logger.Sugar().Errorf("failed to get songs from redis: %s", err.Error())
	}

	songs, err = s.repo.Sheet.Songs.List(ctx)
	if err != nil {
		s.logger.Sugar().Errorf("failed to list songs: %s", err.Error())
		return nil, ErrInternal
	}

	if err := s.repo.Redis.Default.SetJSON(ctx, redisrepo.SONGS_KEY, songs, libraryCacheTTL); err != nil {
		s.logger.Sugar().Errorf("failed to set songs in redis: %s", err.Error())
	}

	return songs, nil
}

func (s *libraryService) ListRequests(ctx context.Context) ([]*model.UserRequest, error) {
	requests, err := s.repo.Sheet.Requests.List(ctx)
	if err != nil {
		s.logger.Sugar().Errorf("failed to list requests: %s", err.Error())
		return nil, ErrInternal
	}

	return requests, nil
}

func (s *libraryService) CreateRequest(ctx context.Context, input dto.CreateUserRequestDto) (*model.UserRequest, error) {
	request := model.UserRequest{
		ID:        model.NewRequestID(),
		Type:      input.Type,
		Content:   input.Content,
		Contact:   input.Contact,
		CreatedAt: time.Now().UnixMilli(),
	}

	if err := s.repo.Sheet.Requests.Create(ctx, request); err != nil {
		s.logger.Sugar().Errorf("failed to create request: %s", err.Error())
		return nil, ErrInternal
	}

	return &request, nil
}

func (s *libraryService) DeleteRequest(ctx context.Context, id string) error {
	if err := s.repo.Sheet.Requests.Delete(ctx, id); err != nil {
		s.logger.Sugar().Errorf("failed to delete request(%s): %s", id, err.Error())
		return ErrInternal
	}

	return nil
}

func (s *libraryService) invalidate(ctx context.Context, key string) {
	if err := s.repo.Redis.Default.Del(ctx, key).Err(); err != nil {
		s.logger.Sugar().Errorf("failed to invalidate %s cache: %s", key, err.Error())
	}
}
