package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/AnNhien/companion-service/internal/dto"
	"github.com/AnNhien/companion-service/internal/model"
	"github.com/AnNhien/companion-service/internal/repository"
	"github.com/AnNhien/companion-service/internal/repository/redisrepo"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const postsCacheTTL = time.Minute

// Moderator is the slice of the chat gateway the feed needs.
type Moderator interface {
	Moderate(ctx context.Context, text string) (model.ModerationResult, error)
}

type feedService struct {
	logger    *zap.Logger
	repo      *repository.Repository
	moderator Moderator

	mu        sync.Mutex
	postLocks map[string]*sync.Mutex
}

func newFeedService(logger *zap.Logger, repo *repository.Repository, moderator Moderator) Feed {
	return &feedService{
		logger:    logger,
		repo:      repo,
		moderator: moderator,
		postLocks: make(map[string]*sync.Mutex),
	}
}

// lockPost serializes comment appends per post. The spreadsheet gateway has
// no compare-and-swap, so the fetch-append-patch cycle must not interleave.
func (s *feedService) lockPost(postID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.postLocks[postID]
	if !ok {
		lock = &sync.Mutex{}
		s.postLocks[postID] = lock
	}

	return lock
}

func (s *feedService) ListPosts(ctx context.Context, deviceID string) ([]*dto.GetPost, error) {
	posts, err := redisrepo.GetMany[model.Post](s.repo.Redis.Default, ctx, redisrepo.POSTS_KEY)
	if err != nil {
		if err != redis.Nil {
			s.logger.Sugar().Errorf("failed to get posts from redis: %s", err.Error())
		}

		posts, err = s.repo.Sheet.Posts.List(ctx)
		if err != nil {
			s.logger.Sugar().Errorf("failed to list posts: %s", err.Error())
			return nil, ErrInternal
		}

		if err := s.repo.Redis.Default.SetJSON(ctx, redisrepo.POSTS_KEY, posts, postsCacheTTL); err != nil {
			s.logger.Sugar().Errorf("failed to set posts in redis: %s", err.Error())
		}
	}

	likedSet := make(map[string]struct{})
	if deviceID != "" {
		liked, err := s.repo.Redis.Likes.Members(ctx, deviceID)
		if err != nil {
			s.logger.Sugar().Errorf("failed to get device(%s) liked posts: %s", deviceID, err.Error())
		}
		for _, id := range liked {
			likedSet[id] = struct{}{}
		}
	}

	result := make([]*dto.GetPost, 0, len(posts))
	for _, post := range posts {
		_, isLiked := likedSet[post.ID]
		result = append(result, &dto.GetPost{
			Post:    *post,
			IsLiked: isLiked,
			Threads: model.BuildCommentThreads(post.Comments),
		})
	}

	return result, nil
}

func (s *feedService) CreatePost(ctx context.Context, author string, category string, content string) (*model.Post, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyPost
	}
	if author == "" {
		return nil, ErrAuthRequired
	}

	verdict, err := s.moderator.Moderate(ctx, content)
	if err != nil {
		s.logger.Sugar().Errorf("failed to moderate post: %s", err.Error())
		return nil, ErrInternal
	}
	if !verdict.Approved {
		return nil, &ModerationRejection{Reason: verdict.Reason, Draft: content}
	}

	post := model.Post{
		ID:        model.NewPostID(),
		Content:   content,
		Author:    author,
		Category:  category,
		CreatedAt: time.Now().UnixMilli(),
		Likes:     0,
		Comments:  []model.Comment{},
	}

	if err := s.repo.Sheet.Posts.Create(ctx, post); err != nil {
		s.logger.Sugar().Errorf("failed to create post: %s", err.Error())
		return nil, &RemoteWriteError{Draft: content, Err: err}
	}

	s.invalidatePostsCache(ctx)

	return &post, nil
}

func (s *feedService) DeletePost(ctx context.Context, id string) error {
	if err := s.repo.Sheet.Posts.Delete(ctx, id); err != nil {
		s.logger.Sugar().Errorf("failed to delete post(%s): %s", id, err.Error())
		return ErrInternal
	}

	s.invalidatePostsCache(ctx)

	return nil
}

// ToggleLike flips the device's membership in the liked-set, clamps the
// count at zero and patches the remote row. A failed patch rolls the
// membership flip back so the device's local state never drifts from what
// the feed shows.
func (s *feedService) ToggleLike(ctx context.Context, deviceID string, postID string) (*dto.ToggleLikeResponse, error) {
	liked, err := s.repo.Redis.Likes.Contains(ctx, deviceID, postID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to read device(%s) liked posts: %s", deviceID, err.Error())
		return nil, ErrInternal
	}

	post, err := s.repo.Sheet.Posts.FindByID(ctx, postID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find post(%s): %s", postID, err.Error())
		return nil, ErrInternal
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	var newLikes int64
	if liked {
		newLikes = post.Likes - 1
		if newLikes < 0 {
			newLikes = 0
		}
		err = s.repo.Redis.Likes.Remove(ctx, deviceID, postID)
	} else {
		newLikes = post.Likes + 1
		err = s.repo.Redis.Likes.Add(ctx, deviceID, postID)
	}
	if err != nil {
		s.logger.Sugar().Errorf("failed to flip device(%s) like for post(%s): %s", deviceID, postID, err.Error())
		return nil, ErrInternal
	}

	if err := s.repo.Sheet.Posts.UpdateLikes(ctx, postID, newLikes); err != nil {
		s.logger.Sugar().Errorf("failed to update likes for post(%s): %s", postID, err.Error())
		s.rollbackLikeFlip(ctx, deviceID, postID, liked)
		return nil, ErrInternal
	}

	s.invalidatePostsCache(ctx)

	return &dto.ToggleLikeResponse{
		Liked: !liked,
		Likes: newLikes,
	}, nil
}

func (s *feedService) rollbackLikeFlip(ctx context.Context, deviceID string, postID string, wasLiked bool) {
	var err error
	if wasLiked {
		err = s.repo.Redis.Likes.Add(ctx, deviceID, postID)
	} else {
		err = s.repo.Redis.Likes.Remove(ctx, deviceID, postID)
	}
	if err != nil {
		s.logger.Sugar().Errorf("failed to roll back device(%s) like for post(%s): %s", deviceID, postID, err.Error())
	}
}

// AddComment validates before any network call, moderates, then appends
// under a per-post lock. Rejections and failed writes return the draft.
func (s *feedService) AddComment(ctx context.Context, postID string, content string, author string, replyToID string) ([]model.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyComment
	}
	if len([]rune(content)) > model.MaxCommentLength {
		return nil, ErrCommentTooLong
	}
	if author == "" {
		return nil, ErrAuthRequired
	}

	verdict, err := s.moderator.Moderate(ctx, content)
	if err != nil {
		s.logger.Sugar().Errorf("failed to moderate comment: %s", err.Error())
		return nil, &RemoteWriteError{Draft: content, Err: err}
	}
	if !verdict.Approved {
		return nil, &ModerationRejection{Reason: verdict.Reason, Draft: content}
	}

	lock := s.lockPost(postID)
	lock.Lock()
	defer lock.Unlock()

	post, err := s.repo.Sheet.Posts.FindByID(ctx, postID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find post(%s): %s", postID, err.Error())
		return nil, &RemoteWriteError{Draft: content, Err: err}
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	comment := model.Comment{
		ID:        model.NewCommentID(),
		Author:    author,
		Content:   content,
		CreatedAt: time.Now().UnixMilli(),
	}
	if replyToID != "" {
		comment.ReplyToID = replyToID
		for _, c := range post.Comments {
			if c.ID == replyToID {
				comment.ReplyToAuthor = c.Author
				break
			}
		}
	}

	updated := append(post.Comments, comment)

	if err := s.repo.Sheet.Posts.UpdateComments(ctx, postID, updated); err != nil {
		s.logger.Sugar().Errorf("failed to update comments for post(%s): %s", postID, err.Error())
		return nil, &RemoteWriteError{Draft: content, Err: err}
	}

	s.invalidatePostsCache(ctx)

	return updated, nil
}

func (s *feedService) invalidatePostsCache(ctx context.Context) {
	if err := s.repo.Redis.Default.Del(ctx, redisrepo.POSTS_KEY).Err(); err != nil {
		s.logger.Sugar().Errorf("failed to invalidate posts cache: %s", err.Error())
	}
}
