package sheetdb

import (
	"context"
	"sort"
	"strconv"

	"github.com/AnNhien/companion-service/internal/model"
)

type postsRepo struct {
	client *Client
}

func newPostsRepo(client *Client) Posts {
	return &postsRepo{
		client: client,
	}
}

func (r *postsRepo) List(ctx context.Context) ([]*model.Post, error) {
	records, err := r.client.List(ctx, SheetPosts)
	if err != nil {
		return nil, err
	}

	posts := make([]*model.Post, 0, len(records))
	for _, record := range records {
		posts = append(posts, &model.Post{
			ID:        record.String("id"),
			Content:   record.String("content"),
			Author:    record.String("author"),
			Category:  record.String("category"),
			CreatedAt: record.Int64("createdAt"),
			Likes:     record.Int64("likes"),
			Comments:  parseComments(record.String("comments")),
		})
	}

	// newest first
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].CreatedAt > posts[j].CreatedAt
	})

	return posts, nil
}

// FindByID returns nil when no row matches.
func (r *postsRepo) FindByID(ctx context.Context, id string) (*model.Post, error) {
	records, err := r.client.Search(ctx, SheetPosts, map[string]string{"id": id})
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}

	record := records[0]
	return &model.Post{
		ID:        record.String("id"),
		Content:   record.String("content"),
		Author:    record.String("author"),
		Category:  record.String("category"),
		CreatedAt: record.Int64("createdAt"),
		Likes:     record.Int64("likes"),
		Comments:  parseComments(record.String("comments")),
	}, nil
}

func (r *postsRepo) Create(ctx context.Context, post model.Post) error {
	return r.client.Create(ctx, SheetPosts, Record{
		"id":        post.ID,
		"content":   post.Content,
		"author":    post.Author,
		"category":  post.Category,
		"createdAt": strconv.FormatInt(post.CreatedAt, 10),
		"likes":     strconv.FormatInt(post.Likes, 10),
		"comments":  serializeComments(post.Comments),
	})
}

func (r *postsRepo) UpdateLikes(ctx context.Context, id string, likes int64) error {
	return r.client.Update(ctx, SheetPosts, id, Record{
		"likes": strconv.FormatInt(likes, 10),
	})
}

func (r *postsRepo) UpdateComments(ctx context.Context, id string, comments []model.Comment) error {
	return r.client.Update(ctx, SheetPosts, id, Record{
		"comments": serializeComments(comments),
	})
}

func (r *postsRepo) Delete(ctx context.Context, id string) error {
	return r.client.Delete(ctx, SheetPosts, id)
}
