package sheetdb

import (
	"context"
	"sort"
	"strconv"

	"github.com/AnNhien/companion-service/internal/model"
)

type podcastsRepo struct {
	client *Client
}

func newPodcastsRepo(client *Client) Podcasts {
	return &podcastsRepo{
		client: client,
	}
}

func (r *podcastsRepo) List(ctx context.Context) ([]*model.Podcast, error) {
	records, err := r.client.List(ctx, SheetPodcasts)
	if err != nil {
		return nil, err
	}

	podcasts := make([]*model.Podcast, 0, len(records))
	for _, record := range records {
		podcasts = append(podcasts, &model.Podcast{
			ID:          record.String("id"),
			Title:       record.String("title"),
			Description: record.String("description"),
			Author:      record.String("author"),
			AudioURL:    record.String("audioUrl"),
			Duration:    record.String("duration"),
			CreatedAt:   record.Int64("createdAt"),
		})
	}

	sort.Slice(podcasts, func(i, j int) bool {
		return podcasts[i].CreatedAt > podcasts[j].CreatedAt
	})

	return podcasts, nil
}

func (r *podcastsRepo) Create(ctx context.Context, podcast model.Podcast) error {
	return r.client.Create(ctx, SheetPodcasts, Record{
		"id":          podcast.ID,
		"title":       podcast.Title,
		"description": podcast.Description,
		"author":      podcast.Author,
		"audioUrl":    podcast.AudioURL,
		"duration":    podcast.Duration,
		"createdAt":   strconv.FormatInt(podcast.CreatedAt, 10),
	})
}

func (r *podcastsRepo) Delete(ctx context.Context, id string) error {
	return r.client.Delete(ctx, SheetPodcasts, id)
}
