package sheetdb

import (
	"context"
	"sort"
	"strconv"

	"github.com/AnNhien/companion-service/internal/model"
)

type songsRepo struct {
	client *Client
}

func newSongsRepo(client *Client) Songs {
	return &songsRepo{
		client: client,
	}
}

func (r *songsRepo) List(ctx context.Context) ([]*model.Song, error) {
	records, err := r.client.List(ctx, SheetSongs)
	if err != nil {
		return nil, err
	}

	songs := make([]*model.Song, 0, len(records))
	for _, record := range records {
		songs = append(songs, &model.Song{
			ID:        record.String("id"),
			Title:     record.String("title"),
			Artist:    record.String("artist"),
			AudioURL:  record.String("audioUrl"),
			Mood:      record.String("mood"),
			CreatedAt: record.Int64("createdAt"),
		})
	}

	sort.Slice(songs, func(i, j int) bool {
		return songs[i].CreatedAt > songs[j].CreatedAt
	})

	return songs, nil
}

func (r *songsRepo) Create(ctx context.Context, song model.Song) error {
	return r.client.Create(ctx, SheetSongs, Record{
		"id":        song.ID,
		"title":     song.Title,
		"artist":    song.Artist,
		"audioUrl":  song.AudioURL,
		"mood":      song.Mood,
		"createdAt": strconv.FormatInt(song.CreatedAt, 10),
	})
}

func (r *songsRepo) Delete(ctx context.Context, id string) error {
	return r.client.Delete(ctx, SheetSongs, id)
}
