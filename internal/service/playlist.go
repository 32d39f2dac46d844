package service

import (
	"strings"

	"github.com/AnNhien/companion-service/internal/model"
)

// MoodAll matches every song, mirroring the "Tất cả" chip in the player.
const MoodAll = "Tất cả"

// Playlist computes filtered views of the song library and next/previous
// navigation over them. Navigation always runs against the filtered list: if
// the current song fell out of the filter, it falls back to the first item,
// and an empty filtered list is a no-op.
type Playlist struct {
	songs []*model.Song
}

func NewPlaylist(songs []*model.Song) *Playlist {
	return &Playlist{
		songs: songs,
	}
}

func (p *Playlist) Filter(query string, mood string) []*model.Song {
	query = strings.ToLower(strings.TrimSpace(query))

	filtered := make([]*model.Song, 0, len(p.songs))
	for _, song := range p.songs {
		if query != "" &&
			!strings.Contains(strings.ToLower(song.Title), query) &&
			!strings.Contains(strings.ToLower(song.Artist), query) {
			continue
		}
		if mood != "" && mood != MoodAll && strings.TrimSpace(song.Mood) != mood {
			continue
		}
		filtered = append(filtered, song)
	}

	return filtered
}

func (p *Playlist) Next(query string, mood string, currentID string) *model.Song {
	return p.step(query, mood, currentID, 1)
}

func (p *Playlist) Prev(query string, mood string, currentID string) *model.Song {
	return p.step(query, mood, currentID, -1)
}

func (p *Playlist) step(query string, mood string, currentID string, delta int) *model.Song {
	filtered := p.Filter(query, mood)
	if len(filtered) == 0 {
		return nil
	}

	current := -1
	for i, song := range filtered {
		if song.ID == currentID {
			current = i
			break
		}
	}
	if current == -1 {
		return filtered[0]
	}

	next := (current + delta + len(filtered)) % len(filtered)
	return filtered[next]
}
