package model

import "github.com/google/uuid"

type Song struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Artist    string `json:"artist"`
	AudioURL  string `json:"audioUrl"`
	Mood      string `json:"mood"`
	CreatedAt int64  `json:"createdAt"`
}

// SongSuggestion is a track recommended by the suggestion gateway; it points
// at an external stream rather than a row in the songs library.
type SongSuggestion struct {
	Title  string `json:"title"`
	Artist string `json:"artist"`
	Mood   string `json:"mood"`
	URL    string `json:"url"`
}

func NewSongID() string {
	return "song_" + uuid.NewString()
}
