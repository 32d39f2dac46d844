package model

import "github.com/google/uuid"

type Podcast struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Author      string `json:"author"`
	AudioURL    string `json:"audioUrl"`
	Duration    string `json:"duration,omitempty"`
	CreatedAt   int64  `json:"createdAt"`
}

func NewPodcastID() string {
	return "pod_" + uuid.NewString()
}
