package model

import "github.com/google/uuid"

const (
	RequestTypePodcast = "podcast"
	RequestTypeMusic   = "music"
	RequestTypeOther   = "other"
)

// UserRequest is a listener request (a song, a podcast topic, anything else)
// left for the admins to pick up.
type UserRequest struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Content   string `json:"content"`
	Contact   string `json:"contact"`
	CreatedAt int64  `json:"createdAt"`
}

func NewRequestID() string {
	return "req_" + uuid.NewString()
}
