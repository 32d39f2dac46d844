package model

import "github.com/google/uuid"

type Post struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	Category  string    `json:"category"`
	CreatedAt int64     `json:"createdAt"`
	Likes     int64     `json:"likes"`
	Comments  []Comment `json:"comments"`
}

func NewPostID() string {
	return "post_" + uuid.NewString()
}
