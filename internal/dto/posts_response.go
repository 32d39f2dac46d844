package dto

import "github.com/AnNhien/companion-service/internal/model"

type GetPost struct {
	Post    model.Post            `json:"post"`
	IsLiked bool                  `json:"isLiked"`
	Threads []model.CommentThread `json:"threads"`
}

type ToggleLikeResponse struct {
	Liked bool  `json:"liked"`
	Likes int64 `json:"likes"`
}

// CommentRejected is returned when moderation turns a comment down or the
// remote write fails; Draft echoes the submitted text so the client can put
// it back into the input instead of losing it.
type CommentRejected struct {
	Ok     bool   `json:"ok"`
	Reason string `json:"reason"`
	Draft  string `json:"draft"`
}
