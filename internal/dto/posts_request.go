package dto

type CreatePostRequest struct {
	Content  string `json:"content" binding:"required,min=1"`
	Category string `json:"category" binding:"required"`
}

type CreateCommentRequest struct {
	Content   string `json:"content" binding:"required"`
	ReplyToID string `json:"replyToId"`
}
