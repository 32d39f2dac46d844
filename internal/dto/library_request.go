package dto

type CreatePodcastRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Author      string `json:"author" binding:"required"`
	AudioURL    string `json:"audioUrl" binding:"required,url"`
	Duration    string `json:"duration"`
}

type CreateSongRequest struct {
	Title    string `json:"title" binding:"required"`
	Artist   string `json:"artist" binding:"required"`
	AudioURL string `json:"audioUrl" binding:"required,url"`
	Mood     string `json:"mood" binding:"required"`
}

type SuggestSongsRequest struct {
	Mood string `json:"mood" binding:"required"`
}

type CreateUserRequestDto struct {
	Type    string `json:"type" binding:"required,oneof=podcast music other"`
	Content string `json:"content" binding:"required"`
	Contact string `json:"contact"`
}
