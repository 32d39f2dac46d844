package model

import "time"

const (
	MessageRoleUser  = "user"
	MessageRoleModel = "model"
)

type Message struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	IsError   bool      `json:"isError,omitempty"`
}

// ModerationResult is the verdict of the content-moderation gateway. A
// rejection is a normal outcome, not an error.
type ModerationResult struct {
	Approved bool   `json:"approved"`
	Reason   string `json:"reason,omitempty"`
}
