package service

import (
	"errors"
	"fmt"
)

var (
	ErrInternal        = errors.New("internal server error")
	ErrAuthRequired    = errors.New("authentication required")
	ErrEmptyComment    = errors.New("comment must not be empty")
	ErrCommentTooLong  = errors.New("comment exceeds the maximum length")
	ErrEmptyPost       = errors.New("post must not be empty")
	ErrPostNotFound    = errors.New("post not found")
	ErrChatUnavailable = errors.New("chat gateway is not configured")
)

// ModerationRejection is a negative moderation verdict, not a failure. Draft
// carries the submitted text back to the caller so nothing typed is lost.
type ModerationRejection struct {
	Reason string
	Draft  string
}

func (e *ModerationRejection) Error() string {
	return fmt.Sprintf("content rejected by moderation: %s", e.Reason)
}

// RemoteWriteError means the content gateway refused or lost a write; like a
// rejection, it hands the draft back.
type RemoteWriteError struct {
	Draft string
	Err   error
}

func (e *RemoteWriteError) Error() string {
	return fmt.Sprintf("remote write failed: %v", e.Err)
}

func (e *RemoteWriteError) Unwrap() error {
	return e.Err
}
