package handler

import "errors"

var (
	errNotAuthorized    = errors.New("user is not authorized")
	errDeviceIDRequired = errors.New("X-Device-ID header is required")
	errPostNotFound     = errors.New("post not found")
)
