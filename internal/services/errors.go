package services

import "errors"

// Typed failures raised by the services. Handlers map these to HTTP statuses;
// anything else is treated as an internal error.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrPostNotFound       = errors.New("post not found")
	ErrDuplicateLike      = errors.New("user already liked this post")
	ErrEmptyMessage       = errors.New("message cannot be empty")
)
