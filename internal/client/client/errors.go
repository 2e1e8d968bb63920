package client

import "errors"

var (
	ErrUnavailable        = errors.New("server unavailable")
	ErrUnauthorized       = errors.New("unauthorized, please login")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidInput       = errors.New("username and password cannot be empty")
	ErrNotFound           = errors.New("destination not found")
	ErrTooManyAttempts    = errors.New("too many login attempts, try again later")
)
