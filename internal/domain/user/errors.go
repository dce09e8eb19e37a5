package user

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrUsernameExists  = errors.New("username already registered")
	ErrInvalidPassword = errors.New("password must be at least 8 characters")
	ErrInvalidUsername = errors.New("invalid username")
)
