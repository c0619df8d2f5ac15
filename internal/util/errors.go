package util

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrEventNotFound      = errors.New("event not found")
	ErrChallengeNotFound  = errors.New("challenge not found")
	ErrAlreadyJoined      = errors.New("already joined this challenge")
	ErrInvalidDate        = errors.New("invalid date format")
)
