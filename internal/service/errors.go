package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrNotPostOwner is returned when a caller attempts a mutating
	// operation on a post authored by a different user.
	ErrNotPostOwner = errors.New("caller is not the post owner")
)
