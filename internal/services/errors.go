package services

import "errors"

// Failures that handlers recover locally and turn into structured
// responses. Anything else surfacing from a service is an internal error.
var (
	ErrEmailRequired  = errors.New("email is required")
	ErrDuplicateEmail = errors.New("existing user found with same email address")
	ErrWrongEmail     = errors.New("wrong email id")
	ErrWrongPassword  = errors.New("wrong password")
	ErrInvalidToken   = errors.New("invalid token")
	ErrUserNotFound   = errors.New("user not found")
)
