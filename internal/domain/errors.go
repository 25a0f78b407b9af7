package domain

import "errors"

var (
	// ErrInvalidCredentials covers unknown users and wrong passwords alike.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")

	ErrNotFound = errors.New("not found")

	// ErrForbidden is returned both when a game run does not exist and when it
	// belongs to someone else, so non-owners cannot probe for run ids.
	ErrForbidden = errors.New("forbidden")
)
