package auth

import "errors"

var (
	ErrInvalidPIN   = errors.New("invalid PIN for this branch")
	ErrInvalidToken = errors.New("invalid or expired token")
)
