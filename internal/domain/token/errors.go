package token

import "errors"

var (
	ErrTokenNotFound  = errors.New("token not found")
	ErrInvalidTokenID = errors.New("token id must be positive")
	ErrHolderRequired = errors.New("holder principal is required")
)
