package domain

import "errors"

var (
	// ErrInvalidCredentials covers unknown email, wrong password, and every
	// refresh-token verification failure. Callers must not be able to tell
	// these apart.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidInput       = errors.New("invalid input")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrInternal           = errors.New("internal server error")
)
