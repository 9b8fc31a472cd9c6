package service

import "errors"

var (
	ErrEmailNotFound      = errors.New("no account found for this email")
	ErrEmailAlreadyExists = errors.New("an account with this email already exists")
	ErrMissingFields      = errors.New("required fields are missing")
	ErrUnauthenticated    = errors.New("session is not authenticated")
	// ErrAccountNotResolved means a dashboard fetch was attempted before the
	// account id was established. Callers must surface it, never default.
	ErrAccountNotResolved = errors.New("account is not resolved for this session")
)
