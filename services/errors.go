package services

import "errors"

// Domain failures. Handlers map these onto HTTP statuses; anything not
// in this list is an unexpected store error and surfaces as a 500.
var (
	ErrNotFound            = errors.New("not found")
	ErrDuplicateIdentity   = errors.New("username or email already exists")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrTournamentFull      = errors.New("tournament full")
	ErrAlreadyJoined       = errors.New("already joined")
	ErrInvalidStatus       = errors.New("invalid status")
)
