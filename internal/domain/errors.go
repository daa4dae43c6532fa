package domain

import "errors"

// Auth errors. ErrInvalidCredentials covers both "no such user" and "wrong
// password" so a login response never reveals whether an email is registered.
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("unauthenticated")
)

// Note errors. ErrNoteNotFound covers both a missing note and a note owned
// by someone else, so existence of other users' notes cannot be probed.
var (
	ErrNoteNotFound = errors.New("note not found")
)
