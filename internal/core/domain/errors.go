package domain

import "errors"

var (
	ErrInvalidPhone       = errors.New("phone number must be at least 10 digits")
	ErrWeakPassword       = errors.New("password must be at least 6 characters")
	ErrDuplicateUser      = errors.New("an account with this name already exists")
	ErrUserNotFound       = errors.New("no account matches this email")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNoSeedUser         = errors.New("no demo account exists for this role")
	ErrInvalidRole        = errors.New("unknown role")

	// ErrCorruptSession marks a persisted session that failed to decode.
	// It never crosses the session store boundary: stores recover it
	// locally by reporting the session as absent.
	ErrCorruptSession = errors.New("persisted session is unreadable")
)
