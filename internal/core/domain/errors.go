package domain

import "errors"

var (
	ErrUnauthenticated      = errors.New("authentication required")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrEmailNotVerified     = errors.New("email address not verified")
	ErrInvalidToken         = errors.New("invalid or expired token")
	ErrUserExists           = errors.New("username or email already taken")
	ErrUserNotFound         = errors.New("user not found")
	ErrSessionNotFound      = errors.New("session not found")
	ErrForbidden            = errors.New("access forbidden")
	ErrProjectNotFound      = errors.New("project not found")
	ErrMilestoneNotFound    = errors.New("milestone not found")
	ErrFileNotFound         = errors.New("file not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrContactNotFound      = errors.New("contact not found")
	ErrInvalidTransition    = errors.New("invalid status transition")
)
