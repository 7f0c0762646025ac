package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Dispatch errors
	ErrUnknownEventKind = errors.New("unknown event kind")
	ErrEnqueueFailed    = errors.New("notification enqueue failed")
	ErrNoRecipients     = errors.New("event resolves to no recipients")

	// Notification read errors
	ErrNotificationNotFound = errors.New("notification not found")
	ErrInvalidCursor        = errors.New("invalid cursor")

	// Auth errors
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
