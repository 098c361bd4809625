package user

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrHRAccessRequired = errors.New("access denied: HR or admin role required")
)
