package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrIdentityExists   = errors.New("employee with this email or Telegram ID already exists")
)
