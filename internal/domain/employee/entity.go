package employee

import "time"

type Employee struct {
	ID               string
	Name             string
	Email            string
	TelegramID       string
	TelegramUsername *string
	Department       *string
	Position         *string
	IsHR             bool
	Status           Status
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Status is the directory lifecycle state. Inactive employees disappear
// from listings but their attendance history stays joinable forever;
// there is no hard delete.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

func (e *Employee) IsActive() bool {
	return e.Status == StatusActive
}
