package employee

import "context"

// EmployeeService defines business logic for the employee directory.
type EmployeeService interface {
	// Create registers a new employee. Fails with ErrIdentityExists when
	// the email or Telegram id is already taken.
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	Get(ctx context.Context, id string) (EmployeeResponse, error)

	// GetByTelegramID resolves an employee from the Telegram user id.
	GetByTelegramID(ctx context.Context, telegramID string) (EmployeeResponse, error)

	// List returns the directory, name ascending, active records only
	// unless includeInactive is set.
	List(ctx context.Context, includeInactive bool) ([]EmployeeResponse, error)

	// Update applies partial edits, re-checking identity uniqueness when
	// the email or Telegram id changes.
	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// Deactivate marks the employee inactive. Attendance history is kept.
	Deactivate(ctx context.Context, id string) error
}
