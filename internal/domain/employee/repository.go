package employee

import "context"

// EmployeeRepository defines data access for the employee directory.
type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)

	GetByID(ctx context.Context, id string) (Employee, error)

	GetByTelegramID(ctx context.Context, telegramID string) (Employee, error)

	// List returns employees ordered by name ascending. Inactive records
	// are excluded unless includeInactive is set.
	List(ctx context.Context, includeInactive bool) ([]Employee, error)

	Update(ctx context.Context, emp Employee) error

	// ExistsByIdentity reports whether another record (excluding excludeID,
	// which may be empty) already uses the email or Telegram id.
	ExistsByIdentity(ctx context.Context, email, telegramID, excludeID string) (bool, error)

	// CountActive returns the number of active employees.
	CountActive(ctx context.Context) (int64, error)
}
