package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for the attendance ledger.
// Uniqueness of (employee_id, date) is a storage constraint: a concurrent
// first check-in race resolves to exactly one created row, the loser gets
// ErrAlreadyCheckedIn from Create.
type AttendanceRepository interface {
	// Create inserts a new record for (employee, date). A unique-constraint
	// violation is returned as ErrAlreadyCheckedIn.
	Create(ctx context.Context, att Attendance) (Attendance, error)

	GetByID(ctx context.Context, id string) (Attendance, error)

	// GetByEmployeeAndDate returns the record for the employee's calendar
	// day, or nil when none exists.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)

	Update(ctx context.Context, att Attendance) error

	// List returns records with date in [filter.StartDate, filter.EndDate],
	// optionally limited to one employee, date descending. No pagination:
	// callers page the slice themselves.
	List(ctx context.Context, filter Filter) ([]Attendance, error)
}
