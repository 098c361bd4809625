package attendance

import (
	"context"
	"time"
)

// AttendanceService defines business logic for the attendance ledger.
type AttendanceService interface {
	// CheckIn records today's check-in for the employee behind the
	// Telegram id, creating the day's record.
	CheckIn(ctx context.Context, req CheckInRequest) (AttendanceResponse, error)

	// CheckOut closes today's record and derives total hours.
	CheckOut(ctx context.Context, req CheckOutRequest) (AttendanceResponse, error)

	// Today returns today's record for the Telegram id, or nil when the
	// employee has not checked in yet.
	Today(ctx context.Context, telegramID string) (*AttendanceResponse, error)

	// Get returns a single ledger record.
	Get(ctx context.Context, id string) (AttendanceResponse, error)

	// List runs a range query over the ledger, date descending.
	List(ctx context.Context, employeeID *string, startDate, endDate *time.Time) ([]AttendanceResponse, error)

	// ListByEmployee returns one employee's records, date descending.
	// The employee must exist.
	ListByEmployee(ctx context.Context, employeeID string, startDate, endDate *time.Time) ([]AttendanceResponse, error)

	// Correct applies an HR edit, audit-stamping changed times.
	Correct(ctx context.Context, req CorrectionRequest, actorID string) (AttendanceResponse, error)
}
