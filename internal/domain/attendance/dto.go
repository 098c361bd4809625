package attendance

import (
	"time"

	"github.com/attendly/attendance-backend-go/internal/pkg/validator"
)

type CheckInRequest struct {
	TelegramID string `json:"telegramId"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.TelegramID) {
		errs = append(errs, validator.ValidationError{
			Field:   "telegramId",
			Message: "telegramId is required",
		})
	} else if !validator.IsValidTelegramID(r.TelegramID) {
		errs = append(errs, validator.ValidationError{
			Field:   "telegramId",
			Message: "telegramId must be a numeric Telegram user id",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CheckOutRequest struct {
	TelegramID string `json:"telegramId"`
}

func (r *CheckOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.TelegramID) {
		errs = append(errs, validator.ValidationError{
			Field:   "telegramId",
			Message: "telegramId is required",
		})
	} else if !validator.IsValidTelegramID(r.TelegramID) {
		errs = append(errs, validator.ValidationError{
			Field:   "telegramId",
			Message: "telegramId must be a numeric Telegram user id",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// TimeEdit is one side of a correction payload.
type TimeEdit struct {
	Time *time.Time `json:"time,omitempty"`
}

// CorrectionRequest is the HR edit payload for a ledger record. Supplied
// times are audit-tracked; status and notes overwrite as-is.
type CorrectionRequest struct {
	ID       string    `json:"-"`
	CheckIn  *TimeEdit `json:"checkIn,omitempty"`
	CheckOut *TimeEdit `json:"checkOut,omitempty"`
	Status   *string   `json:"status,omitempty"`
	Notes    *string   `json:"notes,omitempty"`
}

func (r *CorrectionRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Status != nil && !validator.IsInSlice(*r.Status, Statuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: present, absent, late, half-day, pending",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Filter selects ledger records for range queries.
type Filter struct {
	EmployeeID *string
	StartDate  *time.Time
	EndDate    *time.Time
}

type TimeEntryResponse struct {
	Time           *string `json:"time"`
	OriginalTime   *string `json:"originalTime,omitempty"`
	ModifiedBy     *string `json:"modifiedBy,omitempty"`
	ModifiedByName *string `json:"modifiedByName,omitempty"`
	ModifiedAt     *string `json:"modifiedAt,omitempty"`
}

type AttendanceResponse struct {
	ID           string            `json:"id"`
	EmployeeID   string            `json:"employeeId"`
	EmployeeName *string           `json:"employeeName,omitempty"`
	Date         string            `json:"date"`
	CheckIn      TimeEntryResponse `json:"checkIn"`
	CheckOut     TimeEntryResponse `json:"checkOut"`
	TotalHours   *float64          `json:"totalHours"`
	Status       string            `json:"status"`
	Notes        string            `json:"notes"`
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

func toTimeEntryResponse(e TimeEntry, modifiedByName *string) TimeEntryResponse {
	return TimeEntryResponse{
		Time:           formatTime(e.Time),
		OriginalTime:   formatTime(e.OriginalTime),
		ModifiedBy:     e.ModifiedBy,
		ModifiedByName: modifiedByName,
		ModifiedAt:     formatTime(e.ModifiedAt),
	}
}

// ToResponse maps a ledger record to its API shape.
func ToResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:           a.ID,
		EmployeeID:   a.EmployeeID,
		EmployeeName: a.EmployeeName,
		Date:         a.Date.Format("2006-01-02"),
		CheckIn:      toTimeEntryResponse(a.CheckIn, a.CheckInModifiedByName),
		CheckOut:     toTimeEntryResponse(a.CheckOut, a.CheckOutModifiedByName),
		TotalHours:   a.TotalHours,
		Status:       string(a.Status),
		Notes:        a.Notes,
	}
}
