package attendance

import "errors"

// Attendance domain errors
var (
	// Check-in / check-out state violations
	ErrAlreadyCheckedIn  = errors.New("already checked in today")
	ErrNotCheckedIn      = errors.New("must check in before checking out")
	ErrAlreadyCheckedOut = errors.New("already checked out today")

	// Correction violations
	ErrCheckOutBeforeCheckIn = errors.New("check-out time cannot be before check-in time")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
