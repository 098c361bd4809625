package attendance

import (
	"math"
	"time"
)

// TimeEntry is one side of a day's attendance (check-in or check-out).
// OriginalTime keeps the pre-correction value: it is written exactly once,
// on the first HR edit of an already-set time, and never overwritten.
type TimeEntry struct {
	Time         *time.Time
	ModifiedBy   *string
	OriginalTime *time.Time
	ModifiedAt   *time.Time
}

type Attendance struct {
	ID         string
	EmployeeID string
	Date       time.Time
	CheckIn    TimeEntry
	CheckOut   TimeEntry
	TotalHours *float64
	Status     Status
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined fields for list/detail views
	EmployeeName           *string
	CheckInModifiedByName  *string
	CheckOutModifiedByName *string
}

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusLate    Status = "late"
	StatusHalfDay Status = "half-day"
	StatusPending Status = "pending"
)

var Statuses = []string{
	string(StatusPresent),
	string(StatusAbsent),
	string(StatusLate),
	string(StatusHalfDay),
	string(StatusPending),
}

// RoundHours converts a duration to hours rounded to two decimals.
func RoundHours(d time.Duration) float64 {
	return math.Round(d.Hours()*100) / 100
}

// ApplyCheckIn records the employee's check-in for the day.
func (a *Attendance) ApplyCheckIn(now time.Time) error {
	if a.CheckIn.Time != nil {
		return ErrAlreadyCheckedIn
	}
	a.CheckIn.Time = &now
	a.Status = StatusPresent
	return nil
}

// ApplyCheckOut records the check-out and derives the hours worked.
func (a *Attendance) ApplyCheckOut(now time.Time) error {
	if a.CheckIn.Time == nil {
		return ErrNotCheckedIn
	}
	if a.CheckOut.Time != nil {
		return ErrAlreadyCheckedOut
	}
	a.CheckOut.Time = &now
	hours := RoundHours(now.Sub(*a.CheckIn.Time))
	a.TotalHours = &hours
	return nil
}

// ApplyCorrection performs an HR edit of the record. Each supplied time
// snapshots its pre-edit value into OriginalTime on first correction and
// stamps the auditing fields. Status and notes overwrite without audit.
// A correction that would put check-out before check-in is rejected.
func (a *Attendance) ApplyCorrection(req CorrectionRequest, actorID string, now time.Time) error {
	if req.CheckIn != nil && req.CheckIn.Time != nil {
		a.CheckIn.correct(*req.CheckIn.Time, actorID, now)
	}
	if req.CheckOut != nil && req.CheckOut.Time != nil {
		a.CheckOut.correct(*req.CheckOut.Time, actorID, now)
	}

	if a.CheckIn.Time != nil && a.CheckOut.Time != nil {
		if a.CheckOut.Time.Before(*a.CheckIn.Time) {
			return ErrCheckOutBeforeCheckIn
		}
		hours := RoundHours(a.CheckOut.Time.Sub(*a.CheckIn.Time))
		a.TotalHours = &hours
	}

	if req.Status != nil {
		a.Status = Status(*req.Status)
	}
	if req.Notes != nil {
		a.Notes = *req.Notes
	}
	return nil
}

func (e *TimeEntry) correct(newTime time.Time, actorID string, now time.Time) {
	if e.OriginalTime == nil && e.Time != nil {
		orig := *e.Time
		e.OriginalTime = &orig
	}
	e.Time = &newTime
	e.ModifiedBy = &actorID
	e.ModifiedAt = &now
}
