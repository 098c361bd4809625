package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/domain/employee"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
	loc *time.Location
	now func() time.Time
}

func NewAttendanceService(attendanceRepo attendance.AttendanceRepository, employeeRepo employee.EmployeeRepository, loc *time.Location) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		loc:                  loc,
		now:                  time.Now,
	}
}

// today returns the current instant in the configured zone and the calendar
// day it falls on. The day is normalized to midnight UTC to match the DATE
// column.
func (s *AttendanceServiceImpl) today() (time.Time, time.Time) {
	now := s.now().In(s.loc)
	date := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return now, date
}

// CheckIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	emp, err := s.GetByTelegramID(ctx, req.TelegramID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now, date := s.today()

	existing, err := s.GetByEmployeeAndDate(ctx, emp.ID, date)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if existing != nil {
		if existing.CheckIn.Time != nil {
			return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
		}
		// Record exists from an HR correction but has no check-in yet
		if err := existing.ApplyCheckIn(now); err != nil {
			return attendance.AttendanceResponse{}, err
		}
		if err := s.AttendanceRepository.Update(ctx, *existing); err != nil {
			return attendance.AttendanceResponse{}, err
		}
		existing.EmployeeName = &emp.Name
		return attendance.ToResponse(*existing), nil
	}

	att := attendance.Attendance{
		EmployeeID: emp.ID,
		Date:       date,
	}
	if err := att.ApplyCheckIn(now); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	// A concurrent first check-in surfaces here as ErrAlreadyCheckedIn
	// from the unique (employee_id, date) constraint.
	created, err := s.AttendanceRepository.Create(ctx, att)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	created.EmployeeName = &emp.Name
	return attendance.ToResponse(created), nil
}

// CheckOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	emp, err := s.GetByTelegramID(ctx, req.TelegramID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now, date := s.today()

	existing, err := s.GetByEmployeeAndDate(ctx, emp.ID, date)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if existing == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNotCheckedIn
	}

	if err := existing.ApplyCheckOut(now); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if err := s.AttendanceRepository.Update(ctx, *existing); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	existing.EmployeeName = &emp.Name
	return attendance.ToResponse(*existing), nil
}

// Today implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Today(ctx context.Context, telegramID string) (*attendance.AttendanceResponse, error) {
	emp, err := s.GetByTelegramID(ctx, telegramID)
	if err != nil {
		return nil, err
	}

	_, date := s.today()

	existing, err := s.GetByEmployeeAndDate(ctx, emp.ID, date)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	existing.EmployeeName = &emp.Name
	resp := attendance.ToResponse(*existing)
	return &resp, nil
}

// Get implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Get(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	att, err := s.AttendanceRepository.GetByID(ctx, id)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return attendance.ToResponse(att), nil
}

// List implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) List(ctx context.Context, employeeID *string, startDate, endDate *time.Time) ([]attendance.AttendanceResponse, error) {
	records, err := s.AttendanceRepository.List(ctx, attendance.Filter{
		EmployeeID: employeeID,
		StartDate:  startDate,
		EndDate:    endDate,
	})
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, att := range records {
		responses = append(responses, attendance.ToResponse(att))
	}
	return responses, nil
}

// ListByEmployee implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListByEmployee(ctx context.Context, employeeID string, startDate, endDate *time.Time) ([]attendance.AttendanceResponse, error) {
	if _, err := s.EmployeeRepository.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}
	return s.List(ctx, &employeeID, startDate, endDate)
}

// Correct implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Correct(ctx context.Context, req attendance.CorrectionRequest, actorID string) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	att, err := s.AttendanceRepository.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if err := att.ApplyCorrection(req, actorID, s.now()); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if err := s.AttendanceRepository.Update(ctx, att); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to save correction: %w", err)
	}

	// Re-read to pick up the modifier names joined from users
	updated, err := s.AttendanceRepository.GetByID(ctx, att.ID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.ToResponse(updated), nil
}
