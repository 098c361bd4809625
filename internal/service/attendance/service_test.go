package attendance

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/domain/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAttendanceRepo keeps records in memory keyed by (employee, date).
type fakeAttendanceRepo struct {
	records map[string]*attendance.Attendance
	nextID  int
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]*attendance.Attendance)}
}

func (f *fakeAttendanceRepo) key(employeeID string, date time.Time) string {
	return employeeID + "|" + date.Format("2006-01-02")
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	k := f.key(att.EmployeeID, att.Date)
	if _, ok := f.records[k]; ok {
		return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
	}
	f.nextID++
	att.ID = fmt.Sprintf("att-%d", f.nextID)
	stored := att
	f.records[k] = &stored
	return att, nil
}

func (f *fakeAttendanceRepo) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	for _, att := range f.records {
		if att.ID == id {
			return *att, nil
		}
	}
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	att, ok := f.records[f.key(employeeID, date)]
	if !ok {
		return nil, nil
	}
	copied := *att
	return &copied, nil
}

func (f *fakeAttendanceRepo) Update(ctx context.Context, att attendance.Attendance) error {
	k := f.key(att.EmployeeID, att.Date)
	if _, ok := f.records[k]; !ok {
		return attendance.ErrAttendanceNotFound
	}
	stored := att
	f.records[k] = &stored
	return nil
}

func (f *fakeAttendanceRepo) List(ctx context.Context, filter attendance.Filter) ([]attendance.Attendance, error) {
	out := []attendance.Attendance{}
	for _, att := range f.records {
		if filter.EmployeeID != nil && att.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.StartDate != nil && att.Date.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && att.Date.After(*filter.EndDate) {
			continue
		}
		out = append(out, *att)
	}
	return out, nil
}

type fakeEmployeeRepo struct {
	byTelegramID map[string]employee.Employee
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	for _, emp := range f.byTelegramID {
		if emp.ID == id {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByTelegramID(ctx context.Context, telegramID string) (employee.Employee, error) {
	emp, ok := f.byTelegramID[telegramID]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) List(ctx context.Context, includeInactive bool) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, emp employee.Employee) error {
	return nil
}

func (f *fakeEmployeeRepo) ExistsByIdentity(ctx context.Context, email, telegramID, excludeID string) (bool, error) {
	return false, nil
}

func (f *fakeEmployeeRepo) CountActive(ctx context.Context) (int64, error) {
	return int64(len(f.byTelegramID)), nil
}

func newTestService(attRepo *fakeAttendanceRepo, empRepo *fakeEmployeeRepo, now time.Time) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{
		AttendanceRepository: attRepo,
		EmployeeRepository:   empRepo,
		loc:                  time.UTC,
		now:                  func() time.Time { return now },
	}
}

func testEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{
		byTelegramID: map[string]employee.Employee{
			"123456": {ID: "emp-1", Name: "Jane Smith", TelegramID: "123456", Status: employee.StatusActive},
		},
	}
}

func TestAttendanceService_CheckIn_Success(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 11, 9, 5, 0, 0, time.UTC)
	svc := newTestService(newFakeAttendanceRepo(), testEmployeeRepo(), now)

	result, err := svc.CheckIn(ctx, attendance.CheckInRequest{TelegramID: "123456"})

	require.NoError(t, err)
	assert.Equal(t, "emp-1", result.EmployeeID)
	assert.Equal(t, "2024-03-11", result.Date)
	require.NotNil(t, result.CheckIn.Time)
	assert.Equal(t, "present", result.Status)
}

func TestAttendanceService_CheckIn_Twice(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 11, 9, 5, 0, 0, time.UTC)
	svc := newTestService(newFakeAttendanceRepo(), testEmployeeRepo(), now)

	_, err := svc.CheckIn(ctx, attendance.CheckInRequest{TelegramID: "123456"})
	require.NoError(t, err)

	_, err = svc.CheckIn(ctx, attendance.CheckInRequest{TelegramID: "123456"})
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestAttendanceService_CheckIn_UnknownEmployee(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newFakeAttendanceRepo(), testEmployeeRepo(), time.Now())

	_, err := svc.CheckIn(ctx, attendance.CheckInRequest{TelegramID: "999999"})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestAttendanceService_CheckOut_ComputesHours(t *testing.T) {
	ctx := context.Background()
	attRepo := newFakeAttendanceRepo()
	empRepo := testEmployeeRepo()

	checkInAt := time.Date(2024, 3, 11, 9, 5, 0, 0, time.UTC)
	svc := newTestService(attRepo, empRepo, checkInAt)
	_, err := svc.CheckIn(ctx, attendance.CheckInRequest{TelegramID: "123456"})
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Date(2024, 3, 11, 17, 35, 0, 0, time.UTC) }
	result, err := svc.CheckOut(ctx, attendance.CheckOutRequest{TelegramID: "123456"})

	require.NoError(t, err)
	require.NotNil(t, result.TotalHours)
	assert.Equal(t, 8.5, *result.TotalHours)
}

func TestAttendanceService_CheckOut_WithoutCheckIn(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newFakeAttendanceRepo(), testEmployeeRepo(), time.Now().UTC())

	_, err := svc.CheckOut(ctx, attendance.CheckOutRequest{TelegramID: "123456"})
	assert.ErrorIs(t, err, attendance.ErrNotCheckedIn)
}

func TestAttendanceService_Today_NoRecord(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newFakeAttendanceRepo(), testEmployeeRepo(), time.Now().UTC())

	result, err := svc.Today(ctx, "123456")
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestAttendanceService_Today_AfterCheckIn(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 11, 9, 5, 0, 0, time.UTC)
	svc := newTestService(newFakeAttendanceRepo(), testEmployeeRepo(), now)

	_, err := svc.CheckIn(ctx, attendance.CheckInRequest{TelegramID: "123456"})
	require.NoError(t, err)

	result, err := svc.Today(ctx, "123456")
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "present", result.Status)
	assert.Nil(t, result.CheckOut.Time)
}

func TestAttendanceService_Correct_AuditsTimeEdit(t *testing.T) {
	ctx := context.Background()
	attRepo := newFakeAttendanceRepo()
	now := time.Date(2024, 3, 11, 9, 20, 0, 0, time.UTC)
	svc := newTestService(attRepo, testEmployeeRepo(), now)

	created, err := svc.CheckIn(ctx, attendance.CheckInRequest{TelegramID: "123456"})
	require.NoError(t, err)

	corrected := time.Date(2024, 3, 11, 9, 0, 0, 0, time.UTC)
	result, err := svc.Correct(ctx, attendance.CorrectionRequest{
		ID:      created.ID,
		CheckIn: &attendance.TimeEdit{Time: &corrected},
	}, "hr-user-1")

	require.NoError(t, err)
	require.NotNil(t, result.CheckIn.OriginalTime)
	assert.Equal(t, now.Format(time.RFC3339), *result.CheckIn.OriginalTime)
	require.NotNil(t, result.CheckIn.ModifiedBy)
	assert.Equal(t, "hr-user-1", *result.CheckIn.ModifiedBy)
}

func TestAttendanceService_Correct_RejectsBadOrder(t *testing.T) {
	ctx := context.Background()
	attRepo := newFakeAttendanceRepo()
	checkInAt := time.Date(2024, 3, 11, 9, 0, 0, 0, time.UTC)
	svc := newTestService(attRepo, testEmployeeRepo(), checkInAt)

	created, err := svc.CheckIn(ctx, attendance.CheckInRequest{TelegramID: "123456"})
	require.NoError(t, err)

	badOut := time.Date(2024, 3, 11, 8, 0, 0, 0, time.UTC)
	_, err = svc.Correct(ctx, attendance.CorrectionRequest{
		ID:       created.ID,
		CheckOut: &attendance.TimeEdit{Time: &badOut},
	}, "hr-user-1")

	assert.ErrorIs(t, err, attendance.ErrCheckOutBeforeCheckIn)
}

func TestAttendanceService_ListByEmployee(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 11, 9, 5, 0, 0, time.UTC)
	svc := newTestService(newFakeAttendanceRepo(), testEmployeeRepo(), now)

	_, err := svc.CheckIn(ctx, attendance.CheckInRequest{TelegramID: "123456"})
	require.NoError(t, err)

	records, err := svc.ListByEmployee(ctx, "emp-1", nil, nil)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "emp-1", records[0].EmployeeID)

	_, err = svc.ListByEmployee(ctx, "no-such-employee", nil, nil)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
