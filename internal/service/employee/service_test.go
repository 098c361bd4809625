package employee

import (
	"context"
	"fmt"
	"testing"

	"github.com/attendly/attendance-backend-go/internal/domain/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
	nextID    int
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: make(map[string]employee.Employee)}
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	f.nextID++
	emp.ID = fmt.Sprintf("emp-%d", f.nextID)
	f.employees[emp.ID] = emp
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByTelegramID(ctx context.Context, telegramID string) (employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.TelegramID == telegramID {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(ctx context.Context, includeInactive bool) ([]employee.Employee, error) {
	out := []employee.Employee{}
	for _, emp := range f.employees {
		if !includeInactive && emp.Status != employee.StatusActive {
			continue
		}
		out = append(out, emp)
	}
	return out, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, emp employee.Employee) error {
	if _, ok := f.employees[emp.ID]; !ok {
		return employee.ErrEmployeeNotFound
	}
	f.employees[emp.ID] = emp
	return nil
}

func (f *fakeEmployeeRepo) ExistsByIdentity(ctx context.Context, email, telegramID, excludeID string) (bool, error) {
	for _, emp := range f.employees {
		if emp.ID == excludeID {
			continue
		}
		if emp.Email == email || emp.TelegramID == telegramID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeEmployeeRepo) CountActive(ctx context.Context) (int64, error) {
	var count int64
	for _, emp := range f.employees {
		if emp.Status == employee.StatusActive {
			count++
		}
	}
	return count, nil
}

func validCreateRequest() employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		Name:       "Jane Smith",
		Email:      "jane@example.com",
		TelegramID: "123456",
	}
}

func TestEmployeeService_Create_Success(t *testing.T) {
	ctx := context.Background()
	svc := NewEmployeeService(newFakeEmployeeRepo())

	result, err := svc.Create(ctx, validCreateRequest())

	require.NoError(t, err)
	assert.NotEmpty(t, result.ID)
	assert.Equal(t, "Jane Smith", result.Name)
	assert.Equal(t, "active", result.Status)
}

func TestEmployeeService_Create_DuplicateIdentity(t *testing.T) {
	ctx := context.Background()
	svc := NewEmployeeService(newFakeEmployeeRepo())

	_, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	dup := validCreateRequest()
	dup.Email = "other@example.com" // same telegram id
	_, err = svc.Create(ctx, dup)

	assert.ErrorIs(t, err, employee.ErrIdentityExists)
}

func TestEmployeeService_Create_InvalidTelegramID(t *testing.T) {
	ctx := context.Background()
	svc := NewEmployeeService(newFakeEmployeeRepo())

	req := validCreateRequest()
	req.TelegramID = "not-a-number"
	_, err := svc.Create(ctx, req)

	assert.Error(t, err)
}

func TestEmployeeService_Update_Partial(t *testing.T) {
	ctx := context.Background()
	svc := NewEmployeeService(newFakeEmployeeRepo())

	created, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	department := "Engineering"
	result, err := svc.Update(ctx, employee.UpdateEmployeeRequest{
		ID:         created.ID,
		Department: &department,
	})

	require.NoError(t, err)
	require.NotNil(t, result.Department)
	assert.Equal(t, "Engineering", *result.Department)
	assert.Equal(t, "Jane Smith", result.Name)
}

func TestEmployeeService_Update_IdentityConflict(t *testing.T) {
	ctx := context.Background()
	svc := NewEmployeeService(newFakeEmployeeRepo())

	_, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	second := validCreateRequest()
	second.Email = "john@example.com"
	second.TelegramID = "654321"
	createdSecond, err := svc.Create(ctx, second)
	require.NoError(t, err)

	taken := "123456"
	_, err = svc.Update(ctx, employee.UpdateEmployeeRequest{
		ID:         createdSecond.ID,
		TelegramID: &taken,
	})

	assert.ErrorIs(t, err, employee.ErrIdentityExists)
}

func TestEmployeeService_Deactivate(t *testing.T) {
	ctx := context.Background()
	repo := newFakeEmployeeRepo()
	svc := NewEmployeeService(repo)

	created, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Deactivate(ctx, created.ID))

	// Gone from the default listing, still fetchable by id
	listed, err := svc.List(ctx, false)
	require.NoError(t, err)
	assert.Empty(t, listed)

	fetched, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "inactive", fetched.Status)
}

func TestEmployeeService_Deactivate_NotFound(t *testing.T) {
	ctx := context.Background()
	svc := NewEmployeeService(newFakeEmployeeRepo())

	err := svc.Deactivate(ctx, "missing")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
