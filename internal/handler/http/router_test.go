package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/attendly/attendance-backend-go/internal/config"
	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/domain/auth"
	"github.com/attendly/attendance-backend-go/internal/domain/dashboard"
	"github.com/attendly/attendance-backend-go/internal/domain/employee"
	"github.com/attendly/attendance-backend-go/internal/domain/user"
	"github.com/attendly/attendance-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const routerTestSecret = "test-secret-key-for-jwt"

type fakeAuthService struct{}

func (f *fakeAuthService) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if req.Email == "hr@example.com" && req.Password == "password123" {
		return auth.LoginResponse{
			Token:     "token",
			ExpiresAt: time.Now().Add(time.Hour).Unix(),
			User:      auth.UserResponse{ID: "user-1", Name: "HR Person", Email: req.Email, Role: "hr"},
		}, nil
	}
	return auth.LoginResponse{}, auth.ErrInvalidCredentials
}

func (f *fakeAuthService) Me(ctx context.Context) (auth.UserResponse, error) {
	return auth.UserResponse{ID: "user-1", Name: "HR Person", Email: "hr@example.com", Role: "hr"}, nil
}

type fakeEmployeeService struct{}

func (f *fakeEmployeeService) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	return employee.EmployeeResponse{ID: "emp-1", Name: req.Name, Status: "active"}, nil
}

func (f *fakeEmployeeService) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	return employee.EmployeeResponse{ID: id, Name: "Jane Smith"}, nil
}

func (f *fakeEmployeeService) GetByTelegramID(ctx context.Context, telegramID string) (employee.EmployeeResponse, error) {
	if telegramID != "123456" {
		return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
	}
	return employee.EmployeeResponse{ID: "emp-1", Name: "Jane Smith", TelegramID: telegramID}, nil
}

func (f *fakeEmployeeService) List(ctx context.Context, includeInactive bool) ([]employee.EmployeeResponse, error) {
	return []employee.EmployeeResponse{}, nil
}

func (f *fakeEmployeeService) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	return employee.EmployeeResponse{ID: req.ID}, nil
}

func (f *fakeEmployeeService) Deactivate(ctx context.Context, id string) error {
	return nil
}

type fakeAttendanceService struct {
	lastActorID string
}

func (f *fakeAttendanceService) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return attendance.AttendanceResponse{ID: "att-1", EmployeeID: "emp-1", Status: "present"}, nil
}

func (f *fakeAttendanceService) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.AttendanceResponse, error) {
	return attendance.AttendanceResponse{ID: "att-1"}, nil
}

func (f *fakeAttendanceService) Today(ctx context.Context, telegramID string) (*attendance.AttendanceResponse, error) {
	return nil, nil
}

func (f *fakeAttendanceService) Get(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	return attendance.AttendanceResponse{ID: id}, nil
}

func (f *fakeAttendanceService) List(ctx context.Context, employeeID *string, startDate, endDate *time.Time) ([]attendance.AttendanceResponse, error) {
	return []attendance.AttendanceResponse{}, nil
}

func (f *fakeAttendanceService) ListByEmployee(ctx context.Context, employeeID string, startDate, endDate *time.Time) ([]attendance.AttendanceResponse, error) {
	return []attendance.AttendanceResponse{{ID: "att-1", EmployeeID: employeeID}}, nil
}

func (f *fakeAttendanceService) Correct(ctx context.Context, req attendance.CorrectionRequest, actorID string) (attendance.AttendanceResponse, error) {
	f.lastActorID = actorID
	return attendance.AttendanceResponse{ID: req.ID}, nil
}

type fakeDashboardService struct{}

func (f *fakeDashboardService) GetStats(ctx context.Context) (*dashboard.StatsResponse, error) {
	return &dashboard.StatsResponse{TotalEmployees: 10, PresentToday: 6, AbsentToday: 4, LateToday: 2, AverageHours: 7.83}, nil
}

func newTestRouter(t *testing.T, openCheckIn bool) (http.Handler, jwt.Service, *fakeAttendanceService) {
	t.Helper()
	cfg := &config.Config{}
	cfg.App.Env = "test"
	cfg.App.FrontendURL = "http://localhost:3000"
	cfg.Attendance.OpenCheckIn = openCheckIn

	jwtService := jwt.NewJWTService(routerTestSecret, "1h")
	attendanceSvc := &fakeAttendanceService{}

	router := NewRouter(
		cfg,
		jwtService,
		NewAuthHandler(&fakeAuthService{}),
		NewEmployeeHandler(&fakeEmployeeService{}),
		NewAttendanceHandler(attendanceSvc),
		NewDashboardHandler(&fakeDashboardService{}),
	)
	return router, jwtService, attendanceSvc
}

func hrToken(t *testing.T, jwtService jwt.Service) string {
	t.Helper()
	token, _, err := jwtService.GenerateAccessToken("user-1", "HR Person", user.RoleHR)
	require.NoError(t, err)
	return token
}

func doRequest(router http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		reqBody = &bytes.Buffer{}
		_ = json.NewEncoder(reqBody).Encode(body)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("x-auth-token", token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRouter_Login(t *testing.T) {
	router, _, _ := newTestRouter(t, true)

	rec := doRequest(router, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "hr@example.com",
		"password": "password123",
	})

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Data.Token)
}

func TestRouter_Login_BadCredentials(t *testing.T) {
	router, _, _ := newTestRouter(t, true)

	rec := doRequest(router, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "hr@example.com",
		"password": "wrong",
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_CheckIn_Open(t *testing.T) {
	router, _, _ := newTestRouter(t, true)

	rec := doRequest(router, http.MethodPost, "/api/attendance/check-in", "", map[string]string{
		"telegramId": "123456",
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestRouter_CheckIn_Closed_RequiresToken(t *testing.T) {
	router, jwtService, _ := newTestRouter(t, false)

	rec := doRequest(router, http.MethodPost, "/api/attendance/check-in", "", map[string]string{
		"telegramId": "123456",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(router, http.MethodPost, "/api/attendance/check-in", hrToken(t, jwtService), map[string]string{
		"telegramId": "123456",
	})
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestRouter_Dashboard_RequiresAuth(t *testing.T) {
	router, jwtService, _ := newTestRouter(t, true)

	rec := doRequest(router, http.MethodGet, "/api/dashboard/stats", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(router, http.MethodGet, "/api/dashboard/stats", hrToken(t, jwtService), nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data struct {
			TotalEmployees int64 `json:"totalEmployees"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(10), resp.Data.TotalEmployees)
}

func TestRouter_Correct_UsesTokenActor(t *testing.T) {
	router, jwtService, attendanceSvc := newTestRouter(t, true)

	rec := doRequest(router, http.MethodPut, "/api/attendance/att-1", hrToken(t, jwtService), map[string]interface{}{
		"notes": "corrected",
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-1", attendanceSvc.lastActorID)
}

func TestRouter_Employees_RejectsGarbageToken(t *testing.T) {
	router, _, _ := newTestRouter(t, true)

	rec := doRequest(router, http.MethodGet, "/api/employees", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
