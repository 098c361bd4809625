package employee

import (
	"context"
	"fmt"

	"github.com/attendly/attendance-backend-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
}

func NewEmployeeService(repo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		EmployeeRepository: repo,
	}
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	exists, err := s.ExistsByIdentity(ctx, req.Email, req.TelegramID, "")
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check employee identity: %w", err)
	}
	if exists {
		return employee.EmployeeResponse{}, employee.ErrIdentityExists
	}

	emp, err := s.EmployeeRepository.Create(ctx, employee.Employee{
		Name:             req.Name,
		Email:            req.Email,
		TelegramID:       req.TelegramID,
		TelegramUsername: req.TelegramUsername,
		Department:       req.Department,
		Position:         req.Position,
		IsHR:             req.IsHR,
		Status:           employee.StatusActive,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(emp), nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(emp), nil
}

// GetByTelegramID implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetByTelegramID(ctx context.Context, telegramID string) (employee.EmployeeResponse, error) {
	emp, err := s.EmployeeRepository.GetByTelegramID(ctx, telegramID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(emp), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, includeInactive bool) ([]employee.EmployeeResponse, error) {
	employees, err := s.EmployeeRepository.List(ctx, includeInactive)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employee.ToResponse(emp))
	}
	return responses, nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.Name != nil {
		emp.Name = *req.Name
	}
	if req.Email != nil {
		emp.Email = *req.Email
	}
	if req.TelegramID != nil {
		emp.TelegramID = *req.TelegramID
	}
	if req.TelegramUsername != nil {
		emp.TelegramUsername = req.TelegramUsername
	}
	if req.Department != nil {
		emp.Department = req.Department
	}
	if req.Position != nil {
		emp.Position = req.Position
	}
	if req.IsHR != nil {
		emp.IsHR = *req.IsHR
	}
	if req.Status != nil {
		emp.Status = employee.Status(*req.Status)
	}

	// Re-check uniqueness when either identity field moved
	if req.Email != nil || req.TelegramID != nil {
		exists, err := s.ExistsByIdentity(ctx, emp.Email, emp.TelegramID, emp.ID)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("failed to check employee identity: %w", err)
		}
		if exists {
			return employee.EmployeeResponse{}, employee.ErrIdentityExists
		}
	}

	if err := s.EmployeeRepository.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(emp), nil
}

// Deactivate implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Deactivate(ctx context.Context, id string) error {
	emp, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	emp.Status = employee.StatusInactive
	return s.EmployeeRepository.Update(ctx, emp)
}
