package employee

import (
	"time"

	"github.com/attendly/attendance-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Name             string  `json:"name"`
	Email            string  `json:"email"`
	TelegramID       string  `json:"telegramId"`
	TelegramUsername *string `json:"telegramUsername,omitempty"`
	Department       *string `json:"department,omitempty"`
	Position         *string `json:"position,omitempty"`
	IsHR             bool    `json:"isHR"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

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

// UpdateEmployeeRequest carries partial directory edits. Nil fields are
// left untouched.
type UpdateEmployeeRequest struct {
	ID               string  `json:"-"`
	Name             *string `json:"name,omitempty"`
	Email            *string `json:"email,omitempty"`
	TelegramID       *string `json:"telegramId,omitempty"`
	TelegramUsername *string `json:"telegramUsername,omitempty"`
	Department       *string `json:"department,omitempty"`
	Position         *string `json:"position,omitempty"`
	IsHR             *bool   `json:"isHR,omitempty"`
	Status           *string `json:"status,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if r.TelegramID != nil && !validator.IsValidTelegramID(*r.TelegramID) {
		errs = append(errs, validator.ValidationError{
			Field:   "telegramId",
			Message: "telegramId must be a numeric Telegram user id",
		})
	}

	if r.Status != nil && !validator.IsInSlice(*r.Status, []string{string(StatusActive), string(StatusInactive)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be active or inactive",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Email            string  `json:"email"`
	TelegramID       string  `json:"telegramId"`
	TelegramUsername *string `json:"telegramUsername,omitempty"`
	Department       *string `json:"department,omitempty"`
	Position         *string `json:"position,omitempty"`
	IsHR             bool    `json:"isHR"`
	Status           string  `json:"status"`
	CreatedAt        string  `json:"createdAt"`
}

// ToResponse maps a directory record to its API shape.
func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:               e.ID,
		Name:             e.Name,
		Email:            e.Email,
		TelegramID:       e.TelegramID,
		TelegramUsername: e.TelegramUsername,
		Department:       e.Department,
		Position:         e.Position,
		IsHR:             e.IsHR,
		Status:           string(e.Status),
		CreatedAt:        e.CreatedAt.Format(time.RFC3339),
	}
}
