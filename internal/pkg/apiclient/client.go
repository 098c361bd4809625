package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/domain/employee"
)

// StatusError is a non-2xx reply from the attendance API. Code is the HTTP
// status, Message the server's error message.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Code, e.Message)
}

// envelope mirrors the server's response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Client calls the attendance REST API. Token, when set, is attached to
// every request; needed when the server runs with closed check-in routes.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reqBody *bytes.Buffer
	if body != nil {
		reqBody = &bytes.Buffer{}
		if err := json.NewEncoder(reqBody).Encode(body); err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("x-auth-token", c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("call api: %w", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	if resp.StatusCode >= 400 || !env.Success {
		message := env.Message
		if env.Error != nil {
			message = env.Error.Message
		}
		return &StatusError{Code: resp.StatusCode, Message: message}
	}

	if out != nil && len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode data: %w", err)
		}
	}

	return nil
}

type checkRequest struct {
	TelegramID string `json:"telegramId"`
}

// CheckIn records today's check-in for the Telegram id.
func (c *Client) CheckIn(ctx context.Context, telegramID string) (*attendance.AttendanceResponse, error) {
	var att attendance.AttendanceResponse
	if err := c.do(ctx, http.MethodPost, "/attendance/check-in", checkRequest{TelegramID: telegramID}, &att); err != nil {
		return nil, err
	}
	return &att, nil
}

// CheckOut closes today's record.
func (c *Client) CheckOut(ctx context.Context, telegramID string) (*attendance.AttendanceResponse, error) {
	var att attendance.AttendanceResponse
	if err := c.do(ctx, http.MethodPost, "/attendance/check-out", checkRequest{TelegramID: telegramID}, &att); err != nil {
		return nil, err
	}
	return &att, nil
}

// Today returns today's record, or nil when the employee has no record yet.
func (c *Client) Today(ctx context.Context, telegramID string) (*attendance.AttendanceResponse, error) {
	var att attendance.AttendanceResponse
	if err := c.do(ctx, http.MethodGet, "/attendance/today?telegramId="+telegramID, nil, &att); err != nil {
		return nil, err
	}
	if att.ID == "" {
		return nil, nil
	}
	return &att, nil
}

// EmployeeByTelegramID resolves an employee from the Telegram user id.
func (c *Client) EmployeeByTelegramID(ctx context.Context, telegramID string) (*employee.EmployeeResponse, error) {
	var emp employee.EmployeeResponse
	if err := c.do(ctx, http.MethodGet, "/employees/telegram/"+telegramID, nil, &emp); err != nil {
		return nil, err
	}
	return &emp, nil
}
