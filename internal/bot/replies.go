package bot

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/domain/employee"
	"github.com/attendly/attendance-backend-go/internal/pkg/apiclient"
)

const (
	notRegisteredReply = "❌ *Error:* Your Telegram account is not registered in the system. Please contact HR to register your account."
)

// formatClock renders an RFC3339 timestamp as a local clock time.
func formatClock(rfc3339 *string) string {
	if rfc3339 == nil {
		return ""
	}
	t, err := time.Parse(time.RFC3339, *rfc3339)
	if err != nil {
		return *rfc3339
	}
	return t.Local().Format("3:04:05 PM")
}

func startReply(firstName string) string {
	return fmt.Sprintf("Hello %s! 👋\n\nI'm your attendance tracking bot. You can use the following commands:\n\n/login - Check in for work\n/logout - Check out from work\n/status - Check your current status\n/help - Show available commands", firstName)
}

func helpReply() string {
	return "*Available Commands:*\n\n/login - Check in for work\n/logout - Check out from work\n/status - Check your current status\n/help - Show this help message"
}

func checkInReply(firstName string, att *attendance.AttendanceResponse) string {
	return fmt.Sprintf("✅ *Check-in Successful!*\n\nHello %s, you have been checked in at *%s*.\n\nHave a productive day! 🚀", firstName, formatClock(att.CheckIn.Time))
}

func checkInErrorReply(err error) string {
	var statusErr *apiclient.StatusError
	if errors.As(err, &statusErr) {
		switch statusErr.Code {
		case http.StatusNotFound:
			return notRegisteredReply
		case http.StatusBadRequest, http.StatusConflict:
			return fmt.Sprintf("ℹ️ *Notice:* %s", messageOr(statusErr, "You have already checked in today."))
		}
	}
	return "❌ *Error:* Unable to check in. Please try again later or contact HR."
}

func checkOutReply(firstName string, att *attendance.AttendanceResponse) string {
	totalHours := 0.0
	if att.TotalHours != nil {
		totalHours = *att.TotalHours
	}
	return fmt.Sprintf("✅ *Check-out Successful!*\n\nGoodbye %s, you have been checked out at *%s*.\n\nTotal hours worked today: *%.2f hours*\n\nHave a great evening! 👋", firstName, formatClock(att.CheckOut.Time), totalHours)
}

func checkOutErrorReply(err error) string {
	var statusErr *apiclient.StatusError
	if errors.As(err, &statusErr) {
		switch statusErr.Code {
		case http.StatusNotFound:
			if statusErr.Message == "Employee not found" {
				return notRegisteredReply
			}
			return fmt.Sprintf("❌ *Error:* %s", messageOr(statusErr, "No check-in record found for today. Please check in first."))
		case http.StatusBadRequest, http.StatusConflict:
			return fmt.Sprintf("ℹ️ *Notice:* %s", messageOr(statusErr, "You must check in before checking out."))
		}
	}
	return "❌ *Error:* Unable to check out. Please try again later or contact HR."
}

func statusReply(att *attendance.AttendanceResponse) string {
	if att == nil {
		return "*Status:* Not checked in today.\n\nUse /login to check in."
	}

	checkInTime := "Not checked in"
	if att.CheckIn.Time != nil {
		checkInTime = formatClock(att.CheckIn.Time)
	}
	checkOutTime := "Not checked out"
	if att.CheckOut.Time != nil {
		checkOutTime = formatClock(att.CheckOut.Time)
	}

	totalHours := 0.0
	if att.TotalHours != nil {
		totalHours = *att.TotalHours
	}

	var status string
	switch {
	case att.CheckIn.Time == nil:
		status = "Not checked in"
	case att.CheckOut.Time == nil:
		status = "Currently working (Checked in)"
	default:
		status = "Checked out"
	}

	return fmt.Sprintf("*Today's Attendance Status*\n\n*Status:* %s\n*Check-in Time:* %s\n*Check-out Time:* %s\n*Total Hours:* %.2f hours", status, checkInTime, checkOutTime, totalHours)
}

func statusErrorReply(err error) string {
	var statusErr *apiclient.StatusError
	if errors.As(err, &statusErr) && statusErr.Code == http.StatusNotFound {
		return notRegisteredReply
	}
	return "❌ *Error:* Unable to check status. Please try again later or contact HR."
}

func employeeReply(emp *employee.EmployeeResponse) string {
	department := "Not specified"
	if emp.Department != nil && *emp.Department != "" {
		department = *emp.Department
	}
	position := "Not specified"
	if emp.Position != nil && *emp.Position != "" {
		position = *emp.Position
	}
	return fmt.Sprintf("*Your Employee Information*\n\n*Name:* %s\n*Email:* %s\n*Department:* %s\n*Position:* %s", emp.Name, emp.Email, department, position)
}

func employeeErrorReply(err error) string {
	var statusErr *apiclient.StatusError
	if errors.As(err, &statusErr) && statusErr.Code == http.StatusNotFound {
		return notRegisteredReply
	}
	return "❌ *Error:* Unable to retrieve your information. Please try again later or contact HR."
}

func messageOr(err *apiclient.StatusError, fallback string) string {
	if err.Message != "" {
		return err.Message
	}
	return fallback
}
