package user

import "time"

// User is a web admin panel account. Employees checking in over Telegram
// never have one; only HR staff and administrators log in here.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}

type Role string

const (
	RoleAdmin Role = "admin"
	RoleHR    Role = "hr"
)

// CanManageAttendance reports whether the role may read and correct the
// attendance ledger and manage the employee directory.
func (r Role) CanManageAttendance() bool {
	return r == RoleAdmin || r == RoleHR
}
