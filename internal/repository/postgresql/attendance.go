package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepository) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	att.ID = uuid.NewString()

	query := `
		INSERT INTO attendance_records (
			id, employee_id, date,
			check_in_time, check_in_modified_by, check_in_original_time, check_in_modified_at,
			check_out_time, check_out_modified_by, check_out_original_time, check_out_modified_at,
			total_hours, status, notes
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		att.ID,
		att.EmployeeID,
		att.Date,
		att.CheckIn.Time,
		att.CheckIn.ModifiedBy,
		att.CheckIn.OriginalTime,
		att.CheckIn.ModifiedAt,
		att.CheckOut.Time,
		att.CheckOut.ModifiedBy,
		att.CheckOut.OriginalTime,
		att.CheckOut.ModifiedAt,
		att.TotalHours,
		att.Status,
		att.Notes,
	).Scan(&att.CreatedAt, &att.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			// Unique (employee_id, date): the record already exists, so a
			// concurrent first check-in lost the race.
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return att, nil
}

const attendanceColumns = `
	a.id, a.employee_id, a.date,
	a.check_in_time, a.check_in_modified_by, a.check_in_original_time, a.check_in_modified_at,
	a.check_out_time, a.check_out_modified_by, a.check_out_original_time, a.check_out_modified_at,
	a.total_hours, a.status, a.notes, a.created_at, a.updated_at,
	e.name AS employee_name,
	ci.name AS check_in_modified_by_name,
	co.name AS check_out_modified_by_name
`

const attendanceJoins = `
	FROM attendance_records a
	JOIN employees e ON e.id = a.employee_id
	LEFT JOIN users ci ON ci.id = a.check_in_modified_by
	LEFT JOIN users co ON co.id = a.check_out_modified_by
`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var att attendance.Attendance
	err := row.Scan(
		&att.ID, &att.EmployeeID, &att.Date,
		&att.CheckIn.Time, &att.CheckIn.ModifiedBy, &att.CheckIn.OriginalTime, &att.CheckIn.ModifiedAt,
		&att.CheckOut.Time, &att.CheckOut.ModifiedBy, &att.CheckOut.OriginalTime, &att.CheckOut.ModifiedAt,
		&att.TotalHours, &att.Status, &att.Notes, &att.CreatedAt, &att.UpdatedAt,
		&att.EmployeeName,
		&att.CheckInModifiedByName,
		&att.CheckOutModifiedByName,
	)
	return att, err
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + attendanceJoins + ` WHERE a.id = $1`

	att, err := scanAttendance(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance by id: %w", err)
	}

	return att, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + attendanceJoins + ` WHERE a.employee_id = $1 AND a.date = $2`

	att, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // No record for this day yet
		}
		return nil, fmt.Errorf("failed to get attendance by employee and date: %w", err)
	}

	return &att, nil
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepository) Update(ctx context.Context, att attendance.Attendance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_records
		SET check_in_time = $2, check_in_modified_by = $3,
			check_in_original_time = $4, check_in_modified_at = $5,
			check_out_time = $6, check_out_modified_by = $7,
			check_out_original_time = $8, check_out_modified_at = $9,
			total_hours = $10, status = $11, notes = $12,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		att.ID,
		att.CheckIn.Time,
		att.CheckIn.ModifiedBy,
		att.CheckIn.OriginalTime,
		att.CheckIn.ModifiedAt,
		att.CheckOut.Time,
		att.CheckOut.ModifiedBy,
		att.CheckOut.OriginalTime,
		att.CheckOut.ModifiedAt,
		att.TotalHours,
		att.Status,
		att.Notes,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepository) List(ctx context.Context, filter attendance.Filter) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{}
	args := []interface{}{}
	argNum := 1

	if filter.EmployeeID != nil {
		conditions = append(conditions, fmt.Sprintf("a.employee_id = $%d", argNum))
		args = append(args, *filter.EmployeeID)
		argNum++
	}
	if filter.StartDate != nil {
		conditions = append(conditions, fmt.Sprintf("a.date >= $%d", argNum))
		args = append(args, *filter.StartDate)
		argNum++
	}
	if filter.EndDate != nil {
		conditions = append(conditions, fmt.Sprintf("a.date <= $%d", argNum))
		args = append(args, *filter.EndDate)
		argNum++
	}

	query := `SELECT ` + attendanceColumns + attendanceJoins
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, " AND ")
	}
	query += ` ORDER BY a.date DESC, e.name ASC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	records := make([]attendance.Attendance, 0)
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, att)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance records: %w", err)
	}

	return records, nil
}
