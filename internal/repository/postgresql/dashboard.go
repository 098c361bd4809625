package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/dashboard"
	"github.com/attendly/attendance-backend-go/internal/pkg/database"
)

type dashboardRepository struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepository{db: db}
}

// GetDayStats implements dashboard.DashboardRepository.
func (r *dashboardRepository) GetDayStats(ctx context.Context, date time.Time, workStart time.Time) (*dashboard.DayStats, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*) FILTER (WHERE check_in_time IS NOT NULL) AS present,
			COUNT(*) FILTER (WHERE check_in_time > $2) AS late
		FROM attendance_records
		WHERE date = $1
	`

	var stats dashboard.DayStats
	err := q.QueryRow(ctx, query, date, workStart).Scan(&stats.Present, &stats.Late)
	if err != nil {
		return nil, fmt.Errorf("failed to get day stats: %w", err)
	}

	return &stats, nil
}

// GetAverageHours implements dashboard.DashboardRepository.
func (r *dashboardRepository) GetAverageHours(ctx context.Context, from, to time.Time) (float64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(AVG(total_hours), 0)
		FROM attendance_records
		WHERE date >= $1 AND date <= $2
		  AND total_hours IS NOT NULL
	`

	var avg float64
	if err := q.QueryRow(ctx, query, from, to).Scan(&avg); err != nil {
		return 0, fmt.Errorf("failed to get average hours: %w", err)
	}

	return avg, nil
}
