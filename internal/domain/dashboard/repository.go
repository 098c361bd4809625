package dashboard

import (
	"context"
	"time"
)

// DayStats holds attendance counts for a single day. Present counts every
// record with a check-in; late counts the subset checked in after the
// configured work start.
type DayStats struct {
	Present int64
	Late    int64
}

// DashboardRepository defines the interface for dashboard data access
type DashboardRepository interface {
	// GetDayStats returns present and late counts for a day in a single
	// query. workStart is the late threshold instant on that day.
	GetDayStats(ctx context.Context, date time.Time, workStart time.Time) (*DayStats, error)

	// GetAverageHours returns the average of total_hours over completed
	// records with date in [from, to], zero when there are none
	GetAverageHours(ctx context.Context, from, to time.Time) (float64, error)
}
