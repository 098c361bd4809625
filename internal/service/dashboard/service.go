package dashboard

import (
	"context"
	"math"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/dashboard"
	"github.com/attendly/attendance-backend-go/internal/domain/employee"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	dashboard.DashboardRepository
	employee.EmployeeRepository
	loc             *time.Location
	workStartHour   int
	workStartMinute int
}

func NewDashboardService(dashboardRepo dashboard.DashboardRepository, employeeRepo employee.EmployeeRepository, loc *time.Location, workStartHour, workStartMinute int) dashboard.DashboardService {
	return &DashboardServiceImpl{
		DashboardRepository: dashboardRepo,
		EmployeeRepository:  employeeRepo,
		loc:                 loc,
		workStartHour:       workStartHour,
		workStartMinute:     workStartMinute,
	}
}

// GetStats returns today's headcount summary. Absent is derived as total
// active employees minus present, so employees with no record at all still
// count as absent. Average hours covers the trailing seven days.
func (s *DashboardServiceImpl) GetStats(ctx context.Context) (*dashboard.StatsResponse, error) {
	now := time.Now().In(s.loc)
	date := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	workStart := time.Date(now.Year(), now.Month(), now.Day(), s.workStartHour, s.workStartMinute, 0, 0, s.loc)
	weekAgo := date.AddDate(0, 0, -7)

	var (
		total    int64
		dayStats *dashboard.DayStats
		avg      float64
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		total, err = s.CountActive(gCtx)
		return err
	})

	g.Go(func() error {
		var err error
		dayStats, err = s.GetDayStats(gCtx, date, workStart)
		return err
	})

	g.Go(func() error {
		var err error
		avg, err = s.GetAverageHours(gCtx, weekAgo, date)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	absent := total - dayStats.Present
	if absent < 0 {
		absent = 0
	}

	return &dashboard.StatsResponse{
		TotalEmployees: total,
		PresentToday:   dayStats.Present,
		AbsentToday:    absent,
		LateToday:      dayStats.Late,
		AverageHours:   math.Round(avg*100) / 100,
	}, nil
}
