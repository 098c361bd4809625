package dashboard

import "context"

// DashboardService defines the interface for dashboard operations
type DashboardService interface {
	// GetStats returns today's headcount summary and the trailing
	// seven-day average of worked hours, gathered with parallel queries
	GetStats(ctx context.Context) (*StatsResponse, error)
}
