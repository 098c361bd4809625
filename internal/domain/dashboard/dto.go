package dashboard

// StatsResponse is the admin dashboard summary for a single day.
type StatsResponse struct {
	TotalEmployees int64   `json:"totalEmployees"`
	PresentToday   int64   `json:"presentToday"`
	AbsentToday    int64   `json:"absentToday"`
	LateToday      int64   `json:"lateToday"`
	AverageHours   float64 `json:"averageHours"` // trailing seven days, two decimals
}
