package model

type NameCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type DailyActivity struct {
	Date  string `json:"date"`
	Trips int    `json:"trips"`
	Tasks int    `json:"tasks"`
}

// DashboardStats is derived read-only from the request collection; averages
// are in seconds over completed requests.
type DashboardStats struct {
	AvgTravelTime   float64         `json:"avg_travel_time"`
	AvgTaskTime     float64         `json:"avg_task_time"`
	TotalTripsToday int             `json:"total_trips_today"`
	TotalTasksToday int             `json:"total_tasks_today"`
	TasksPerDriver  []NameCount     `json:"tasks_per_driver"`
	RequestsPerUser []NameCount     `json:"requests_per_user"`
	DailyActivity   []DailyActivity `json:"daily_activity"`
	TotalCostPeriod float64         `json:"total_cost_period"`
}
