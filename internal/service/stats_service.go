package service

import (
	"context"
	"sort"
	"time"

	"driverpro-service/internal/model"
	"driverpro-service/internal/store"
)

type StatsService struct {
	store *store.Store
}

func NewStatsService(st *store.Store) *StatsService {
	return &StatsService{store: st}
}

type StatsInput struct {
	From *time.Time
	To   *time.Time
}

// Dashboard derives the KPI block from the request collection: averages over
// completed requests, today's totals, per-actor counts, a seven-day activity
// series and the summed final cost for the period.
func (s *StatsService) Dashboard(ctx context.Context, principal model.Principal, input StatsInput) (*model.DashboardStats, error) {
	if !principal.IsAdmin() {
		return nil, ErrPermissionDenied
	}

	requests := s.store.ListRequests(store.RequestListFilter{
		CreatedFrom: input.From,
		CreatedTo:   input.To,
	})

	now := time.Now()
	today := now.Format("2006-01-02")
	stats := &model.DashboardStats{
		TasksPerDriver:  []model.NameCount{},
		RequestsPerUser: []model.NameCount{},
	}

	var travelSum, workSum int64
	completed := 0
	perDriver := map[string]int{}
	perUser := map[string]int{}
	tripsByDay := map[string]int{}
	tasksByDay := map[string]int{}

	for _, req := range requests {
		perUser[req.SolicitorName]++
		if req.DriverName != "" {
			perDriver[req.DriverName]++
		}

		tasksByDay[req.CreatedAt.Format("2006-01-02")]++
		if req.CreatedAt.Format("2006-01-02") == today {
			stats.TotalTasksToday++
		}

		if req.Status != model.RequestStatusCompleted {
			continue
		}
		completed++
		travelSum += req.TravelDuration
		workSum += req.WorkDuration
		if req.FinalCost != nil {
			stats.TotalCostPeriod += *req.FinalCost
		}
		if req.CompletedAt != nil {
			day := req.CompletedAt.Format("2006-01-02")
			tripsByDay[day]++
			if day == today {
				stats.TotalTripsToday++
			}
		}
	}

	if completed > 0 {
		stats.AvgTravelTime = float64(travelSum) / float64(completed)
		stats.AvgTaskTime = float64(workSum) / float64(completed)
	}
	stats.TotalCostPeriod = round2(stats.TotalCostPeriod)

	stats.TasksPerDriver = sortedCounts(perDriver)
	stats.RequestsPerUser = sortedCounts(perUser)

	// Last seven days, oldest first, zero-filled.
	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i).Format("2006-01-02")
		stats.DailyActivity = append(stats.DailyActivity, model.DailyActivity{
			Date:  day,
			Trips: tripsByDay[day],
			Tasks: tasksByDay[day],
		})
	}

	return stats, nil
}

func sortedCounts(counts map[string]int) []model.NameCount {
	result := make([]model.NameCount, 0, len(counts))
	for name, count := range counts {
		result = append(result, model.NameCount{Name: name, Count: count})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count == result[j].Count {
			return result[i].Name < result[j].Name
		}
		return result[i].Count > result[j].Count
	})
	return result
}
