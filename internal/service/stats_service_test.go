package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"driverpro-service/internal/model"
	"driverpro-service/internal/store"
)

func TestDashboard_ComputesAveragesAndCost(t *testing.T) {
	st := store.New()
	svc := NewStatsService(st)
	admin := model.Principal{UserID: "a1", Role: model.UserRoleAdmin}

	completeRequest := func(travel, work int64, cost float64) {
		req := st.InsertRequest(model.TaskRequest{SolicitorID: "s1", SolicitorName: "Sol", Destination: "x"})
		_, err := st.UpdateRequest(req.ID, func(r *model.TaskRequest) error {
			now := time.Now()
			r.Status = model.RequestStatusCompleted
			r.DriverID = "d1"
			r.DriverName = "Dri"
			r.TravelDuration = travel
			r.WorkDuration = work
			r.CompletedAt = &now
			r.FinalCost = &cost
			return nil
		})
		require.NoError(t, err)
	}

	completeRequest(600, 1200, 12.28)
	completeRequest(1200, 600, 10.00)
	st.InsertRequest(model.TaskRequest{SolicitorID: "s2", SolicitorName: "Other", Destination: "y"})

	stats, err := svc.Dashboard(context.Background(), admin, StatsInput{})
	require.NoError(t, err)

	assert.InDelta(t, 900, stats.AvgTravelTime, 0.001)
	assert.InDelta(t, 900, stats.AvgTaskTime, 0.001)
	assert.InDelta(t, 22.28, stats.TotalCostPeriod, 0.001)
	assert.Equal(t, 2, stats.TotalTripsToday)
	assert.Equal(t, 3, stats.TotalTasksToday)

	require.NotEmpty(t, stats.TasksPerDriver)
	assert.Equal(t, model.NameCount{Name: "Dri", Count: 2}, stats.TasksPerDriver[0])
	assert.Equal(t, model.NameCount{Name: "Sol", Count: 2}, stats.RequestsPerUser[0])

	require.Len(t, stats.DailyActivity, 7)
	today := stats.DailyActivity[6]
	assert.Equal(t, time.Now().Format("2006-01-02"), today.Date)
	assert.Equal(t, 2, today.Trips)
	assert.Equal(t, 3, today.Tasks)
}

func TestDashboard_AdminOnly(t *testing.T) {
	st := store.New()
	svc := NewStatsService(st)

	_, err := svc.Dashboard(context.Background(), model.Principal{UserID: "d1", Role: model.UserRoleDriver}, StatsInput{})
	assert.ErrorIs(t, err, ErrPermissionDenied)
}
