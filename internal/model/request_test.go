package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionTo(t *testing.T) {
	cases := []struct {
		from    RequestStatus
		to      RequestStatus
		allowed bool
	}{
		{RequestStatusPending, RequestStatusAccepted, true},
		{RequestStatusPending, RequestStatusRejected, true},
		{RequestStatusPending, RequestStatusCancelled, true},
		{RequestStatusPending, RequestStatusExecuting, false},
		{RequestStatusPending, RequestStatusCompleted, false},
		{RequestStatusAccepted, RequestStatusInTransit, true},
		{RequestStatusAccepted, RequestStatusCancelled, true},
		{RequestStatusAccepted, RequestStatusCompleted, false},
		{RequestStatusInTransit, RequestStatusExecuting, true},
		{RequestStatusInTransit, RequestStatusCancelled, true},
		{RequestStatusExecuting, RequestStatusCompleted, true},
		{RequestStatusExecuting, RequestStatusCancelled, false},
		{RequestStatusCompleted, RequestStatusAccepted, false},
		{RequestStatusRejected, RequestStatusAccepted, false},
		{RequestStatusCancelled, RequestStatusAccepted, false},
	}

	for _, tc := range cases {
		req := TaskRequest{Status: tc.from}
		assert.Equalf(t, tc.allowed, req.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestCanRestart(t *testing.T) {
	assert.True(t, (&TaskRequest{Status: RequestStatusInTransit}).CanRestart())
	assert.True(t, (&TaskRequest{Status: RequestStatusExecuting}).CanRestart())
	assert.False(t, (&TaskRequest{Status: RequestStatusPending}).CanRestart())
	assert.False(t, (&TaskRequest{Status: RequestStatusAccepted}).CanRestart())
	assert.False(t, (&TaskRequest{Status: RequestStatusCompleted}).CanRestart())
}

func TestLiveDurations(t *testing.T) {
	start := time.Now().Add(-90 * time.Second)
	req := TaskRequest{
		Status:         RequestStatusInTransit,
		TravelStartAt:  &start,
		TravelDuration: 60,
		WorkDuration:   30,
	}

	now := time.Now()
	assert.InDelta(t, 150, req.TravelDurationAt(now), 2)
	// work counter stays at the stored baseline while traveling
	assert.Equal(t, int64(30), req.WorkDurationAt(now))

	req.Status = RequestStatusExecuting
	req.WorkStartAt = &start
	assert.Equal(t, int64(60), req.TravelDurationAt(now))
	assert.InDelta(t, 120, req.WorkDurationAt(now), 2)
}

func TestVehicleSnapshotLabel(t *testing.T) {
	plain := Vehicle{Model: "Fiat Strada", Plate: "ABC1D23"}
	assert.Equal(t, "Fiat Strada (ABC1D23)", plain.SnapshotLabel())

	tagged := Vehicle{Model: "Fiat Strada", Plate: "ABC1D23", Tag: "CA163"}
	assert.Equal(t, "TAG: CA163", tagged.SnapshotLabel())
}
