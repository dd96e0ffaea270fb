package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"driverpro-service/internal/model"
)

func seedRequestIDs(s *Store, ids ...string) {
	for _, id := range ids {
		s.requests[id] = &model.TaskRequest{ID: id, Status: model.RequestStatusPending, CreatedAt: time.Now()}
	}
}

func TestNextRequestID_SkipsUnparsableIDs(t *testing.T) {
	s := New()
	seedRequestIDs(s, "000001", "000005", "abc")

	assert.Equal(t, "000006", s.NextRequestID())
}

func TestNextRequestID_Deterministic(t *testing.T) {
	s := New()
	seedRequestIDs(s, "000001", "000042")

	first := s.NextRequestID()
	second := s.NextRequestID()
	assert.Equal(t, first, second)
	assert.Equal(t, "000043", first)
}

func TestNextRequestID_EmptyStore(t *testing.T) {
	s := New()
	assert.Equal(t, "000001", s.NextRequestID())
}

func TestNextRequestID_WrapsPastMax(t *testing.T) {
	s := New()
	seedRequestIDs(s, "999999")

	assert.Equal(t, "000001", s.NextRequestID())
}

func TestInsertRequest_AllocatesSequentially(t *testing.T) {
	s := New()

	first := s.InsertRequest(model.TaskRequest{Destination: "warehouse"})
	second := s.InsertRequest(model.TaskRequest{Destination: "office"})

	assert.Equal(t, "000001", first.ID)
	assert.Equal(t, "000002", second.ID)
	assert.Equal(t, model.RequestStatusPending, first.Status)
	assert.False(t, first.CreatedAt.IsZero())
	assert.Zero(t, first.TravelDuration)
	assert.Zero(t, first.WorkDuration)
}

func TestGetRequest_ReturnsCopy(t *testing.T) {
	s := New()
	created := s.InsertRequest(model.TaskRequest{Destination: "warehouse"})

	got, err := s.GetRequest(created.ID)
	require.NoError(t, err)

	got.Destination = "tampered"

	again, err := s.GetRequest(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "warehouse", again.Destination)
}

func TestGetRequest_NotFound(t *testing.T) {
	s := New()

	_, err := s.GetRequest("000099")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateRequest_MutateErrorLeavesRecordUntouched(t *testing.T) {
	s := New()
	created := s.InsertRequest(model.TaskRequest{Destination: "warehouse"})

	_, err := s.UpdateRequest(created.ID, func(req *model.TaskRequest) error {
		req.Destination = "half-applied"
		return ErrNotFound
	})
	require.Error(t, err)

	got, err := s.GetRequest(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "warehouse", got.Destination)
}

func TestUpdateRequest_NotFound(t *testing.T) {
	s := New()

	_, err := s.UpdateRequest("000099", func(req *model.TaskRequest) error { return nil })
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListRequests_FiltersAndOrders(t *testing.T) {
	s := New()

	first := s.InsertRequest(model.TaskRequest{SolicitorID: "u1", Destination: "a"})
	second := s.InsertRequest(model.TaskRequest{SolicitorID: "u2", Destination: "b"})

	all := s.ListRequests(RequestListFilter{})
	require.Len(t, all, 2)
	// newest first; with equal timestamps the higher id wins
	assert.True(t, !all[0].CreatedAt.Before(all[1].CreatedAt))

	solicitorID := "u1"
	mine := s.ListRequests(RequestListFilter{SolicitorID: &solicitorID})
	require.Len(t, mine, 1)
	assert.Equal(t, first.ID, mine[0].ID)

	pending := model.RequestStatusPending
	byStatus := s.ListRequests(RequestListFilter{Status: &pending})
	assert.Len(t, byStatus, 2)

	_, err := s.UpdateRequest(second.ID, func(req *model.TaskRequest) error {
		req.Status = model.RequestStatusCancelled
		return nil
	})
	require.NoError(t, err)

	byStatus = s.ListRequests(RequestListFilter{Status: &pending})
	assert.Len(t, byStatus, 1)
}

func TestListRequests_IdempotentWithoutMutation(t *testing.T) {
	s := New()
	s.InsertRequest(model.TaskRequest{Destination: "a"})
	s.InsertRequest(model.TaskRequest{Destination: "b"})

	first := s.ListRequests(RequestListFilter{})
	second := s.ListRequests(RequestListFilter{})
	assert.Equal(t, first, second)
}
