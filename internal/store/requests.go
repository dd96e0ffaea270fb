package store

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"driverpro-service/internal/model"
)

// NextRequestID allocates the next sequential request id from the current
// snapshot: highest integer-parseable id plus one, zero-padded to six digits.
// Ids that do not parse are skipped. Past 999999 the counter wraps to 1;
// a wraparound collision with a still-live id is an accepted edge case.
func (s *Store) NextRequestID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nextRequestIDLocked()
}

func (s *Store) nextRequestIDLocked() string {
	maxID := 0
	for id := range s.requests {
		parsed, err := strconv.Atoi(id)
		if err != nil {
			continue
		}
		if parsed > maxID {
			maxID = parsed
		}
	}

	next := maxID + 1
	if next > 999999 {
		next = 1
	}
	return fmt.Sprintf("%06d", next)
}

// InsertRequest allocates an id, stamps CreatedAt and the PENDING status and
// stores the request. The caller's struct is not retained.
func (s *Store) InsertRequest(req model.TaskRequest) model.TaskRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	req.ID = s.nextRequestIDLocked()
	req.Status = model.RequestStatusPending
	req.CreatedAt = time.Now()
	req.TravelDuration = 0
	req.WorkDuration = 0

	stored := req
	s.requests[req.ID] = &stored
	return req
}

func (s *Store) GetRequest(id string) (model.TaskRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	req, ok := s.requests[id]
	if !ok {
		return model.TaskRequest{}, ErrNotFound
	}
	return *req, nil
}

// UpdateRequest applies mutate to the stored record under the write lock.
// If mutate returns an error the record is left untouched.
func (s *Store) UpdateRequest(id string, mutate func(*model.TaskRequest) error) (model.TaskRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, ok := s.requests[id]
	if !ok {
		return model.TaskRequest{}, ErrNotFound
	}

	updated := *req
	if err := mutate(&updated); err != nil {
		return model.TaskRequest{}, err
	}

	s.requests[id] = &updated
	return updated, nil
}

type RequestListFilter struct {
	Status      *model.RequestStatus
	SolicitorID *string
	DriverID    *string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// ListRequests returns matching requests newest first.
func (s *Store) ListRequests(filter RequestListFilter) []model.TaskRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]model.TaskRequest, 0, len(s.requests))
	for _, req := range s.requests {
		if filter.Status != nil && req.Status != *filter.Status {
			continue
		}
		if filter.SolicitorID != nil && req.SolicitorID != *filter.SolicitorID {
			continue
		}
		if filter.DriverID != nil && req.DriverID != *filter.DriverID {
			continue
		}
		if filter.CreatedFrom != nil && req.CreatedAt.Before(*filter.CreatedFrom) {
			continue
		}
		if filter.CreatedTo != nil && req.CreatedAt.After(*filter.CreatedTo) {
			continue
		}
		result = append(result, *req)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].ID > result[j].ID
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result
}
