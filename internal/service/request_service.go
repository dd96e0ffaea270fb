package service

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"driverpro-service/internal/model"
	"driverpro-service/internal/store"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrInvalidInput     = errors.New("invalid input")
	ErrConflict         = errors.New("conflict")
)

// RequestService owns the task request lifecycle: creation, the status state
// machine, the cost computation at completion and the notifications emitted
// as transition side effects.
type RequestService struct {
	store *store.Store
}

func NewRequestService(st *store.Store) *RequestService {
	return &RequestService{store: st}
}

type CreateRequestInput struct {
	Origin          string
	Destination     string
	TaskDescription string
	Notes           string
	CC              string
	Priority        model.TaskPriority
	AttachmentURL   string
}

func (s *RequestService) Create(ctx context.Context, principal model.Principal, input CreateRequestInput) (*model.TaskRequest, error) {
	if !principal.IsSolicitor() && !principal.IsAdmin() {
		return nil, ErrPermissionDenied
	}

	if strings.TrimSpace(input.Destination) == "" || strings.TrimSpace(input.TaskDescription) == "" {
		return nil, ErrInvalidInput
	}

	solicitor, err := s.store.GetUser(principal.UserID)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	priority := input.Priority
	if priority == "" {
		priority = model.TaskPriorityNormal
	}
	switch priority {
	case model.TaskPriorityNormal, model.TaskPriorityImportant, model.TaskPriorityUrgent:
	default:
		return nil, ErrInvalidInput
	}

	created := s.store.InsertRequest(model.TaskRequest{
		SolicitorID:     solicitor.ID,
		SolicitorName:   solicitor.Name,
		Origin:          strings.TrimSpace(input.Origin),
		Destination:     strings.TrimSpace(input.Destination),
		TaskDescription: strings.TrimSpace(input.TaskDescription),
		Notes:           input.Notes,
		AttachmentURL:   input.AttachmentURL,
		CR:              solicitor.CR,
		CC:              input.CC,
		Priority:        priority,
	})
	return &created, nil
}

func (s *RequestService) Get(ctx context.Context, principal model.Principal, id string) (*model.TaskRequest, error) {
	req, err := s.store.GetRequest(id)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	if !s.canAccessRequest(principal, &req) {
		return nil, ErrPermissionDenied
	}
	return &req, nil
}

type ListRequestsInput struct {
	Status      *model.RequestStatus
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

func (s *RequestService) List(ctx context.Context, principal model.Principal, input ListRequestsInput) ([]model.TaskRequest, error) {
	filter := store.RequestListFilter{
		Status:      input.Status,
		CreatedFrom: input.CreatedFrom,
		CreatedTo:   input.CreatedTo,
	}

	switch {
	case principal.IsAdmin():
		// admins see everything
	case principal.IsSolicitor():
		solicitorID := principal.UserID
		filter.SolicitorID = &solicitorID
	case principal.IsDriver():
		// drivers see the open queue plus their own assignments,
		// filtered below
	default:
		return nil, ErrPermissionDenied
	}

	requests := s.store.ListRequests(filter)
	if !principal.IsAdmin() && principal.IsDriver() {
		visible := requests[:0]
		for _, req := range requests {
			if req.DriverID == principal.UserID || req.Status == model.RequestStatusPending {
				visible = append(visible, req)
			}
		}
		requests = visible
	}
	return requests, nil
}

// AssignDriver binds a driver to a pending request and performs the ACCEPTED
// transition. If the driver has a default vehicle it is snapshotted onto the
// request so later vehicle edits do not rewrite history.
func (s *RequestService) AssignDriver(ctx context.Context, principal model.Principal, requestID, driverID string) (*model.TaskRequest, error) {
	if !principal.IsAdmin() && !(principal.IsDriver() && principal.UserID == driverID) {
		return nil, ErrPermissionDenied
	}

	driver, err := s.store.GetUser(driverID)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	if !driver.IsDriver() {
		return nil, ErrInvalidInput
	}

	vehicleID := ""
	vehicleSnapshot := ""
	if driver.DefaultVehicleID != "" {
		if vehicle, err := s.store.GetVehicle(driver.DefaultVehicleID); err == nil {
			vehicleID = vehicle.ID
			vehicleSnapshot = vehicle.SnapshotLabel()
		}
	}

	now := time.Now()
	updated, err := s.transition(requestID, model.RequestStatusAccepted, false, func(req *model.TaskRequest) {
		req.DriverID = driver.ID
		req.DriverName = driver.Name
		req.AcceptedAt = &now
		if vehicleID != "" {
			req.VehicleID = vehicleID
			req.VehicleSnapshot = vehicleSnapshot
		}
	})
	if err != nil {
		return nil, err
	}

	s.notifyTransition(updated, model.RequestStatusAccepted, false)
	return updated, nil
}

type RejectRequestInput struct {
	Reason string
}

func (s *RequestService) Reject(ctx context.Context, principal model.Principal, id string, input RejectRequestInput) (*model.TaskRequest, error) {
	if !principal.IsDriver() && !principal.IsAdmin() {
		return nil, ErrPermissionDenied
	}
	if strings.TrimSpace(input.Reason) == "" {
		return nil, ErrInvalidInput
	}

	updated, err := s.transition(id, model.RequestStatusRejected, false, func(req *model.TaskRequest) {
		req.RejectionReason = strings.TrimSpace(input.Reason)
	})
	if err != nil {
		return nil, err
	}

	s.notifyTransition(updated, model.RequestStatusRejected, false)
	return updated, nil
}

type StartTravelInput struct {
	DriverStartLocation string
	StartLat            *float64
	StartLng            *float64
	// Optional override when the driver switches vehicle before departure.
	VehicleID string
}

func (s *RequestService) StartTravel(ctx context.Context, principal model.Principal, id string, input StartTravelInput) (*model.TaskRequest, error) {
	if err := s.requireAssignedDriver(principal, id); err != nil {
		return nil, err
	}

	vehicleID := ""
	vehicleSnapshot := ""
	if input.VehicleID != "" {
		vehicle, err := s.store.GetVehicle(input.VehicleID)
		if err != nil {
			return nil, mapStoreErr(err)
		}
		vehicleID = vehicle.ID
		vehicleSnapshot = vehicle.SnapshotLabel()
	}

	now := time.Now()
	updated, err := s.transition(id, model.RequestStatusInTransit, false, func(req *model.TaskRequest) {
		req.TravelStartAt = &now
		req.DriverStartLocation = strings.TrimSpace(input.DriverStartLocation)
		req.StartLat = input.StartLat
		req.StartLng = input.StartLng
		if vehicleID != "" {
			req.VehicleID = vehicleID
			req.VehicleSnapshot = vehicleSnapshot
		}
	})
	if err != nil {
		return nil, err
	}

	s.notifyTransition(updated, model.RequestStatusInTransit, false)
	return updated, nil
}

type StartWorkInput struct {
	// Accumulated travel seconds, finalized for the session that just ended.
	TravelDuration int64
	TripDistanceKm *float64
}

func (s *RequestService) StartWork(ctx context.Context, principal model.Principal, id string, input StartWorkInput) (*model.TaskRequest, error) {
	if err := s.requireAssignedDriver(principal, id); err != nil {
		return nil, err
	}
	if input.TravelDuration < 0 {
		return nil, ErrInvalidInput
	}

	now := time.Now()
	updated, err := s.transition(id, model.RequestStatusExecuting, false, func(req *model.TaskRequest) {
		req.TravelDuration = input.TravelDuration
		req.WorkStartAt = &now
		if input.TripDistanceKm != nil {
			req.TripDistanceKm = input.TripDistanceKm
		}
	})
	if err != nil {
		return nil, err
	}

	s.notifyTransition(updated, model.RequestStatusExecuting, false)
	return updated, nil
}

type CompleteRequestInput struct {
	// Accumulated work seconds, finalized.
	WorkDuration        int64
	DriverNotes         string
	DriverAttachmentURL string
	// Optional override when the task was done with a different vehicle.
	VehicleID string
}

func (s *RequestService) Complete(ctx context.Context, principal model.Principal, id string, input CompleteRequestInput) (*model.TaskRequest, error) {
	if err := s.requireAssignedDriver(principal, id); err != nil {
		return nil, err
	}
	if input.WorkDuration < 0 {
		return nil, ErrInvalidInput
	}

	current, err := s.store.GetRequest(id)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	vehicleID := ""
	vehicleSnapshot := ""
	if input.VehicleID != "" {
		vehicle, err := s.store.GetVehicle(input.VehicleID)
		if err != nil {
			return nil, mapStoreErr(err)
		}
		vehicleID = vehicle.ID
		vehicleSnapshot = vehicle.SnapshotLabel()
	}

	// Cost resolves against the vehicle in effect at completion time. Travel
	// time comes from the stored record; work time from this input. A missing
	// vehicle or rate leaves the cost unset rather than zero.
	var finalCost, rateApplied *float64
	effectiveVehicleID := current.VehicleID
	if vehicleID != "" {
		effectiveVehicleID = vehicleID
	}
	if effectiveVehicleID != "" {
		if vehicle, err := s.store.GetVehicle(effectiveVehicleID); err == nil {
			if vehicle.HourlyRate != nil && *vehicle.HourlyRate > 0 {
				totalHours := float64(current.TravelDuration+input.WorkDuration) / 3600
				cost := round2(totalHours * *vehicle.HourlyRate)
				finalCost = &cost
				rateApplied = vehicle.HourlyRate
			}
		}
	}

	now := time.Now()
	updated, err := s.transition(id, model.RequestStatusCompleted, false, func(req *model.TaskRequest) {
		req.WorkDuration = input.WorkDuration
		req.CompletedAt = &now
		req.DriverNotes = input.DriverNotes
		req.DriverAttachmentURL = input.DriverAttachmentURL
		if vehicleID != "" {
			req.VehicleID = vehicleID
			req.VehicleSnapshot = vehicleSnapshot
		}
		req.FinalCost = finalCost
		req.HourlyRateApplied = rateApplied
	})
	if err != nil {
		return nil, err
	}

	s.notifyTransition(updated, model.RequestStatusCompleted, false)
	return updated, nil
}

type RestartRequestInput struct {
	Reason string
}

// Restart takes an IN_TRANSIT or EXECUTING request back to ACCEPTED, clearing
// the session timestamps and zeroing both accumulated durations. Previously
// worked time is discarded, matching the billing rule in production.
func (s *RequestService) Restart(ctx context.Context, principal model.Principal, id string, input RestartRequestInput) (*model.TaskRequest, error) {
	if err := s.requireAssignedDriver(principal, id); err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Reason) == "" {
		return nil, ErrInvalidInput
	}

	updated, err := s.transition(id, model.RequestStatusAccepted, true, func(req *model.TaskRequest) {
		req.RestartReason = strings.TrimSpace(input.Reason)
		req.TravelStartAt = nil
		req.WorkStartAt = nil
		req.TravelDuration = 0
		req.WorkDuration = 0
	})
	if err != nil {
		return nil, err
	}

	s.notifyTransition(updated, model.RequestStatusAccepted, true)
	return updated, nil
}

type CancelRequestInput struct {
	Reason string
}

func (s *RequestService) Cancel(ctx context.Context, principal model.Principal, id string, input CancelRequestInput) (*model.TaskRequest, error) {
	current, err := s.store.GetRequest(id)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	if !principal.IsAdmin() && current.SolicitorID != principal.UserID {
		return nil, ErrPermissionDenied
	}
	if strings.TrimSpace(input.Reason) == "" {
		return nil, ErrInvalidInput
	}

	now := time.Now()
	updated, err := s.transition(id, model.RequestStatusCancelled, false, func(req *model.TaskRequest) {
		req.CancellationReason = strings.TrimSpace(input.Reason)
		req.CancelledAt = &now
	})
	if err != nil {
		return nil, err
	}

	s.notifyTransition(updated, model.RequestStatusCancelled, false)
	return updated, nil
}

// transition applies the status change and field updates atomically. The edge
// guard runs under the store's write lock so a concurrent mutation cannot slip
// a request into a state the transition no longer allows.
func (s *RequestService) transition(id string, target model.RequestStatus, restart bool, apply func(*model.TaskRequest)) (*model.TaskRequest, error) {
	updated, err := s.store.UpdateRequest(id, func(req *model.TaskRequest) error {
		if restart {
			if !req.CanRestart() {
				return ErrConflict
			}
		} else if !req.CanTransitionTo(target) {
			return ErrConflict
		}
		apply(req)
		req.Status = target
		return nil
	})
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return &updated, nil
}

func (s *RequestService) requireAssignedDriver(principal model.Principal, requestID string) error {
	if principal.IsAdmin() {
		return nil
	}
	if !principal.IsDriver() {
		return ErrPermissionDenied
	}
	req, err := s.store.GetRequest(requestID)
	if err != nil {
		return mapStoreErr(err)
	}
	if req.DriverID != principal.UserID {
		return ErrPermissionDenied
	}
	return nil
}

func (s *RequestService) canAccessRequest(principal model.Principal, req *model.TaskRequest) bool {
	if principal.IsAdmin() {
		return true
	}
	if principal.IsSolicitor() && req.SolicitorID == principal.UserID {
		return true
	}
	if principal.IsDriver() {
		return req.DriverID == principal.UserID || req.Status == model.RequestStatusPending
	}
	return false
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func mapStoreErr(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
