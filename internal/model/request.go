package model

import (
	"time"
)

type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "PENDING"
	RequestStatusAccepted  RequestStatus = "ACCEPTED"
	RequestStatusRejected  RequestStatus = "REJECTED"
	RequestStatusInTransit RequestStatus = "IN_TRANSIT"
	RequestStatusExecuting RequestStatus = "EXECUTING"
	RequestStatusCompleted RequestStatus = "COMPLETED"
	RequestStatusCancelled RequestStatus = "CANCELLED"
)

type TaskPriority string

const (
	TaskPriorityNormal    TaskPriority = "NORMAL"
	TaskPriorityImportant TaskPriority = "IMPORTANT"
	TaskPriorityUrgent    TaskPriority = "URGENT"
)

type TaskRequest struct {
	ID            string `json:"id"`
	SolicitorID   string `json:"solicitor_id"`
	SolicitorName string `json:"solicitor_name"`
	DriverID      string `json:"driver_id,omitempty"`
	DriverName    string `json:"driver_name,omitempty"`

	Origin              string       `json:"origin"`
	DriverStartLocation string       `json:"driver_start_location,omitempty"`
	Destination         string       `json:"destination"`
	TaskDescription     string       `json:"task_description"`
	Notes               string       `json:"notes,omitempty"`
	AttachmentURL       string       `json:"attachment_url,omitempty"`
	CR                  string       `json:"cr,omitempty"`
	CC                  string       `json:"cc,omitempty"`
	Priority            TaskPriority `json:"priority,omitempty"`

	Status RequestStatus `json:"status"`

	CreatedAt     time.Time  `json:"created_at"`
	AcceptedAt    *time.Time `json:"accepted_at,omitempty"`
	TravelStartAt *time.Time `json:"travel_start_at,omitempty"`
	WorkStartAt   *time.Time `json:"work_start_at,omitempty"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
	CancelledAt   *time.Time `json:"cancelled_at,omitempty"`

	// Accumulated seconds across travel/work sessions. Finalized on the
	// next transition; a restart resets both to zero.
	TravelDuration int64 `json:"travel_duration"`
	WorkDuration   int64 `json:"work_duration"`

	TripDistanceKm *float64 `json:"trip_distance_km,omitempty"`
	StartLat       *float64 `json:"start_lat,omitempty"`
	StartLng       *float64 `json:"start_lng,omitempty"`

	DriverNotes         string `json:"driver_notes,omitempty"`
	DriverAttachmentURL string `json:"driver_attachment_url,omitempty"`

	CancellationReason string `json:"cancellation_reason,omitempty"`
	RestartReason      string `json:"restart_reason,omitempty"`
	RejectionReason    string `json:"rejection_reason,omitempty"`

	VehicleID         string   `json:"vehicle_id,omitempty"`
	VehicleSnapshot   string   `json:"vehicle_snapshot,omitempty"`
	FinalCost         *float64 `json:"final_cost,omitempty"`
	HourlyRateApplied *float64 `json:"hourly_rate_applied,omitempty"`
}

// CanTransitionTo reports whether the forward edge from the current status to
// target is allowed. The restart edge (IN_TRANSIT/EXECUTING back to ACCEPTED)
// is a distinct edge checked by CanRestart.
func (r *TaskRequest) CanTransitionTo(target RequestStatus) bool {
	switch r.Status {
	case RequestStatusPending:
		return target == RequestStatusAccepted ||
			target == RequestStatusRejected ||
			target == RequestStatusCancelled
	case RequestStatusAccepted:
		return target == RequestStatusInTransit ||
			target == RequestStatusCancelled
	case RequestStatusInTransit:
		return target == RequestStatusExecuting ||
			target == RequestStatusCancelled
	case RequestStatusExecuting:
		return target == RequestStatusCompleted
	case RequestStatusCompleted, RequestStatusRejected, RequestStatusCancelled:
		return false
	default:
		return false
	}
}

func (r *TaskRequest) CanRestart() bool {
	return r.Status == RequestStatusInTransit || r.Status == RequestStatusExecuting
}

func (r *TaskRequest) IsTerminal() bool {
	switch r.Status {
	case RequestStatusCompleted, RequestStatusRejected, RequestStatusCancelled:
		return true
	default:
		return false
	}
}

// TravelDurationAt returns the accumulated travel seconds plus the live
// session elapsed since TravelStartAt while the request is in transit.
// Presentation only; the stored value changes only on a transition.
func (r *TaskRequest) TravelDurationAt(now time.Time) int64 {
	if r.Status == RequestStatusInTransit && r.TravelStartAt != nil {
		return r.TravelDuration + int64(now.Sub(*r.TravelStartAt).Seconds())
	}
	return r.TravelDuration
}

// WorkDurationAt is the EXECUTING counterpart of TravelDurationAt.
func (r *TaskRequest) WorkDurationAt(now time.Time) int64 {
	if r.Status == RequestStatusExecuting && r.WorkStartAt != nil {
		return r.WorkDuration + int64(now.Sub(*r.WorkStartAt).Seconds())
	}
	return r.WorkDuration
}
