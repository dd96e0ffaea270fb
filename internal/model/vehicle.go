package model

import (
	"fmt"
	"time"
)

type Vehicle struct {
	ID    string `json:"id"`
	Model string `json:"model"`
	Plate string `json:"plate"`
	Tag   string `json:"tag,omitempty"`
	// Currency per hour. Used only when computing the final cost of a
	// completed request; a vehicle without a rate yields no cost.
	HourlyRate *float64 `json:"hourly_rate,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SnapshotLabel is the human-readable description captured onto a request at
// assignment time. It stays stable even if the vehicle record changes later.
func (v *Vehicle) SnapshotLabel() string {
	if v.Tag != "" {
		return fmt.Sprintf("TAG: %s", v.Tag)
	}
	return fmt.Sprintf("%s (%s)", v.Model, v.Plate)
}
