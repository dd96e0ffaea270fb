package service

import (
	"context"
	"strings"

	"driverpro-service/internal/model"
	"driverpro-service/internal/store"
	"driverpro-service/internal/utils"
)

type VehicleService struct {
	store *store.Store
}

func NewVehicleService(st *store.Store) *VehicleService {
	return &VehicleService{store: st}
}

type CreateVehicleInput struct {
	Model      string
	Plate      string
	Tag        string
	HourlyRate *float64
}

func (s *VehicleService) Create(ctx context.Context, principal model.Principal, input CreateVehicleInput) (*model.Vehicle, error) {
	if !principal.IsAdmin() {
		return nil, ErrPermissionDenied
	}
	if strings.TrimSpace(input.Model) == "" || strings.TrimSpace(input.Plate) == "" {
		return nil, ErrInvalidInput
	}
	if input.HourlyRate != nil && *input.HourlyRate < 0 {
		return nil, ErrInvalidInput
	}

	created := s.store.InsertVehicle(model.Vehicle{
		Model:      strings.TrimSpace(input.Model),
		Plate:      utils.NormalizePlate(input.Plate),
		Tag:        strings.TrimSpace(input.Tag),
		HourlyRate: input.HourlyRate,
	})
	return &created, nil
}

type UpdateVehicleInput struct {
	Model      *string
	Plate      *string
	Tag        *string
	HourlyRate *float64
}

func (s *VehicleService) Update(ctx context.Context, principal model.Principal, id string, input UpdateVehicleInput) (*model.Vehicle, error) {
	if !principal.IsAdmin() {
		return nil, ErrPermissionDenied
	}
	if input.HourlyRate != nil && *input.HourlyRate < 0 {
		return nil, ErrInvalidInput
	}

	updated, err := s.store.UpdateVehicle(id, func(vehicle *model.Vehicle) error {
		if input.Model != nil {
			vehicle.Model = strings.TrimSpace(*input.Model)
		}
		if input.Plate != nil {
			vehicle.Plate = utils.NormalizePlate(*input.Plate)
		}
		if input.Tag != nil {
			vehicle.Tag = strings.TrimSpace(*input.Tag)
		}
		if input.HourlyRate != nil {
			vehicle.HourlyRate = input.HourlyRate
		}
		return nil
	})
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return &updated, nil
}

// Delete removes the vehicle record. Requests keep their vehicle snapshot
// string, so completed history is unaffected.
func (s *VehicleService) Delete(ctx context.Context, principal model.Principal, id string) error {
	if !principal.IsAdmin() {
		return ErrPermissionDenied
	}
	return mapStoreErr(s.store.DeleteVehicle(id))
}

func (s *VehicleService) List(ctx context.Context, principal model.Principal) ([]model.Vehicle, error) {
	return s.store.ListVehicles(), nil
}
