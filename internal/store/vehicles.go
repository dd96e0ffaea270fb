package store

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"driverpro-service/internal/model"
)

func (s *Store) InsertVehicle(vehicle model.Vehicle) model.Vehicle {
	s.mu.Lock()
	defer s.mu.Unlock()

	if vehicle.ID == "" {
		vehicle.ID = uuid.NewString()
	}
	now := time.Now()
	vehicle.CreatedAt = now
	vehicle.UpdatedAt = now

	stored := vehicle
	s.vehicles[vehicle.ID] = &stored
	return vehicle
}

func (s *Store) GetVehicle(id string) (model.Vehicle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	vehicle, ok := s.vehicles[id]
	if !ok {
		return model.Vehicle{}, ErrNotFound
	}
	return *vehicle, nil
}

func (s *Store) UpdateVehicle(id string, mutate func(*model.Vehicle) error) (model.Vehicle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	vehicle, ok := s.vehicles[id]
	if !ok {
		return model.Vehicle{}, ErrNotFound
	}

	updated := *vehicle
	if err := mutate(&updated); err != nil {
		return model.Vehicle{}, err
	}
	updated.UpdatedAt = time.Now()

	s.vehicles[id] = &updated
	return updated, nil
}

func (s *Store) DeleteVehicle(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.vehicles[id]; !ok {
		return ErrNotFound
	}
	delete(s.vehicles, id)
	return nil
}

func (s *Store) ListVehicles() []model.Vehicle {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]model.Vehicle, 0, len(s.vehicles))
	for _, vehicle := range s.vehicles {
		result = append(result, *vehicle)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Plate < result[j].Plate
	})
	return result
}
