package store

import (
	"driverpro-service/internal/auth"
	"driverpro-service/internal/model"
)

// SeedDemoData loads a minimal development data set: one vehicle with an
// hourly rate and one user per role, all with the password "123456".
// Intended for local runs only; state is gone on restart anyway.
func (s *Store) SeedDemoData() error {
	hash, err := auth.HashPassword("123456")
	if err != nil {
		return err
	}

	rate := 24.56
	vehicle := s.InsertVehicle(model.Vehicle{
		Model:      "Fiat Strada",
		Plate:      "ABC1D23",
		Tag:        "CA163",
		HourlyRate: &rate,
	})

	s.InsertUser(model.User{
		Name:         "Administrator",
		Email:        "admin@example.com",
		CPF:          "111.111.111-11",
		PasswordHash: hash,
		Role:         model.UserRoleAdmin,
		CR:           "0000",
	})
	s.InsertUser(model.User{
		Name:         "Demo Solicitor",
		Email:        "solicitor@example.com",
		CPF:          "222.222.222-22",
		PasswordHash: hash,
		Role:         model.UserRoleSolicitor,
		CR:           "2990",
	})
	s.InsertUser(model.User{
		Name:             "Demo Driver",
		Email:            "driver@example.com",
		CPF:              "333.333.333-33",
		PasswordHash:     hash,
		Role:             model.UserRoleDriver,
		CR:               "2990",
		DefaultVehicleID: vehicle.ID,
	})

	return nil
}
