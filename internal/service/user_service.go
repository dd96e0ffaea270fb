package service

import (
	"context"
	"strings"

	"driverpro-service/internal/auth"
	"driverpro-service/internal/model"
	"driverpro-service/internal/store"
)

type UserService struct {
	store *store.Store
}

func NewUserService(st *store.Store) *UserService {
	return &UserService{store: st}
}

// Authenticate matches the CPF on digits only and compares the password
// against the stored bcrypt hash. A wrong CPF and a wrong password are
// indistinguishable to the caller.
func (s *UserService) Authenticate(ctx context.Context, cpf, password string) (*model.User, error) {
	user, err := s.store.FindUserByCPF(cpf)
	if err != nil {
		return nil, ErrPermissionDenied
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, ErrPermissionDenied
	}
	return &user, nil
}

type CreateUserInput struct {
	Name             string
	Email            string
	CPF              string
	Password         string
	Role             model.UserRole
	Avatar           string
	CR               string
	DefaultVehicleID string
}

func (s *UserService) Create(ctx context.Context, principal model.Principal, input CreateUserInput) (*model.User, error) {
	if !principal.IsAdmin() {
		return nil, ErrPermissionDenied
	}
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.CPF) == "" || input.Password == "" {
		return nil, ErrInvalidInput
	}
	if !validRole(input.Role) {
		return nil, ErrInvalidInput
	}
	if _, err := s.store.FindUserByCPF(input.CPF); err == nil {
		return nil, ErrConflict
	}
	if input.DefaultVehicleID != "" {
		if _, err := s.store.GetVehicle(input.DefaultVehicleID); err != nil {
			return nil, ErrInvalidInput
		}
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	created := s.store.InsertUser(model.User{
		Name:             strings.TrimSpace(input.Name),
		Email:            strings.TrimSpace(input.Email),
		CPF:              strings.TrimSpace(input.CPF),
		PasswordHash:     hash,
		Role:             input.Role,
		Avatar:           input.Avatar,
		CR:               input.CR,
		DefaultVehicleID: input.DefaultVehicleID,
	})
	return &created, nil
}

type UpdateUserInput struct {
	Name             *string
	Email            *string
	Password         *string
	Avatar           *string
	CR               *string
	DefaultVehicleID *string
}

func (s *UserService) Update(ctx context.Context, principal model.Principal, id string, input UpdateUserInput) (*model.User, error) {
	if !principal.IsAdmin() {
		return nil, ErrPermissionDenied
	}

	var hash string
	if input.Password != nil {
		if *input.Password == "" {
			return nil, ErrInvalidInput
		}
		var err error
		hash, err = auth.HashPassword(*input.Password)
		if err != nil {
			return nil, err
		}
	}
	if input.DefaultVehicleID != nil && *input.DefaultVehicleID != "" {
		if _, err := s.store.GetVehicle(*input.DefaultVehicleID); err != nil {
			return nil, ErrInvalidInput
		}
	}

	updated, err := s.store.UpdateUser(id, func(user *model.User) error {
		if input.Name != nil {
			user.Name = strings.TrimSpace(*input.Name)
		}
		if input.Email != nil {
			user.Email = strings.TrimSpace(*input.Email)
		}
		if hash != "" {
			user.PasswordHash = hash
		}
		if input.Avatar != nil {
			user.Avatar = *input.Avatar
		}
		if input.CR != nil {
			user.CR = *input.CR
		}
		if input.DefaultVehicleID != nil {
			user.DefaultVehicleID = *input.DefaultVehicleID
		}
		return nil
	})
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return &updated, nil
}

func (s *UserService) Delete(ctx context.Context, principal model.Principal, id string) error {
	if !principal.IsAdmin() {
		return ErrPermissionDenied
	}
	if principal.UserID == id {
		return ErrConflict
	}
	return mapStoreErr(s.store.DeleteUser(id))
}

func (s *UserService) List(ctx context.Context, principal model.Principal) ([]model.User, error) {
	if !principal.IsAdmin() {
		return nil, ErrPermissionDenied
	}
	return s.store.ListUsers(), nil
}

func validRole(role model.UserRole) bool {
	switch role {
	case model.UserRoleAdmin, model.UserRoleDriver, model.UserRoleSolicitor, model.UserRoleSolicitorAdmin:
		return true
	default:
		return false
	}
}
