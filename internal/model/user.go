package model

import "time"

type UserRole string

const (
	UserRoleAdmin          UserRole = "ADMIN"
	UserRoleDriver         UserRole = "DRIVER"
	UserRoleSolicitor      UserRole = "SOLICITOR"
	UserRoleSolicitorAdmin UserRole = "SOLICITOR_ADMIN"
)

type User struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Email            string   `json:"email"`
	CPF              string   `json:"cpf"`
	PasswordHash     string   `json:"-"`
	Role             UserRole `json:"role"`
	Avatar           string   `json:"avatar,omitempty"`
	CR               string   `json:"cr,omitempty"`
	DefaultVehicleID string   `json:"default_vehicle_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) IsDriver() bool {
	return u.Role == UserRoleDriver
}

// CanSolicit covers both the plain solicitor profile and the hybrid
// solicitor-admin profile.
func (u *User) CanSolicit() bool {
	return u.Role == UserRoleSolicitor || u.Role == UserRoleSolicitorAdmin
}
