package model

// Principal is the authenticated identity lifted out of the access token by
// the auth middleware. The store trusts the identity provider; role checks
// here are coarse UI-level gating, not a security boundary.
type Principal struct {
	UserID string
	Name   string
	Role   UserRole
}

func (p Principal) IsAdmin() bool {
	return p.Role == UserRoleAdmin || p.Role == UserRoleSolicitorAdmin
}

func (p Principal) IsDriver() bool {
	return p.Role == UserRoleDriver
}

func (p Principal) IsSolicitor() bool {
	return p.Role == UserRoleSolicitor || p.Role == UserRoleSolicitorAdmin
}
