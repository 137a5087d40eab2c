package domain

import "github.com/google/uuid"

// Role of the acting user
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// Identity is the acting user extracted from a bearer token
type Identity struct {
	UserID uuid.UUID
	Role   Role
}

// IsAdmin reports whether the user may manage any reservation
func (i *Identity) IsAdmin() bool {
	return i != nil && i.Role == RoleAdmin
}

// CanManage reports whether the user may modify or delete r
func (i *Identity) CanManage(r *Reservation) bool {
	if i == nil || r == nil {
		return false
	}
	return i.IsAdmin() || r.IsOwnedBy(i.UserID)
}
