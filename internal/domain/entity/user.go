package entity

import "time"

// Role of a showroom user. Stored lowercase; display casing is a client concern.
type Role string

const (
	RoleAdmin          Role = "admin"
	RoleSalesManager   Role = "sales_manager"
	RoleSalesExecutive Role = "sales_executive"
	RoleCustomer       Role = "customer"
)

// ValidRole reports whether r is one of the known roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleSalesManager, RoleSalesExecutive, RoleCustomer:
		return true
	}
	return false
}

// User is an identity registered in the showroom.
// PasswordHash is empty for identities synthesized by the demo authenticator.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}
