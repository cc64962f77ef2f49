package domain

import "time"

// StaffRole enumerates console operator roles. Roles are flat tags; no role
// implies another.
type StaffRole string

const (
	StaffRoleOwner StaffRole = "ROLE_OWNER"
	StaffRoleAdmin StaffRole = "ROLE_ADMIN"
	StaffRoleStaff StaffRole = "ROLE_STAFF"
)

// StaffMember models a console operator who can sign in.
type StaffMember struct {
	ID           string
	FullName     string
	Email        string
	PasswordHash string
	Role         StaffRole
	ShopID       *string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
