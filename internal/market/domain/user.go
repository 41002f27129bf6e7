package domain

import "time"

// Role is a user's authorization level. Roles only ever move upward; once a
// user is elevated to admin the role is sticky.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// User is the local directory record backing an identity-provider principal.
// ExternalID is empty until the provider identity has been linked (e.g. a
// bootstrap admin created by email before their first sign-in).
type User struct {
	ID         string
	ExternalID string
	Email      string
	Name       string
	Phone      string
	ImageURL   string
	Role       Role
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsAdmin reports whether the user holds the admin role.
func (u User) IsAdmin() bool { return u.Role == RoleAdmin }
