package domain

import "time"

// Role is a coarse permission tier.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User is a registered diner or administrator. UID is the identifier carried
// as the credential subject; ID is the document identifier used by admin routes.
type User struct {
	ID           string
	UID          string
	Name         string
	Email        string
	PhotoURL     string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
