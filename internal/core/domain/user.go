package domain

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// ValidRole reports whether role belongs to the closed role enumeration.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleUser
}

// Identity is an authenticated principal: the email+credential pair a
// session token is issued against.
type Identity struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Profile mirrors identity data as a regular row, one per identity.
// Its ID always equals the identity's ID.
type Profile struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RoleAssignment maps a user to exactly one role. A user without an
// assignment row is treated as RoleUser by role resolution.
type RoleAssignment struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
