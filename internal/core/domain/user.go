package domain

import "time"

// Role is the closed set of authorization tags a user may carry.
// Adding a role is a deployment-time change, never a runtime decision.
type Role string

const (
	RoleUser       Role = "user"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super-admin"
)

// ValidRoles lists every role the system recognises.
func ValidRoles() []Role {
	return []Role{RoleUser, RoleAdmin, RoleSuperAdmin}
}

// ParseRole converts a raw string into a Role, reporting whether it is known.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleUser, RoleAdmin, RoleSuperAdmin:
		return Role(s), true
	}
	return "", false
}

// User models an identity record. PasswordHash never crosses the API
// boundary: it is excluded from JSON and cleared by Sanitized.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	FullName     string    `json:"full_name,omitempty"`
	PasswordHash string    `json:"-"`
	Roles        []Role    `json:"roles"`
	IsActive     bool      `json:"is_active"`
	LastUpdateBy string    `json:"last_update_by,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Sanitized returns a copy of the user with the password digest stripped.
func (u *User) Sanitized() *User {
	if u == nil {
		return nil
	}
	clean := *u
	clean.PasswordHash = ""
	return &clean
}

// HasAnyRole reports whether the user's role set intersects the given set.
// An empty required set passes any user.
func (u *User) HasAnyRole(required ...Role) bool {
	if len(required) == 0 {
		return true
	}
	for _, have := range u.Roles {
		for _, want := range required {
			if have == want {
				return true
			}
		}
	}
	return false
}
