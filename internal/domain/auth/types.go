// Package auth contains domain-level types for the authenticated principal.
// It is pure and free of framework/adapter concerns.
package auth

// Role represents an application authorization role.
// Keep string form for easy persistence and token claims.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleClient Role = "client"
	RoleFixer  Role = "fixer"
)

// Valid reports whether the role is one of the supported values.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleClient, RoleFixer:
		return true
	default:
		return false
	}
}

// Principal is the authenticated caller resolved from a bearer credential.
// Token verification and revocation live in the identity adapter; handlers
// and services only ever see this shape.
type Principal struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

// IsAdmin reports whether the principal holds the admin role.
func (p Principal) IsAdmin() bool { return p.Role == RoleAdmin }
