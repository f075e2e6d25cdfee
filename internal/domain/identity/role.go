package identity

import (
	"strings"

	"github.com/fakturo/backend/internal/domain/shared"
)

// Role represents the privilege tier of a user
type Role string

const (
	RoleViewer   Role = "VIEWER"
	RoleEmployee Role = "EMPLOYEE"
	RoleAdmin    Role = "ADMIN"
)

// roleRank orders roles by privilege: VIEWER < EMPLOYEE < ADMIN
var roleRank = map[Role]int{
	RoleViewer:   1,
	RoleEmployee: 2,
	RoleAdmin:    3,
}

// IsValid checks if the role is a recognized Role
func (r Role) IsValid() bool {
	_, ok := roleRank[r]
	return ok
}

// String returns the canonical string representation of the role
func (r Role) String() string {
	return string(r)
}

// AtLeast reports whether the role carries at least the privilege of min.
func (r Role) AtLeast(min Role) bool {
	return roleRank[r] >= roleRank[min]
}

// ParseRole parses a role name case-insensitively. Unrecognized names fail
// with a validation error.
func ParseRole(s string) (Role, error) {
	role := Role(strings.ToUpper(strings.TrimSpace(s)))
	if !role.IsValid() {
		return "", shared.NewValidationError("Invalid role: " + s)
	}
	return role, nil
}
