// Package entity contains the core business objects of the project.
package entity

import "strings"

// Role represents the part a user plays in a care relationship.
type Role string

const (
	// RolePatient is a monitored person.
	RolePatient Role = "patient"
	// RoleCaretaker monitors one or more patients.
	RoleCaretaker Role = "caretaker"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RolePatient, RoleCaretaker:
		return true
	default:
		return false
	}
}

// Counterpart is the role on the other side of a care relationship.
func (r Role) Counterpart() Role {
	if r == RolePatient {
		return RoleCaretaker
	}

	return RolePatient
}

// ParseRole accepts the role spellings the mobile clients have used ("Patient", " caretaker ").
func ParseRole(s string) (Role, bool) {
	role := Role(strings.ToLower(strings.TrimSpace(s)))

	return role, role.IsValid()
}

// RoleFromClaims returns the first valid role among token claims.
func RoleFromClaims(claims []string) (Role, bool) {
	for _, claim := range claims {
		if role, ok := ParseRole(claim); ok {
			return role, true
		}
	}

	return "", false
}
