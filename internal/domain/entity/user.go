// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is a profile attached to an identity issued by the auth provider.
type User struct {
	ID        string    `json:"id"`         // The auth provider's uid.
	Email     string    `json:"email"`      // Lower-cased primary email, used to address connection requests.
	Name      string    `json:"name"`       // Display name.
	Role      Role      `json:"role"`       // Either patient or caretaker.
	CreatedAt time.Time `json:"created_at"` // Timestamp of when the profile was created.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last modification.
}

// IsPatient reports whether the user is a patient.
func (u *User) IsPatient() bool {
	return u != nil && u.Role == RolePatient
}

// IsCaretaker reports whether the user is a caretaker.
func (u *User) IsCaretaker() bool {
	return u != nil && u.Role == RoleCaretaker
}
