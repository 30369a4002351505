package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		in   string
		want Role
		ok   bool
	}{
		{"patient", RolePatient, true},
		{" Caretaker ", RoleCaretaker, true},
		{"PATIENT", RolePatient, true},
		{"doctor", Role("doctor"), false},
		{"", Role(""), false},
	}

	for _, tt := range tests {
		role, ok := ParseRole(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, role, tt.in)
	}
}

func TestRoleFromClaims(t *testing.T) {
	role, ok := RoleFromClaims([]string{"admin", "Caretaker"})
	assert.True(t, ok)
	assert.Equal(t, RoleCaretaker, role)

	_, ok = RoleFromClaims(nil)
	assert.False(t, ok)
}

func TestRole_Counterpart(t *testing.T) {
	assert.Equal(t, RoleCaretaker, RolePatient.Counterpart())
	assert.Equal(t, RolePatient, RoleCaretaker.Counterpart())
}
