package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewUserDefaults(t *testing.T) {
	u := NewUser("alice", "pw1", "555-0100")

	assert.Equal(t, "alice", u.Login)
	assert.Equal(t, "pw1", u.Password)
	assert.Equal(t, RoleCustomer, u.Role)
	assert.Empty(t, u.Favorites)
	assert.Equal(t, "", u.Favorites.String(), "empty favorites serialize to empty string")
	assert.Equal(t, "555-0100", u.PhoneNumber)
	assert.Zero(t, u.OverdueGames)
}

func TestUserSetRole(t *testing.T) {
	u := NewUser("alice", "pw1", "")

	assert.NoError(t, u.SetRole(RoleManager))
	assert.Equal(t, RoleManager, u.Role)

	err := u.SetRole("admin")
	assert.ErrorIs(t, err, ErrInvalidRole)
	assert.Equal(t, RoleManager, u.Role, "role should not change on error")
}

func TestRolesMatchValidation(t *testing.T) {
	roles := Roles()
	assert.Equal(t, []string{RoleCustomer, RoleEmployee, RoleManager}, roles)
	for _, r := range roles {
		assert.True(t, ValidRole(r), r)
	}
	assert.False(t, ValidRole("root"))
}

func TestSessionPermissions(t *testing.T) {
	tests := []struct {
		role         string
		manageTrack  bool
		administrate bool
	}{
		{RoleCustomer, false, false},
		{RoleEmployee, true, false},
		{RoleManager, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			s := Session{Login: "u", Role: tt.role}
			assert.Equal(t, tt.manageTrack, s.CanManageTracking())
			assert.Equal(t, tt.administrate, s.CanAdminister())
		})
	}
}
