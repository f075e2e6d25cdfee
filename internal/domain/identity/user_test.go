package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		input   string
		want    Role
		wantErr bool
	}{
		{"admin", RoleAdmin, false},
		{"ADMIN", RoleAdmin, false},
		{"Employee", RoleEmployee, false},
		{"viewer", RoleViewer, false},
		{" viewer ", RoleViewer, false},
		{"root", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseRole(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRole_AtLeast(t *testing.T) {
	tests := []struct {
		role Role
		min  Role
		want bool
	}{
		{RoleAdmin, RoleAdmin, true},
		{RoleAdmin, RoleEmployee, true},
		{RoleAdmin, RoleViewer, true},
		{RoleEmployee, RoleAdmin, false},
		{RoleEmployee, RoleEmployee, true},
		{RoleEmployee, RoleViewer, true},
		{RoleViewer, RoleAdmin, false},
		{RoleViewer, RoleEmployee, false},
		{RoleViewer, RoleViewer, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.role.AtLeast(tt.min), "%s AtLeast %s", tt.role, tt.min)
	}
}

func TestNewUser(t *testing.T) {
	user, err := NewUser("Alice", "Alice@Example.com", "s3cret-pass", RoleEmployee)
	require.NoError(t, err)
	assert.Equal(t, "Alice", user.Name)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, RoleEmployee, user.Role)
	assert.NotEqual(t, "s3cret-pass", user.PasswordHash)
	assert.True(t, user.CheckPassword("s3cret-pass"))
	assert.False(t, user.CheckPassword("wrong-pass"))
}

func TestNewUser_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		userName string
		email    string
		password string
		role     Role
	}{
		{"empty name", "", "a@b.com", "password1", RoleViewer},
		{"bad email", "Bob", "not-an-email", "password1", RoleViewer},
		{"short password", "Bob", "b@c.com", "short", RoleViewer},
		{"bad role", "Bob", "b@c.com", "password1", Role("SUPERUSER")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewUser(tt.userName, tt.email, tt.password, tt.role)
			assert.Error(t, err)
		})
	}
}

func TestUser_ChangeEmail(t *testing.T) {
	user, err := NewUser("Alice", "alice@example.com", "password1", RoleAdmin)
	require.NoError(t, err)

	require.NoError(t, user.ChangeEmail("NEW@Example.com"))
	assert.Equal(t, "new@example.com", user.Email)

	assert.Error(t, user.ChangeEmail("nope"))
	assert.Equal(t, "new@example.com", user.Email)
}

func TestUser_ChangePassword(t *testing.T) {
	user, err := NewUser("Alice", "alice@example.com", "password1", RoleAdmin)
	require.NoError(t, err)

	require.NoError(t, user.ChangePassword("password2"))
	assert.True(t, user.CheckPassword("password2"))
	assert.False(t, user.CheckPassword("password1"))

	assert.Error(t, user.ChangePassword("tiny"))
}

func TestUser_ChangeRole(t *testing.T) {
	user, err := NewUser("Alice", "alice@example.com", "password1", RoleViewer)
	require.NoError(t, err)

	require.NoError(t, user.ChangeRole(RoleAdmin))
	assert.Equal(t, RoleAdmin, user.Role)

	assert.Error(t, user.ChangeRole(Role("GOD")))
	assert.Equal(t, RoleAdmin, user.Role)
}
