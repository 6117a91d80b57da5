//go:build unit

package user_test

import (
	"testing"

	"seating-service/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRole(t *testing.T) {
	for _, s := range []string{"viewer", "operator", "admin"} {
		role, err := user.NewRole(s)
		require.NoError(t, err)
		assert.Equal(t, s, role.String())
	}

	_, err := user.NewRole("superuser")
	require.ErrorIs(t, err, user.ErrInvalidRole)

	_, err = user.NewRole("")
	require.ErrorIs(t, err, user.ErrInvalidRole)
}

func TestRoleAtLeast(t *testing.T) {
	cases := []struct {
		role user.Role
		min  user.Role
		want bool
	}{
		{user.RoleViewer, user.RoleViewer, true},
		{user.RoleViewer, user.RoleOperator, false},
		{user.RoleOperator, user.RoleOperator, true},
		{user.RoleAdmin, user.RoleOperator, true},
		{user.Role("ghost"), user.RoleViewer, false},
		{user.RoleAdmin, user.Role("ghost"), false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.role.AtLeast(c.min), "%s >= %s", c.role, c.min)
	}
}
