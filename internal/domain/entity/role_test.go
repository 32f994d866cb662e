package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRolesFromStrings(t *testing.T) {
	roles := RolesFromStrings([]string{"viewer", "superuser", "admin", ""})

	assert.Equal(t, Roles{RoleViewer, RoleAdmin}, roles)
	assert.True(t, roles.Contains(RoleAdmin))
	assert.Equal(t, []string{"viewer", "admin"}, roles.ToStrings())
}

func TestRolesFromStrings_NoneValid(t *testing.T) {
	roles := RolesFromStrings([]string{"merchant"})

	assert.Empty(t, roles)
	assert.False(t, roles.Contains(RoleAdmin))
}
