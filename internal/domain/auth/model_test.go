package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Haarizz/inventory-registries/internal/core/apperror"
)

func TestRoleValid(t *testing.T) {
	for _, r := range []Role{RoleSuperAdmin, RoleAdmin, RoleManager, RoleSupervisor, RoleAccountant, RoleStaff} {
		assert.True(t, r.Valid(), string(r))
	}
	assert.False(t, Role("OWNER").Valid())
	assert.False(t, Role("").Valid())
}

func TestApproverRoles(t *testing.T) {
	roles := ApproverRoles()
	assert.Contains(t, roles, RoleManager)
	assert.Contains(t, roles, RoleSuperAdmin)
	assert.NotContains(t, roles, RoleStaff)
}

func TestUserValidate(t *testing.T) {
	ctx := context.Background()

	u := NewUser("alice", "hash", RoleStaff)
	assert.NoError(t, u.Validate(ctx))

	u = NewUser("", "hash", RoleStaff)
	assert.True(t, apperror.HasCode(u.Validate(ctx), apperror.CodeValidation))

	u = NewUser("bob", "hash", Role("OWNER"))
	assert.True(t, apperror.HasCode(u.Validate(ctx), apperror.CodeValidation))
}

func TestUserLockout(t *testing.T) {
	u := NewUser("alice", "hash", RoleStaff)
	require.NoError(t, u.CanLogin())

	for i := 0; i < 4; i++ {
		u.RecordFailedLogin(5, 15*time.Minute)
	}
	assert.False(t, u.IsLocked())
	require.NoError(t, u.CanLogin())

	u.RecordFailedLogin(5, 15*time.Minute)
	assert.True(t, u.IsLocked())
	assert.True(t, apperror.HasCode(u.CanLogin(), apperror.CodeForbidden))

	u.RecordSuccessfulLogin()
	assert.False(t, u.IsLocked())
	assert.Zero(t, u.FailedLoginAttempts)
	assert.NotNil(t, u.LastLoginAt)
}

func TestUserCanLoginInactive(t *testing.T) {
	u := NewUser("alice", "hash", RoleStaff)
	u.Active = false
	assert.True(t, apperror.HasCode(u.CanLogin(), apperror.CodeForbidden))
}

func TestIsAdmin(t *testing.T) {
	assert.True(t, NewUser("a", "h", RoleSuperAdmin).IsAdmin())
	assert.True(t, NewUser("a", "h", RoleAdmin).IsAdmin())
	assert.False(t, NewUser("a", "h", RoleManager).IsAdmin())
	assert.False(t, NewUser("a", "h", RoleStaff).IsAdmin())
}
