package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	svc := NewJWTService(DefaultJWTConfig("test-secret"))
	user := NewUser("alice", "hash", RoleManager)
	user.Email = "alice@example.com"

	token, expiresAt, err := svc.GenerateAccessToken(user)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), expiresAt, time.Minute)

	uc, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), uc.UserID)
	assert.Equal(t, "alice", uc.Username)
	assert.Equal(t, "alice@example.com", uc.Email)
	assert.Equal(t, []string{"MANAGER"}, uc.Roles)
	assert.False(t, uc.IsAdmin)
}

func TestJWTAdminFlag(t *testing.T) {
	svc := NewJWTService(DefaultJWTConfig("test-secret"))

	uc := func(role Role) bool {
		token, _, err := svc.GenerateAccessToken(NewUser("u", "hash", role))
		require.NoError(t, err)
		parsed, err := svc.ValidateToken(token)
		require.NoError(t, err)
		return parsed.IsAdmin
	}

	assert.True(t, uc(RoleSuperAdmin))
	assert.True(t, uc(RoleAdmin))
	assert.False(t, uc(RoleStaff))
}

func TestJWTWrongSecret(t *testing.T) {
	issuer := NewJWTService(DefaultJWTConfig("secret-a"))
	verifier := NewJWTService(DefaultJWTConfig("secret-b"))

	token, _, err := issuer.GenerateAccessToken(NewUser("alice", "hash", RoleStaff))
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTExpiredToken(t *testing.T) {
	cfg := DefaultJWTConfig("test-secret")
	cfg.AccessTokenTTL = -time.Minute
	svc := NewJWTService(cfg)

	token, _, err := svc.GenerateAccessToken(NewUser("alice", "hash", RoleStaff))
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTGarbageToken(t *testing.T) {
	svc := NewJWTService(DefaultJWTConfig("test-secret"))

	_, err := svc.ValidateToken("not-a-token")
	assert.Error(t, err)
}
