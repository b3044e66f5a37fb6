package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Haarizz/inventory-registries/internal/core/apperror"
	"github.com/Haarizz/inventory-registries/internal/core/id"
)

type mockUserRepo struct {
	users     map[id.ID]*User
	updated   []id.ID
	updateErr error
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[id.ID]*User)}
}

func (m *mockUserRepo) add(username string, role Role) *User {
	u := NewUser(username, "hash", role)
	m.users[u.ID] = u
	return u
}

func (m *mockUserRepo) Create(_ context.Context, user *User) error {
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, userID id.ID) (*User, error) {
	u, ok := m.users[userID]
	if !ok {
		return nil, apperror.NewNotFound("user", userID.String())
	}
	return u, nil
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (*User, error) {
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, apperror.NewNotFound("user", username)
}

func (m *mockUserRepo) Update(_ context.Context, user *User) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.users[user.ID] = user
	m.updated = append(m.updated, user.ID)
	return nil
}

func (m *mockUserRepo) SetActive(_ context.Context, userID id.ID, active bool) error {
	u, ok := m.users[userID]
	if !ok {
		return apperror.NewNotFound("user", userID.String())
	}
	u.Active = active
	return nil
}

func (m *mockUserRepo) List(_ context.Context, _ UserFilter) ([]User, int64, error) {
	out := make([]User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, *u)
	}
	return out, int64(len(out)), nil
}

func (m *mockUserRepo) ListUsernamesByRoles(_ context.Context, roles []Role) ([]string, error) {
	var names []string
	for _, u := range m.users {
		for _, r := range roles {
			if u.Role == r {
				names = append(names, u.Username)
			}
		}
	}
	return names, nil
}

func (m *mockUserRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	for _, u := range m.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

type mockTokenRepo struct {
	revokedFor []id.ID
}

func (m *mockTokenRepo) SaveRefreshToken(_ context.Context, _ *RefreshToken) error { return nil }
func (m *mockTokenRepo) GetRefreshToken(_ context.Context, _ string) (*RefreshToken, error) {
	return nil, apperror.NewUnauthorized("invalid refresh token")
}
func (m *mockTokenRepo) RevokeRefreshToken(_ context.Context, _ id.ID, _ string) error { return nil }
func (m *mockTokenRepo) RevokeAllUserTokens(_ context.Context, userID id.ID, _ string) error {
	m.revokedFor = append(m.revokedFor, userID)
	return nil
}
func (m *mockTokenRepo) CleanupExpiredTokens(_ context.Context) (int64, error) { return 0, nil }

type passthroughTx struct{}

func (passthroughTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newTestService(userRepo *mockUserRepo, tokenRepo *mockTokenRepo) *Service {
	jwtService := NewJWTService(DefaultJWTConfig("test-secret"))
	return NewService(userRepo, tokenRepo, passthroughTx{}, jwtService, DefaultServiceConfig())
}

func TestService_UpdateUserRole(t *testing.T) {
	ctx := context.Background()

	t.Run("changes role and revokes sessions", func(t *testing.T) {
		userRepo := newMockUserRepo()
		tokenRepo := &mockTokenRepo{}
		svc := newTestService(userRepo, tokenRepo)

		u := userRepo.add("alice", RoleStaff)

		updated, err := svc.UpdateUserRole(ctx, u.ID, RoleManager)
		require.NoError(t, err)

		assert.Equal(t, RoleManager, updated.Role)
		assert.Equal(t, []id.ID{u.ID}, userRepo.updated)
		assert.Equal(t, []id.ID{u.ID}, tokenRepo.revokedFor)
	})

	t.Run("same role is a no-op", func(t *testing.T) {
		userRepo := newMockUserRepo()
		tokenRepo := &mockTokenRepo{}
		svc := newTestService(userRepo, tokenRepo)

		u := userRepo.add("alice", RoleManager)

		updated, err := svc.UpdateUserRole(ctx, u.ID, RoleManager)
		require.NoError(t, err)

		assert.Equal(t, RoleManager, updated.Role)
		assert.Empty(t, userRepo.updated)
		assert.Empty(t, tokenRepo.revokedFor)
	})

	t.Run("unknown role rejected", func(t *testing.T) {
		userRepo := newMockUserRepo()
		svc := newTestService(userRepo, &mockTokenRepo{})

		u := userRepo.add("alice", RoleStaff)

		_, err := svc.UpdateUserRole(ctx, u.ID, Role("WIZARD"))
		require.Error(t, err)
		assert.True(t, apperror.HasCode(err, apperror.CodeValidation))
	})

	t.Run("unknown user", func(t *testing.T) {
		svc := newTestService(newMockUserRepo(), &mockTokenRepo{})

		_, err := svc.UpdateUserRole(ctx, id.New(), RoleManager)
		require.Error(t, err)
		assert.True(t, apperror.IsNotFound(err))
	})
}

func TestService_DeactivateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("deactivates and revokes sessions", func(t *testing.T) {
		userRepo := newMockUserRepo()
		tokenRepo := &mockTokenRepo{}
		svc := newTestService(userRepo, tokenRepo)

		u := userRepo.add("bob", RoleStaff)

		require.NoError(t, svc.DeactivateUser(ctx, u.ID))
		assert.False(t, userRepo.users[u.ID].Active)
		assert.Equal(t, []id.ID{u.ID}, tokenRepo.revokedFor)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc := newTestService(newMockUserRepo(), &mockTokenRepo{})

		err := svc.DeactivateUser(ctx, id.New())
		require.Error(t, err)
		assert.True(t, apperror.IsNotFound(err))
	})
}
