package auth

import (
	"context"

	"github.com/Haarizz/inventory-registries/internal/core/id"
)

// UserRepository defines user storage operations.
type UserRepository interface {
	// Create creates a new user.
	Create(ctx context.Context, user *User) error

	// GetByID retrieves user by ID.
	GetByID(ctx context.Context, userID id.ID) (*User, error)

	// GetByUsername retrieves an active user by username.
	GetByUsername(ctx context.Context, username string) (*User, error)

	// Update updates user data (with optimistic locking).
	Update(ctx context.Context, user *User) error

	// SetActive soft-deletes or restores a user.
	SetActive(ctx context.Context, userID id.ID, active bool) error

	// List retrieves users with filtering.
	List(ctx context.Context, filter UserFilter) ([]User, int64, error)

	// ListUsernamesByRoles returns usernames of active users holding
	// any of the given roles. Used for notification fan-out.
	ListUsernamesByRoles(ctx context.Context, roles []Role) ([]string, error)

	// ExistsByUsername checks if the username is taken by an active user.
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}

// TokenRepository defines refresh token storage operations.
type TokenRepository interface {
	// SaveRefreshToken saves a refresh token.
	SaveRefreshToken(ctx context.Context, token *RefreshToken) error

	// GetRefreshToken retrieves refresh token by hash.
	GetRefreshToken(ctx context.Context, tokenHash string) (*RefreshToken, error)

	// RevokeRefreshToken revokes a refresh token.
	RevokeRefreshToken(ctx context.Context, tokenID id.ID, reason string) error

	// RevokeAllUserTokens revokes all tokens for a user.
	RevokeAllUserTokens(ctx context.Context, userID id.ID, reason string) error

	// CleanupExpiredTokens removes expired tokens.
	CleanupExpiredTokens(ctx context.Context) (int64, error)
}

// UserFilter for listing users.
type UserFilter struct {
	Search          string
	Role            Role
	IncludeInactive bool
	Limit           int
	Offset          int
}
