// Package security provides security-related utilities including user context management.
package security

import "context"

type actorKey struct{}

// WithActor adds the authenticated actor's username to context.
// Used by middleware to propagate identity through the request chain.
func WithActor(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, actorKey{}, username)
}

// GetActor retrieves the actor username from context.
// Returns empty string if not found.
func GetActor(ctx context.Context) string {
	if name, ok := ctx.Value(actorKey{}).(string); ok {
		return name
	}
	return ""
}
