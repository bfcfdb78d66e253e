package appctx

import (
	"context"

	"guilddash/models"
)

// Context key for storing the authenticated identity
type contextKey string

const IdentityContextKey contextKey = "identity"

// SetIdentity adds the authenticated identity to the request context
func SetIdentity(ctx context.Context, identity *models.Identity) context.Context {
	return context.WithValue(ctx, IdentityContextKey, identity)
}

// GetIdentity extracts the authenticated identity from the request context
func GetIdentity(ctx context.Context) (*models.Identity, bool) {
	identity, ok := ctx.Value(IdentityContextKey).(*models.Identity)
	return identity, ok
}
