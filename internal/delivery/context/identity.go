package context

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// WithIdentity returns a new context carrying the authenticated principal.
func WithIdentity(ctx context.Context, identity *entity.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// IdentityFromContext returns the principal set by the auth middleware, if any.
func IdentityFromContext(ctx context.Context) (*entity.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(*entity.Identity)

	return identity, ok && identity != nil
}

// SetIdentity stores the principal on both the echo context and its request context.
func SetIdentity(c echo.Context, identity *entity.Identity) {
	c.Set(echoIdentityKey, identity)
	c.SetRequest(c.Request().WithContext(WithIdentity(c.Request().Context(), identity)))
}

// GetIdentity reads the principal from echo.Context.
func GetIdentity(c echo.Context) (*entity.Identity, bool) {
	identity, ok := c.Get(echoIdentityKey).(*entity.Identity)

	return identity, ok && identity != nil
}
