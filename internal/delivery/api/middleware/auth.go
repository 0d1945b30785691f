package middleware

import (
	"strings"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware gates routes behind a server-side session.
type AuthMiddleware struct {
	authUC     usecase.AuthUsecase
	cookieName string
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUC usecase.AuthUsecase, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{
		authUC:     authUC,
		cookieName: cfg.Session.CookieName,
	}
}

// Authenticate resolves the session token from the cookie, or from a Bearer
// header for non-browser clients, and attaches the identity to the request.
// A cookie that no longer resolves does not shadow a valid header. Store
// failures surface as 500, never as an anonymous pass-through.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokens := m.sessionTokens(c)
		if len(tokens) == 0 {
			return domainerrors.ErrAuthRequired
		}

		var (
			identity *entity.Identity
			err      error
		)
		for _, token := range tokens {
			identity, err = m.authUC.ResolveSession(c.Request().Context(), token)
			if err == nil || !domainerrors.IsKind(err, domainerrors.KindUnauthorized) {
				break
			}
		}
		if err != nil {
			return err
		}

		deliverycontext.SetIdentity(c, identity)

		if logger := deliverycontext.GetLogger(c.Request().Context()); logger != nil {
			ctx := deliverycontext.WithLogger(c.Request().Context(), logger.With("user_id", identity.UserID.String()))
			c.SetRequest(c.Request().WithContext(ctx))
		}

		return next(c)
	}
}

// sessionTokens lists candidate tokens, cookie first.
func (m *AuthMiddleware) sessionTokens(c echo.Context) []string {
	var tokens []string
	if cookie, err := c.Cookie(m.cookieName); err == nil && cookie.Value != "" {
		tokens = append(tokens, cookie.Value)
	}

	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if token, ok := strings.CutPrefix(header, bearerPrefix); ok {
		if token = strings.TrimSpace(token); token != "" && (len(tokens) == 0 || tokens[0] != token) {
			tokens = append(tokens, token)
		}
	}

	return tokens
}
