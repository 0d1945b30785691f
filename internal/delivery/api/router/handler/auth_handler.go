package handler

import (
	"log/slog"
	"net/http"
	"time"

	"storefront/config"
	"storefront/internal/delivery/api/response"
	"storefront/internal/delivery/api/validator"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Config *config.Config
	Logger *slog.Logger
}

// AuthHandler issues and destroys sessions.
type AuthHandler struct {
	authUC       usecase.AuthUsecase
	cookieName   string
	cookieSecure bool
	logger       *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC:       params.AuthUC,
		cookieName:   params.Config.Session.CookieName,
		cookieSecure: params.Config.Session.CookieSecure,
		logger:       params.Logger,
	}
}

// LoginRequest represents local credentials
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// GoogleLoginRequest carries a Google Sign-In ID token
type GoogleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

// Login handles POST /login
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, validator.FieldErrors(err))
	}

	output, err := h.authUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
		Client:   clientInfo(c),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return h.startSession(c, http.StatusOK, output)
}

// LoginWithGoogle handles POST /login/google
func (h *AuthHandler) LoginWithGoogle(c echo.Context) error {
	var req GoogleLoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid Google login input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, validator.FieldErrors(err))
	}

	output, err := h.authUC.LoginWithGoogle(c.Request().Context(), &usecase.GoogleLoginInput{
		IDToken: req.IDToken,
		Client:  clientInfo(c),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	status := http.StatusOK
	if output.Created {
		status = http.StatusCreated
	}

	return h.startSession(c, status, output)
}

// Logout handles GET /logout
func (h *AuthHandler) Logout(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.authUC.Logout(c.Request().Context(), identity.SessionID); err != nil {
		return response.HandleAppError(c, err)
	}

	c.SetCookie(h.cookie("", time.Unix(0, 0), -1))

	return response.Success(c, http.StatusOK, map[string]string{"message": "Logged out successfully"})
}

// Session handles GET /session
func (h *AuthHandler) Session(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &SessionResponse{
		UserID:    identity.UserID,
		SessionID: identity.SessionID,
		Email:     identity.Email,
		Username:  identity.Username,
	})
}

func (h *AuthHandler) startSession(c echo.Context, status int, output *usecase.LoginOutput) error {
	c.SetCookie(h.cookie(output.Token, output.Session.ExpiresAt, 0))

	return response.Success(c, status, &LoginResponse{
		User:      newUserResponse(output.User),
		Token:     output.Token,
		ExpiresAt: output.Session.ExpiresAt,
		Created:   output.Created,
	})
}

func (h *AuthHandler) cookie(value string, expires time.Time, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     h.cookieName,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
}

func clientInfo(c echo.Context) usecase.ClientInfo {
	return usecase.ClientInfo{
		UserAgent: c.Request().UserAgent(),
		IP:        c.RealIP(),
	}
}
