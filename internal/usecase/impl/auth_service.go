package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultSessionTTL = 24 * time.Hour

// authService implements the AuthUsecase interface.
type authService struct {
	txManager         repository.TransactionManager
	userRepo          repository.UserRepository
	sessionRepo       repository.SessionRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	googleAuthService service.OAuthAuthService
	sessionTTL        time.Duration
	now               func() time.Time
	logger            *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager         repository.TransactionManager
	UserRepo          repository.UserRepository
	SessionRepo       repository.SessionRepository
	Hasher            service.PasswordHasher
	TokenService      service.TokenService
	GoogleAuthService service.OAuthAuthService
	Config            *config.Config
	Logger            *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	sessionTTL := defaultSessionTTL
	if params.Config != nil && params.Config.Session != nil && params.Config.Session.TTL > 0 {
		sessionTTL = params.Config.Session.TTL
	}

	return &authService{
		txManager:         params.TxManager,
		userRepo:          params.UserRepo,
		sessionRepo:       params.SessionRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		googleAuthService: params.GoogleAuthService,
		sessionTTL:        sessionTTL,
		now:               time.Now,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login authenticates a user with email and password and opens a session.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Info("Login attempt", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Warn("Login failed: unknown email", slog.String("email", input.Email))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("unknown email")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user for login")
	}

	if !user.HasPassword() || !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed: password mismatch", slog.Any("user_id", user.ID))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("password mismatch")
	}

	return srv.startSession(ctx, user, entity.ProviderTypeLocal, input.Client, false)
}

// LoginWithGoogle verifies a Google ID token, links or creates the matching
// account and opens a session.
func (srv *authService) LoginWithGoogle(ctx context.Context, input *usecase.GoogleLoginInput) (*usecase.LoginOutput, error) {
	oauthUser, err := srv.googleAuthService.VerifyIDToken(ctx, input.IDToken)
	if err != nil {
		srv.log(ctx).Warn("Google ID token rejected", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to verify google id token")
	}

	var (
		user    *entity.User
		created bool
	)
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var txErr error
		user, created, txErr = srv.findOrCreateGoogleUser(ctx, repoFactory.UserRepo(), oauthUser)

		return txErr
	})
	if err != nil {
		srv.log(ctx).Error("Failed to resolve google account", slog.String("email", oauthUser.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute google login transaction")
	}

	return srv.startSession(ctx, user, oauthUser.Provider, input.Client, created)
}

func (srv *authService) findOrCreateGoogleUser(
	ctx context.Context,
	userRepo repository.UserRepository,
	oauthUser *service.OAuthUser,
) (*entity.User, bool, error) {
	user, err := userRepo.FindByGoogleID(ctx, oauthUser.ID)
	if err == nil {
		return user, false, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, false, errors.Wrap(err, "failed to find user by google id")
	}

	googleID := oauthUser.ID

	user, err = userRepo.FindByEmail(ctx, oauthUser.Email)
	switch {
	case err == nil:
		if err := userRepo.LinkGoogleID(ctx, user.ID, googleID); err != nil {
			return nil, false, translate(err, "failed to link google account")
		}
		user.GoogleID = &googleID
		srv.log(ctx).Info("Linked google account to existing user", slog.Any("user_id", user.ID))

		return user, false, nil
	case !errors.Is(err, repository.ErrUserNotFound):
		return nil, false, errors.Wrap(err, "failed to find user by email")
	}

	user = &entity.User{
		Username: googleUsername(oauthUser),
		Email:    oauthUser.Email,
		GoogleID: &googleID,
	}
	if err := userRepo.Create(ctx, user); err != nil {
		return nil, false, errors.Wrap(err, "failed to create google user")
	}
	srv.log(ctx).Info("Registered user from google sign-in", slog.Any("user_id", user.ID))

	return user, true, nil
}

func googleUsername(oauthUser *service.OAuthUser) string {
	if name := strings.TrimSpace(oauthUser.Name); name != "" {
		return name
	}
	local, _, _ := strings.Cut(oauthUser.Email, "@")

	return local
}

func (srv *authService) startSession(
	ctx context.Context,
	user *entity.User,
	provider entity.ProviderType,
	client usecase.ClientInfo,
	created bool,
) (*usecase.LoginOutput, error) {
	session := &entity.Session{
		ID:        uuid.New(),
		UserID:    user.ID,
		Provider:  provider,
		UserAgent: client.UserAgent,
		IP:        client.IP,
		ExpiresAt: srv.now().Add(srv.sessionTTL),
	}
	if err := srv.sessionRepo.Create(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to create session")
	}

	token, err := srv.tokenService.Issue(session.ID, user.ID, session.ExpiresAt)
	if err != nil {
		srv.log(ctx).Error("Failed to sign session token", slog.Any("session_id", session.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue session token")
	}

	srv.log(ctx).Info("Session started",
		slog.Any("user_id", user.ID),
		slog.Any("session_id", session.ID),
		slog.String("provider", string(provider)),
	)

	return &usecase.LoginOutput{
		User:    user,
		Session: session,
		Token:   token,
		Created: created,
	}, nil
}

// Logout destroys the session. An already missing session is not an error.
func (srv *authService) Logout(ctx context.Context, sessionID uuid.UUID) error {
	err := srv.sessionRepo.Delete(ctx, sessionID)
	if err != nil && !errors.Is(err, repository.ErrSessionNotFound) {
		return errors.Wrap(err, "failed to delete session")
	}

	srv.log(ctx).Info("Session ended", slog.Any("session_id", sessionID))

	return nil
}

// ResolveSession verifies the token and loads the live session and its user.
// Store failures surface as internal errors and never authenticate the caller.
func (srv *authService) ResolveSession(ctx context.Context, token string) (*entity.Identity, error) {
	claims, err := srv.tokenService.Parse(token)
	if err != nil {
		srv.log(ctx).Debug("Session token rejected", slog.Any("error", err))

		return nil, domainerrors.ErrSessionInvalid.WrapMessage("session token rejected")
	}

	session, err := srv.sessionRepo.FindActiveByID(ctx, claims.SessionID)
	if errors.Is(err, repository.ErrSessionNotFound) {
		return nil, domainerrors.ErrSessionInvalid.WrapMessage("session expired or revoked")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load session")
	}
	if session.UserID != claims.UserID {
		srv.log(ctx).Warn("Session token names a different user", slog.Any("session_id", session.ID))

		return nil, domainerrors.ErrSessionInvalid.WrapMessage("session owner mismatch")
	}

	user, err := srv.userRepo.FindByID(ctx, session.UserID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrSessionInvalid.WrapMessage("session user no longer exists")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load session user")
	}

	return &entity.Identity{
		UserID:    user.ID,
		SessionID: session.ID,
		Email:     user.Email,
		Username:  user.Username,
	}, nil
}

// CleanupExpiredSessions removes sessions whose expiry has passed.
func (srv *authService) CleanupExpiredSessions(ctx context.Context) (int64, error) {
	removed, err := srv.sessionRepo.DeleteExpired(ctx, srv.now())
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete expired sessions")
	}

	if removed > 0 {
		srv.log(ctx).Info("Expired sessions removed", slog.Int64("count", removed))
	}

	return removed, nil
}
