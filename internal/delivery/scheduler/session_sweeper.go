// Package scheduler runs periodic background jobs alongside the API.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"storefront/config"
	"storefront/internal/delivery"
	"storefront/internal/usecase"

	"go.uber.org/fx"
)

// SessionSweeperParams holds dependencies for the session sweeper, injected by Fx.
type SessionSweeperParams struct {
	fx.In

	Lc     fx.Lifecycle
	Cfg    *config.Config
	Logger *slog.Logger
	AuthUC usecase.AuthUsecase
}

// sessionSweeper deletes expired sessions on a fixed interval.
type sessionSweeper struct {
	authUC   usecase.AuthUsecase
	interval time.Duration
	logger   *slog.Logger
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// NewSessionSweeper creates the sweeper; it starts when the app serves its deliveries.
func NewSessionSweeper(params SessionSweeperParams) delivery.Delivery {
	s := &sessionSweeper{
		authUC:   params.AuthUC,
		interval: params.Cfg.Session.CleanupInterval,
		logger:   params.Logger,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s
}

// Serve blocks until the sweeper is stopped.
func (s *sessionSweeper) Serve(ctx context.Context) error {
	defer close(s.doneCh)

	s.logger.Info("Starting session sweeper", slog.Duration("interval", s.interval))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopCh:
			return nil
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *sessionSweeper) sweep(ctx context.Context) {
	removed, err := s.authUC.CleanupExpiredSessions(ctx)
	if err != nil {
		s.logger.Error("Failed to remove expired sessions", slog.String("error", err.Error()))

		return
	}

	if removed > 0 {
		s.logger.Info("Removed expired sessions", slog.Int64("removed", removed))
	}
}

func (s *sessionSweeper) stop(ctx context.Context) error {
	close(s.stopCh)

	select {
	case <-s.doneCh:
	case <-ctx.Done():
	}

	s.logger.Info("Session sweeper stopped")

	return nil
}
