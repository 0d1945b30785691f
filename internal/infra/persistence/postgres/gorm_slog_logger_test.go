package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"storefront/config"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newCapturingGormLogger(t *testing.T, cfg *config.Config) (*gormSlogLogger, *bytes.Buffer) {
	t.Helper()

	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return newGormSlogLogger(logger, cfg).(*gormSlogLogger), buf
}

func TestGormSlogLogger_Trace(t *testing.T) {
	cfg := &config.Config{Database: &config.DatabaseConfig{SlowQueryThreshold: 10 * time.Millisecond}}
	query := func() (string, int64) { return `SELECT * FROM "carts"`, 1 }
	ctx := context.Background()

	tests := []struct {
		name    string
		begin   time.Time
		err     error
		want    string
		wantNot string
	}{
		{name: "record not found is silent", begin: time.Now(), err: gorm.ErrRecordNotFound, wantNot: "carts"},
		{name: "unique violation is a warning", begin: time.Now(), err: &pgconn.PgError{Code: pgUniqueViolation}, want: "level=WARN"},
		{name: "other failures are errors", begin: time.Now(), err: errors.New("conn reset"), want: "level=ERROR"},
		{name: "slow query warns", begin: time.Now().Add(-time.Second), want: "Slow query"},
		{name: "fast query is silent outside debug", begin: time.Now(), wantNot: "carts"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, buf := newCapturingGormLogger(t, cfg)

			l.Trace(ctx, tt.begin, query, tt.err)

			if tt.want != "" {
				assert.Contains(t, buf.String(), tt.want)
			}
			if tt.wantNot != "" {
				assert.NotContains(t, buf.String(), tt.wantNot)
			}
		})
	}
}

func TestGormSlogLogger_DebugLogsEveryQuery(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Debug = true
	l, buf := newCapturingGormLogger(t, cfg)

	l.Trace(context.Background(), time.Now(), func() (string, int64) { return `SELECT 1`, 1 }, nil)

	assert.Contains(t, buf.String(), "SELECT 1")
}
