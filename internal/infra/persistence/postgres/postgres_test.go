package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPoolMonitor_Report(t *testing.T) {
	newMonitor := func() (*poolMonitor, *bytes.Buffer) {
		buf := &bytes.Buffer{}
		logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

		return &poolMonitor{logger: logger, warnAfter: 50 * time.Millisecond}, buf
	}
	ctx := context.Background()

	t.Run("no waits", func(t *testing.T) {
		m, buf := newMonitor()
		m.report(ctx, sql.DBStats{WaitCount: 3}, sql.DBStats{WaitCount: 3})
		assert.Empty(t, buf.String())
	})

	t.Run("short waits are debug", func(t *testing.T) {
		m, buf := newMonitor()
		m.report(ctx, sql.DBStats{}, sql.DBStats{WaitCount: 2, WaitDuration: 10 * time.Millisecond})
		assert.Contains(t, buf.String(), "level=DEBUG")
		assert.Contains(t, buf.String(), "avg_wait=5ms")
	})

	t.Run("long waits warn", func(t *testing.T) {
		m, buf := newMonitor()
		m.report(ctx, sql.DBStats{WaitCount: 1}, sql.DBStats{WaitCount: 2, WaitDuration: time.Second})
		assert.Contains(t, buf.String(), "level=WARN")
	})
}
