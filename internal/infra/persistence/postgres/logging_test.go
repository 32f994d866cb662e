package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"backoffice/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var lines []map[string]any
	for _, raw := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if raw == "" {
			continue
		}
		var line map[string]any
		require.NoError(t, json.Unmarshal([]byte(raw), &line))
		lines = append(lines, line)
	}

	return lines
}

func TestGormSlogLogger_Trace(t *testing.T) {
	stmt := func() (string, int64) { return "SELECT 1", 1 }

	tests := []struct {
		name    string
		debug   bool
		elapsed time.Duration
		err     error
		wantMsg string
		wantLvl string
	}{
		{name: "fast statement without debug is dropped", elapsed: time.Millisecond},
		{name: "fast statement with debug", debug: true, elapsed: time.Millisecond, wantMsg: "SQL statement", wantLvl: "INFO"},
		{name: "slow statement", elapsed: time.Second, wantMsg: "Slow SQL statement", wantLvl: "WARN"},
		{name: "failure", elapsed: time.Millisecond, err: errors.New("boom"), wantMsg: "SQL statement failed", wantLvl: "ERROR"},
		{name: "record not found is not a failure", elapsed: time.Millisecond, err: gorm.ErrRecordNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug
			l := newGormSlogLogger(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), cfg)

			l.Trace(context.Background(), time.Now().Add(-tt.elapsed), stmt, tt.err)

			lines := decodeLines(t, &buf)
			if tt.wantMsg == "" {
				assert.Empty(t, lines)

				return
			}
			require.Len(t, lines, 1)
			assert.Equal(t, tt.wantMsg, lines[0]["msg"])
			assert.Equal(t, tt.wantLvl, lines[0]["level"])
			assert.Equal(t, "SELECT 1", lines[0]["sql"])
		})
	}
}

func TestGormSlogLogger_SilentMode(t *testing.T) {
	var buf bytes.Buffer
	l := newGormSlogLogger(slog.New(slog.NewJSONHandler(&buf, nil)), &config.Config{}).LogMode(gormlogger.Silent)

	l.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 1", 0 }, errors.New("boom"))
	l.Error(context.Background(), "ignored %d", 1)

	assert.Zero(t, buf.Len())
}

func TestPoolMonitor_Observe(t *testing.T) {
	var buf bytes.Buffer
	samples := []sql.DBStats{
		{WaitCount: 2, WaitDuration: 10 * time.Millisecond, OpenConnections: 5, InUse: 5},
		{WaitCount: 6, WaitDuration: 110 * time.Millisecond, OpenConnections: 5, InUse: 5},
	}
	next := 0
	m := &poolMonitor{
		logger: slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})),
		stats: func() sql.DBStats {
			s := samples[next]
			next++

			return s
		},
		warnThreshold: 50 * time.Millisecond,
	}

	m.observe(context.Background())
	m.observe(context.Background())

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 2)
	assert.Equal(t, "DEBUG", lines[0]["level"])
	assert.Equal(t, "WARN", lines[1]["level"])
	assert.InDelta(t, 4, lines[1]["waits"], 0)
}
