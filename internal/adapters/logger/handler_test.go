package logger_test

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/timebar/internal/adapters/logger"
)

func newTestHandler(t *testing.T) (*slog.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	return slog.New(logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo})), buf
}

func TestPrettyHandler_Levels(t *testing.T) {
	tests := []struct {
		name  string
		level slog.Level
		want  string
	}{
		{name: "info", level: slog.LevelInfo, want: "message\n"},
		{name: "warn", level: slog.LevelWarn, want: "! message\n"},
		{name: "error", level: slog.LevelError, want: "✗ message\n"},
		{name: "debug filtered", level: slog.LevelDebug, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestHandler(t)
			lg.Log(t.Context(), tt.level, "message")
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestPrettyHandler_Attrs(t *testing.T) {
	lg, buf := newTestHandler(t)

	lg.With("min", "2020-02").WithGroup("range").Info("filtered", "max", "2020-10")

	assert.Equal(t, "filtered min=2020-02 range.max=2020-10\n", buf.String())
}

func TestPrettyHandler_FieldRendering(t *testing.T) {
	tests := []struct {
		name  string
		attrs []slog.Attr
		want  string
	}{
		{
			name:  "sorted by key",
			attrs: []slog.Attr{slog.Int("nodes", 9), slog.Int("edges", 8)},
			want:  "span edges=8 nodes=9\n",
		},
		{
			name: "date pair folds into a range",
			attrs: []slog.Attr{
				slog.String("timebar.max_date", "2020-10"),
				slog.String("timebar.min_date", "2020-02"),
				slog.String("timebar.mode", "filtered"),
			},
			want: "span timebar.dates=2020-02..2020-10 timebar.mode=filtered\n",
		},
		{
			name:  "lone date stays as is",
			attrs: []slog.Attr{slog.String("timebar.min_date", "2020-02")},
			want:  "span timebar.min_date=2020-02\n",
		},
		{
			name:  "duration goes last",
			attrs: []slog.Attr{slog.Duration("duration", 1500*time.Microsecond), slog.Int("nodes", 3)},
			want:  "span nodes=3 (1.5ms)\n",
		},
		{
			name:  "values with spaces are quoted",
			attrs: []slog.Attr{slog.String("path", "my graph.json"), slog.String("empty", "")},
			want:  "span empty=\"\" path=\"my graph.json\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestHandler(t)
			lg.LogAttrs(t.Context(), slog.LevelInfo, "span", tt.attrs...)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestPrettyHandler_NestedGroups(t *testing.T) {
	lg, buf := newTestHandler(t)

	lg.WithGroup("timebar").WithGroup("range").Info("filtered", "min_date", "2020-01", "max_date", "2020-03")

	assert.Equal(t, "filtered timebar.range.dates=2020-01..2020-03\n", buf.String())
}
