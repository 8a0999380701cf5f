package logger

import (
	"context"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/timebar/internal/ui/output"
	"go.trai.ch/timebar/internal/ui/style"
)

const (
	minDateSuffix = "min_date"
	maxDateSuffix = "max_date"
	durationKey   = "duration"
)

// PrettyHandler is a slog.Handler producing human-readable, colored output.
// Record attributes are sorted by key. A min_date and max_date pair sharing a
// prefix is folded into one dates=min..max field and a duration attribute is
// appended in parentheses.
type PrettyHandler struct {
	out   *termenv.Output
	level slog.Leveler
	// bound holds attributes added with WithAttrs, rendered with the group
	// that was open at the time.
	bound []string
	group string
}

// NewPrettyHandler creates a PrettyHandler writing to w.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	level := slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level.Level()
	}

	levelVar := &slog.LevelVar{}
	levelVar.Set(level)

	return &PrettyHandler{
		out:   output.New(w),
		level: levelVar,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats and writes the record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	var msg string
	var color termenv.Color

	switch r.Level {
	case slog.LevelWarn:
		msg = style.Warning + " " + r.Message
		color = termenv.RGBColor(string(style.Yellow))
	case slog.LevelError:
		msg = style.Cross + " " + r.Message
		color = termenv.RGBColor(string(style.Red))
	default:
		msg = r.Message
		color = termenv.RGBColor(string(style.Slate))
	}

	attrs := make([]slog.Attr, 0, r.NumAttrs())
	r.Attrs(func(attr slog.Attr) bool {
		attrs = append(attrs, attr)
		return true
	})

	parts := append(slices.Clone(h.bound), renderAttrs(h.group, attrs)...)
	if len(parts) > 0 {
		msg += " " + strings.Join(parts, " ")
	}

	styled := h.out.String(msg).Foreground(color)
	_, err := h.out.WriteString(styled.String() + "\n")

	return err
}

// WithAttrs returns a new Handler with the given attributes appended.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	bound := make([]string, 0, len(h.bound)+len(attrs))
	bound = append(bound, h.bound...)
	bound = append(bound, renderAttrs(h.group, attrs)...)

	return &PrettyHandler{
		out:   h.out,
		level: h.level,
		bound: bound,
		group: h.group,
	}
}

// WithGroup returns a new Handler with the given group name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	group := name
	if h.group != "" {
		group = h.group + "." + name
	}
	return &PrettyHandler{
		out:   h.out,
		level: h.level,
		bound: h.bound,
		group: group,
	}
}

// renderAttrs renders attrs as sorted key=value fields under group.
func renderAttrs(group string, attrs []slog.Attr) []string {
	values := make(map[string]string, len(attrs))
	var duration string
	for _, attr := range attrs {
		key := attr.Key
		if group != "" {
			key = group + "." + key
		}
		v := attr.Value.Resolve()
		if attr.Key == durationKey && v.Kind() == slog.KindDuration {
			duration = "(" + v.Duration().String() + ")"
			continue
		}
		values[key] = v.String()
	}

	fields := make(map[string]string, len(values))
	for key, value := range values {
		if prefix, found := strings.CutSuffix(key, maxDateSuffix); found {
			if _, paired := values[prefix+minDateSuffix]; paired {
				continue
			}
		}
		if prefix, found := strings.CutSuffix(key, minDateSuffix); found {
			if maxDate, paired := values[prefix+maxDateSuffix]; paired {
				fields[prefix+"dates"] = value + ".." + maxDate
				continue
			}
		}
		fields[key] = quote(value)
	}

	parts := make([]string, 0, len(fields)+1)
	for _, key := range slices.Sorted(maps.Keys(fields)) {
		parts = append(parts, key+"="+fields[key])
	}
	if duration != "" {
		parts = append(parts, duration)
	}
	return parts
}

func quote(value string) string {
	if value == "" || strings.ContainsAny(value, " \t\n\"=") {
		return strconv.Quote(value)
	}
	return value
}
