package telemetry

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/timebar/internal/core/ports"
	"go.trai.ch/zerr"
)

// StructuredLogger is implemented by loggers that keep span attributes as
// fields instead of a preformatted line.
type StructuredLogger interface {
	InfoAttrs(msg string, attrs ...slog.Attr)
}

// Bridge implements sdktrace.SpanProcessor to report finished spans to a Logger.
type Bridge struct {
	logger ports.Logger
}

// NewBridge returns a new Bridge.
func NewBridge(logger ports.Logger) *Bridge {
	return &Bridge{
		logger: logger,
	}
}

// OnStart does nothing; spans are reported once they end.
func (b *Bridge) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd logs the span name, its attributes and its duration.
// Failed spans are logged as errors.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.logger == nil {
		return
	}

	sc := s.SpanContext()
	if !sc.IsValid() {
		return
	}

	if s.Status().Code == codes.Error {
		desc := s.Status().Description
		if desc == "" {
			desc = "span failed"
		}
		b.logger.Error(zerr.With(zerr.New(desc), "span", s.Name()))
		return
	}

	if sl, ok := b.logger.(StructuredLogger); ok {
		sl.InfoAttrs(s.Name(), SpanAttrs(s)...)
		return
	}
	b.logger.Info(FormatSpan(s))
}

// SpanAttrs converts the attributes of a finished span to slog attributes,
// followed by its duration.
func SpanAttrs(s sdktrace.ReadOnlySpan) []slog.Attr {
	kvs := s.Attributes()
	attrs := make([]slog.Attr, 0, len(kvs)+1)
	for _, kv := range kvs {
		key := string(kv.Key)
		switch kv.Value.Type() {
		case attribute.STRING:
			attrs = append(attrs, slog.String(key, kv.Value.AsString()))
		case attribute.INT64:
			attrs = append(attrs, slog.Int64(key, kv.Value.AsInt64()))
		case attribute.FLOAT64:
			attrs = append(attrs, slog.Float64(key, kv.Value.AsFloat64()))
		case attribute.BOOL:
			attrs = append(attrs, slog.Bool(key, kv.Value.AsBool()))
		default:
			attrs = append(attrs, slog.String(key, kv.Value.Emit()))
		}
	}
	return append(attrs, slog.Duration("duration", s.EndTime().Sub(s.StartTime())))
}

// FormatSpan renders a finished span as "name key=value ... (duration)".
// Attributes are sorted by key.
func FormatSpan(s sdktrace.ReadOnlySpan) string {
	attrs := s.Attributes()
	pairs := make([]string, 0, len(attrs))
	for _, kv := range attrs {
		pairs = append(pairs, fmt.Sprintf("%s=%s", kv.Key, kv.Value.Emit()))
	}
	slices.Sort(pairs)

	var sb strings.Builder
	sb.WriteString(s.Name())
	for _, p := range pairs {
		sb.WriteByte(' ')
		sb.WriteString(p)
	}
	fmt.Fprintf(&sb, " (%s)", s.EndTime().Sub(s.StartTime()))
	return sb.String()
}

// ForceFlush does nothing.
func (b *Bridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *Bridge) Shutdown(_ context.Context) error {
	return nil
}
