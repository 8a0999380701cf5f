package telemetry

import (
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/timebar/internal/core/ports"
)

// WrapSpan wraps a raw OTel span in the port adapter.
func WrapSpan(span trace.Span) ports.Span {
	return &OTelSpan{span: span}
}
