package telemetry

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/cookbook/internal/core/ports"
)

// Bridge implements sdktrace.SpanProcessor and reports failed spans to a Logger.
type Bridge struct {
	logger ports.Logger
}

// NewBridge returns a new Bridge.
func NewBridge(logger ports.Logger) *Bridge {
	return &Bridge{
		logger: logger,
	}
}

// OnStart does nothing.
func (b *Bridge) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd logs spans that ended with an error status, with their attributes.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.logger == nil || s.Status().Code != codes.Error {
		return
	}

	desc := s.Status().Description
	if desc == "" {
		desc = "span failed"
	}

	var line strings.Builder
	fmt.Fprintf(&line, "span %s failed after %s: %s", s.Name(),
		s.EndTime().Sub(s.StartTime()).Round(time.Microsecond), desc)
	for _, attr := range s.Attributes() {
		fmt.Fprintf(&line, " %s=%s", attr.Key, attr.Value.Emit())
	}

	b.logger.Info(line.String())
}

// ForceFlush does nothing.
func (b *Bridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *Bridge) Shutdown(_ context.Context) error {
	return nil
}

// NewTracerProvider creates an SDK tracer provider that reports failed spans
// to logger through a Bridge.
func NewTracerProvider(logger ports.Logger) *sdktrace.TracerProvider {
	return sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(NewBridge(logger)),
	)
}
