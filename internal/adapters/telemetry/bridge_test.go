package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/cookbook/internal/adapters/telemetry"
	"go.trai.ch/cookbook/internal/core/ports"
	"go.trai.ch/cookbook/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestBridge_LogsFailedSpans(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	var line string
	log.EXPECT().Info(gomock.Any()).Do(func(msg string) { line = msg }).Times(1)

	tp := telemetry.NewTracerProvider(log)
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	tracer := telemetry.NewOTelTracerWithProvider(tp, telemetry.InstrumentationName)

	_, span := tracer.Start(context.Background(), "resolver.Resolve")
	span.SetAttribute("recipe", "Loop")
	span.RecordError(errors.New("failed to expand recipe: cycle detected"))
	span.End()

	assert.Contains(t, line, "span resolver.Resolve failed after")
	assert.Contains(t, line, "failed to expand recipe: cycle detected")
	assert.Contains(t, line, "recipe=Loop")
}

func TestBridge_IgnoresSuccessfulSpans(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	tp := telemetry.NewTracerProvider(log)
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	tracer := telemetry.NewOTelTracerWithProvider(tp, telemetry.InstrumentationName)

	_, span := tracer.Start(context.Background(), "resolver.Resolve")
	span.SetAttribute("cook_time", 14)
	span.RecordError(nil)
	span.End()
}

func TestTracerNode_InstallsBridgedProvider(t *testing.T) {
	previous := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(previous) })

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	var line string
	log.EXPECT().Info(gomock.Any()).Do(func(msg string) { line = msg }).Times(1)

	tracer, _, err := graft.ExecuteFor[ports.Tracer](context.Background(),
		graft.DisableCache(),
		graft.PatchValue[ports.Logger](log),
	)
	require.NoError(t, err)

	ctx, span := tracer.Start(context.Background(), "resolver.Resolve")
	assert.True(t, trace.SpanFromContext(ctx).IsRecording())

	span.SetAttribute("recipe", "Pancake")
	span.RecordError(errors.New("recipe references an unknown entry"))
	span.End()

	assert.Contains(t, line, "recipe references an unknown entry")
	assert.Contains(t, line, "recipe=Pancake")
}
