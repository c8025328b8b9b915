package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.opentelemetry.io/otel"
	"go.trai.ch/cookbook/internal/adapters/logger"
	"go.trai.ch/cookbook/internal/core/ports"
)

// TracerNodeID is the unique identifier for the tracer Graft node.
const TracerNodeID graft.ID = "adapter.tracer"

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        TracerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run:       runTracerNode,
	})
}

// runTracerNode registers the bridged provider globally and returns a tracer on it.
func runTracerNode(ctx context.Context) (ports.Tracer, error) {
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	otel.SetTracerProvider(NewTracerProvider(log))
	return NewOTelTracer(InstrumentationName), nil
}
