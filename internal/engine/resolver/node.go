package resolver

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cookbook/internal/adapters/memstore"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/cookbook/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/cookbook/internal/core/ports"
)

// NodeID is the unique identifier for the resolver Graft node.
const NodeID graft.ID = "engine.resolver"

func init() {
	graft.Register(graft.Node[*Resolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			memstore.NodeID,
			telemetry.TracerNodeID,
		},
		Run: func(ctx context.Context) (*Resolver, error) {
			store, err := graft.Dep[ports.EntryStore](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			return New(store, tracer), nil
		},
	})
}
