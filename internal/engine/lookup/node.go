package lookup

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/delta/internal/adapters/trace"
	"go.trai.ch/delta/internal/core/ports"
)

// NodeID is the unique identifier for the engine Graft node.
const NodeID graft.ID = "engine.lookup"

// verboseTraceEnv selects verbose trace logging; it affects no cache
// decision.
const verboseTraceEnv = "DELTA_VERBOSE_TRACE"

func init() {
	graft.Register(graft.Node[*Engine]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{trace.NodeID},
		Run: func(ctx context.Context) (*Engine, error) {
			opts := []Option{}
			if os.Getenv(verboseTraceEnv) != "" {
				tracer, err := graft.Dep[ports.Tracer](ctx)
				if err != nil {
					return nil, err
				}
				opts = append(opts, WithTracer(tracer))
			}
			return New(opts...), nil
		},
	})
}
