package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/delta/internal/core/ports"
)

// NodeID is the unique identifier for the scenario loader Graft node.
const NodeID graft.ID = "adapter.config"

func init() {
	graft.Register(graft.Node[ports.ScenarioLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ScenarioLoader, error) {
			return FileScenarioLoader{}, nil
		},
	})
}
