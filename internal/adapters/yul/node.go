package yul

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/kiln/internal/core/ports"
)

// NodeID is the unique identifier for the Yul formatter Graft node.
const NodeID graft.ID = "adapter.yul.formatter"

func init() {
	graft.Register(graft.Node[ports.IRFormatter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.IRFormatter, error) {
			return NewFormatter(), nil
		},
	})
}
