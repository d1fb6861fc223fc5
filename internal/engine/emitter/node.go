package emitter

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/kiln/internal/adapters/fs"        //nolint:depguard // Wired in engine wiring
	"go.trai.ch/kiln/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/kiln/internal/adapters/yul"       //nolint:depguard // Wired in engine wiring
	"go.trai.ch/kiln/internal/core/ports"
)

// NodeID is the unique identifier for the emitter Graft node.
const NodeID graft.ID = "engine.emitter"

func init() {
	graft.Register(graft.Node[*Emitter]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.GuardNodeID,
			fs.WriterNodeID,
			yul.NodeID,
		},
		Run: func(ctx context.Context) (*Emitter, error) {
			guard, err := graft.Dep[ports.OutputGuard](ctx)
			if err != nil {
				return nil, err
			}

			writer, err := graft.Dep[ports.ArtifactWriter](ctx)
			if err != nil {
				return nil, err
			}

			formatter, err := graft.Dep[ports.IRFormatter](ctx)
			if err != nil {
				return nil, err
			}

			// Builds attach their own recording session with WithTelemetry.
			return New(guard, writer, formatter, telemetry.NewNoOp()), nil
		},
	})
}
