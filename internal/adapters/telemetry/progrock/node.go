package progrock

import (
	"context"
	"io"

	"github.com/grindlemire/graft"
	"go.trai.ch/kiln/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the telemetry adapter node.
	NodeID graft.ID = "adapter.telemetry"
)

func init() {
	graft.Register(graft.Node[ports.TelemetryFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.TelemetryFactory, error) {
			return func(w io.Writer) ports.Telemetry {
				return New(w)
			}, nil
		},
	})
}
