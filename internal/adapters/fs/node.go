package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/kiln/internal/core/ports"
)

const (
	// GuardNodeID is the unique identifier for the output guard Graft node.
	GuardNodeID graft.ID = "adapter.fs.guard"
	// WriterNodeID is the unique identifier for the artifact writer Graft node.
	WriterNodeID graft.ID = "adapter.fs.writer"
)

func init() {
	graft.Register(graft.Node[ports.OutputGuard]{
		ID:        GuardNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.OutputGuard, error) {
			return NewGuard(), nil
		},
	})

	graft.Register(graft.Node[ports.ArtifactWriter]{
		ID:        WriterNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ArtifactWriter, error) {
			return NewWriter(), nil
		},
	})
}
