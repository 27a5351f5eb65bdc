package progrock

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/vito/progrock"
	"go.trai.ch/arxiv/internal/core/ports"
)

// NodeID is the unique identifier for the progrock telemetry node. It is
// an alternative to the default OpenTelemetry tracer and can be selected
// by depending on this node instead.
const NodeID graft.ID = "adapter.telemetry.progrock"

func init() {
	graft.Register(graft.Node[*Recorder]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Recorder, error) {
			return NewRecorder(progrock.NewTape()), nil
		},
	})
}

var _ ports.Tracer = (*Recorder)(nil)
