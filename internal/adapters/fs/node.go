package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fanout/internal/core/ports"
)

// SignerNodeID is the unique identifier for the Signer Graft node.
const SignerNodeID graft.ID = "adapter.fs.signer"

func init() {
	graft.Register(graft.Node[ports.FileSigner]{
		ID:        SignerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.FileSigner, error) {
			return NewSigner(), nil
		},
	})
}
