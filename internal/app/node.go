package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fanout/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/fanout/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/fanout/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/fanout/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/fanout/internal/core/ports"
)

// NodeID is the unique identifier for the main App Graft node.
const NodeID graft.ID = "app.main"

func init() {
	graft.Register(graft.Node[*App]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			fs.SignerNodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}

			signer, err := graft.Dep[ports.FileSigner](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			return New(loader, signer, log, tel), nil
		},
	})
}
