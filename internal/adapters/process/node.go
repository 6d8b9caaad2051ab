package process

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/hotloop/internal/adapters/logger"
	"go.trai.ch/hotloop/internal/adapters/shell"
	"go.trai.ch/hotloop/internal/core/ports"
)

const (
	// TableNodeID is the unique identifier for the process table Graft node.
	TableNodeID graft.ID = "adapter.process_table"
	// LauncherNodeID is the unique identifier for the process launcher Graft node.
	LauncherNodeID graft.ID = "adapter.process_launcher"
)

func init() {
	graft.Register(graft.Node[ports.ProcessTable]{
		ID:        TableNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.ProcessTable, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			return NewTable(executor), nil
		},
	})

	graft.Register(graft.Node[ports.ProcessLauncher]{
		ID:        LauncherNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ProcessLauncher, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLauncher(log), nil
		},
	})
}
