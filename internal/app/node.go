package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/hotloop/internal/adapters/config"      //nolint:depguard // Wired in app layer
	"go.trai.ch/hotloop/internal/adapters/environment" //nolint:depguard // Wired in app layer
	"go.trai.ch/hotloop/internal/adapters/fs"          //nolint:depguard // Wired in app layer
	"go.trai.ch/hotloop/internal/adapters/logger"      //nolint:depguard // Wired in app layer
	"go.trai.ch/hotloop/internal/adapters/process"     //nolint:depguard // Wired in app layer
	"go.trai.ch/hotloop/internal/adapters/shell"       //nolint:depguard // Wired in app layer
	"go.trai.ch/hotloop/internal/adapters/telemetry"   //nolint:depguard // Wired in app layer
	"go.trai.ch/hotloop/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components bundles what the command line entry point needs.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			shell.NodeID,
			environment.NodeID,
			process.TableNodeID,
			process.LauncherNodeID,
			fs.HasherNodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	executor, err := graft.Dep[ports.Executor](ctx)
	if err != nil {
		return nil, err
	}

	resolver, err := graft.Dep[ports.EnvironmentResolver](ctx)
	if err != nil {
		return nil, err
	}

	table, err := graft.Dep[ports.ProcessTable](ctx)
	if err != nil {
		return nil, err
	}

	launcher, err := graft.Dep[ports.ProcessLauncher](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, executor, resolver, table, launcher, hasher, tracer, log), nil
}
