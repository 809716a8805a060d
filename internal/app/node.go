package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/texcache/internal/adapters/config" //nolint:depguard // Wired in app layer
	"go.trai.ch/texcache/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/texcache/internal/core/ports"
	"go.trai.ch/texcache/internal/engine/janitor"
	"go.trai.ch/texcache/internal/engine/loader"
	"go.trai.ch/texcache/internal/engine/texcache"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			texcache.NodeID,
			loader.NodeID,
			janitor.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			configLoader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			cache, err := graft.Dep[ports.TextureCache](ctx)
			if err != nil {
				return nil, err
			}

			avatarLoader, err := graft.Dep[*loader.Loader](ctx)
			if err != nil {
				return nil, err
			}

			jan, err := graft.Dep[*janitor.Janitor](ctx)
			if err != nil {
				return nil, err
			}

			return New(configLoader, avatarLoader, cache, jan, log), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			texcache.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	a, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	cache, err := graft.Dep[ports.TextureCache](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    a,
		Logger: log,
		Cache:  cache,
	}, nil
}
