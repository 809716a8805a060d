package ports

import "go.trai.ch/texcache/internal/core/domain"

// ConfigLoader defines the interface for loading configuration and avatar manifests.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// LoadConfig reads the runtime configuration. A missing file yields the defaults.
	LoadConfig(path string) (domain.Config, error)

	// LoadManifest reads an avatar manifest and the bytes of every texture it lists.
	LoadManifest(path string) (*domain.AvatarManifest, error)
}
