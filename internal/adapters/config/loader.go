// Package config loads the texcache configuration and avatar manifests.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/texcache/internal/core/domain"
	"go.trai.ch/texcache/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the configuration file looked up when no path is given.
const DefaultFilename = "texcache.yaml"

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using YAML files.
type Loader struct {
	hasher ports.Hasher
}

// NewLoader creates a new Loader. The hasher fingerprints manifest bytes.
func NewLoader(hasher ports.Hasher) *Loader {
	return &Loader{hasher: hasher}
}

// LoadConfig reads the configuration at path. A missing file yields the defaults.
func (l *Loader) LoadConfig(path string) (domain.Config, error) {
	cfg := domain.DefaultConfig()
	if path == "" {
		path = DefaultFilename
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
	}

	if err := apply(&cfg, &file); err != nil {
		return cfg, zerr.With(err, "path", path)
	}
	return cfg, nil
}

func apply(cfg *domain.Config, file *File) error {
	if file.Log.Level != "" {
		cfg.Log.Level = file.Log.Level
	}
	if file.Log.JSON != nil {
		cfg.Log.JSON = *file.Log.JSON
	}

	switch domain.DecodePolicy(file.Cache.DecodePolicy) {
	case "":
	case domain.DecodeLocked, domain.DecodeUnlocked:
		cfg.Cache.DecodePolicy = domain.DecodePolicy(file.Cache.DecodePolicy)
	default:
		return zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "unknown decode policy"), "decode_policy", file.Cache.DecodePolicy)
	}
	if file.Cache.UnlinkedTTL != nil {
		if *file.Cache.UnlinkedTTL < 0 {
			return zerr.Wrap(domain.ErrInvalidConfig, "cache.unlinked_ttl must not be negative")
		}
		cfg.Cache.UnlinkedTTL = *file.Cache.UnlinkedTTL
	}

	if file.Sweep.Interval != nil {
		if *file.Sweep.Interval < 0 {
			return zerr.Wrap(domain.ErrInvalidConfig, "sweep.interval must not be negative")
		}
		cfg.Sweep.Interval = *file.Sweep.Interval
	}

	if file.Loader.Parallelism != nil {
		if *file.Loader.Parallelism < 1 {
			return zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "loader.parallelism must be positive"), "parallelism", *file.Loader.Parallelism)
		}
		cfg.Loader.Parallelism = *file.Loader.Parallelism
	}
	if file.Loader.Fallback != nil {
		cfg.Loader.Fallback = *file.Loader.Fallback
	}
	if file.Loader.SweepOnUnload != nil {
		cfg.Loader.SweepOnUnload = *file.Loader.SweepOnUnload
	}

	if len(file.Decoders) > 0 {
		cfg.Decoders = file.Decoders
	}
	return nil
}

// LoadManifest reads an avatar manifest and the bytes of every texture it lists.
// Texture paths are resolved relative to the manifest's directory.
func (l *Loader) LoadManifest(path string) (*domain.AvatarManifest, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read manifest"), "path", path)
	}

	var file ManifestFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse manifest"), "path", path)
	}
	if file.Name == "" {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidManifest, "manifest has no name"), "path", path)
	}

	dir := filepath.Dir(path)
	manifest := &domain.AvatarManifest{
		Name:        file.Name,
		Dir:         dir,
		Fingerprint: l.hasher.Fingerprint(data),
		Textures:    make([]domain.TextureSource, 0, len(file.Textures)),
	}

	for _, dto := range file.Textures {
		if dto.Path == "" {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidManifest, "texture has no path"), "avatar", file.Name)
		}

		cs, err := domain.ParseColorspace(dto.Colorspace)
		if err != nil {
			return nil, zerr.With(err, "texture", dto.Path)
		}

		texPath := dto.Path
		if !filepath.IsAbs(texPath) {
			texPath = filepath.Join(dir, texPath)
		}
		texData, err := os.ReadFile(texPath) //nolint:gosec // path comes from the user's manifest
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to read texture"), "path", texPath)
		}

		manifest.Textures = append(manifest.Textures, domain.TextureSource{
			Path:       dto.Path,
			MimeType:   dto.Mime,
			Colorspace: cs,
			Data:       texData,
		})
	}

	return manifest, nil
}
