package config

import "time"

// File represents the structure of the texcache.yaml configuration file.
type File struct {
	Log      LogDTO    `yaml:"log"`
	Cache    CacheDTO  `yaml:"cache"`
	Sweep    SweepDTO  `yaml:"sweep"`
	Loader   LoaderDTO `yaml:"loader"`
	Decoders []string  `yaml:"decoders"`
}

// LogDTO represents the log section.
type LogDTO struct {
	Level string `yaml:"level"`
	JSON  *bool  `yaml:"json"`
}

// CacheDTO represents the cache section.
type CacheDTO struct {
	DecodePolicy string         `yaml:"decode_policy"`
	UnlinkedTTL  *time.Duration `yaml:"unlinked_ttl"`
}

// SweepDTO represents the sweep section.
type SweepDTO struct {
	Interval *time.Duration `yaml:"interval"`
}

// LoaderDTO represents the loader section.
type LoaderDTO struct {
	Parallelism   *int  `yaml:"parallelism"`
	Fallback      *bool `yaml:"fallback"`
	SweepOnUnload *bool `yaml:"sweep_on_unload"`
}

// ManifestFile represents an avatar manifest.
type ManifestFile struct {
	Name     string       `yaml:"name"`
	Textures []TextureDTO `yaml:"textures"`
}

// TextureDTO represents one embedded image in a manifest.
type TextureDTO struct {
	Path       string `yaml:"path"`
	Colorspace string `yaml:"colorspace"`
	Mime       string `yaml:"mime"`
}
