package domain

// AvatarManifest describes one avatar and the embedded images it needs.
type AvatarManifest struct {
	// Name identifies the avatar and is used as the owner id.
	Name string
	// Dir is the directory texture paths are relative to.
	Dir string
	// Fingerprint identifies the manifest's source bytes.
	Fingerprint Fingerprint
	Textures    []TextureSource
}

// TextureSource is one embedded image of an avatar.
type TextureSource struct {
	Path       string
	MimeType   string
	Colorspace Colorspace
	// Data holds the encoded bytes once read.
	Data []byte
}
