package domain

import "go.trai.ch/zerr"

var (
	// ErrEmptyImageData is returned when GetOrCreate receives no bytes.
	ErrEmptyImageData = zerr.New("image data is empty")

	// ErrDecodeFailed is returned when no decoder could turn the bytes into an image.
	ErrDecodeFailed = zerr.New("failed to decode image")

	// ErrUnsupportedFormat is returned by a decoder that does not recognize the bytes.
	ErrUnsupportedFormat = zerr.New("unsupported image format")

	// ErrInvalidOwner is returned when an owner id or fingerprint is missing.
	ErrInvalidOwner = zerr.New("invalid owner")

	// ErrOwnerAlreadyRegistered is returned when an owner is registered twice without unregistering.
	ErrOwnerAlreadyRegistered = zerr.New("owner already registered")

	// ErrOwnerNotFound is returned when an operation names an owner that is not registered.
	ErrOwnerNotFound = zerr.New("owner not found")

	// ErrFingerprintMismatch is returned when the supplied fingerprint differs from the registered one.
	ErrFingerprintMismatch = zerr.New("owner fingerprint mismatch")

	// ErrUnknownKey is returned when a content key has no cached texture.
	ErrUnknownKey = zerr.New("unknown content key")

	// ErrInvalidColorspace is returned when a colorspace name cannot be parsed.
	ErrInvalidColorspace = zerr.New("invalid colorspace")

	// ErrInvalidConfig is returned when the configuration fails validation.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrInvalidManifest is returned when an avatar manifest cannot be used.
	ErrInvalidManifest = zerr.New("invalid avatar manifest")
)
