package domain

import (
	"crypto/subtle"
	"encoding/hex"
)

// Fingerprint is an identity hash of an owner's source bytes.
type Fingerprint []byte

// Equal reports whether two fingerprints are identical.
func (f Fingerprint) Equal(other Fingerprint) bool {
	return len(f) == len(other) && subtle.ConstantTimeCompare(f, other) == 1
}

// String returns the hex form of the fingerprint.
func (f Fingerprint) String() string {
	return hex.EncodeToString(f)
}
