package domain

import (
	"strconv"
	"strings"
)

// ContentKey identifies a decoded texture by colorspace, source length and content digest.
//
// The colorspace is part of the key because identical bytes decoded as linear and as sRGB
// are different resources and must never be aliased.
type ContentKey struct {
	value string
}

// NewContentKey builds the key `{colorspace}|{byteLength}|{hexDigest}`.
func NewContentKey(cs Colorspace, size int, hexDigest string) ContentKey {
	var b strings.Builder
	b.Grow(len(hexDigest) + 24)
	b.WriteString(cs.String())
	b.WriteByte('|')
	b.WriteString(strconv.Itoa(size))
	b.WriteByte('|')
	b.WriteString(hexDigest)
	return ContentKey{value: b.String()}
}

// String returns the key in its `{colorspace}|{byteLength}|{hexDigest}` form.
func (k ContentKey) String() string {
	return k.value
}

// IsZero reports whether the key was never constructed.
func (k ContentKey) IsZero() bool {
	return k.value == ""
}
