package domain

import (
	"slices"
	"strings"
)

// AssetKeySeparator joins asset key segments into the canonical string form.
const AssetKeySeparator = "/"

// AssetKey is the immutable structured identifier of an asset: a path of
// string segments. Equality and ordering follow the canonical joined form,
// which is safe because segments may not contain the separator.
type AssetKey struct {
	path InternedString
}

// NewAssetKey creates an AssetKey from path segments.
// Segments are joined with AssetKeySeparator to form the canonical path.
func NewAssetKey(segments ...string) AssetKey {
	return AssetKey{path: NewInternedString(strings.Join(segments, AssetKeySeparator))}
}

// ParseAssetKey creates an AssetKey from its canonical string form.
func ParseAssetKey(s string) AssetKey {
	return AssetKey{path: NewInternedString(s)}
}

// Segments returns the path segments of the key.
func (k AssetKey) Segments() []string {
	return strings.Split(k.path.String(), AssetKeySeparator)
}

// String returns the canonical joined form of the key.
func (k AssetKey) String() string {
	return k.path.String()
}

// IsZero reports whether the key is the zero value.
func (k AssetKey) IsZero() bool {
	return k.path.String() == ""
}

// Less orders keys by their canonical string form.
func (k AssetKey) Less(other AssetKey) bool {
	return k.String() < other.String()
}

// MarshalText implements encoding.TextMarshaler.
func (k AssetKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *AssetKey) UnmarshalText(text []byte) error {
	k.path = NewInternedString(string(text))
	return nil
}

// SortAssetKeys sorts keys in place by their canonical string form.
func SortAssetKeys(keys []AssetKey) {
	slices.SortFunc(keys, func(a, b AssetKey) int {
		return strings.Compare(a.String(), b.String())
	})
}
