package evaluator

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/contribulate/dagster/internal/core/domain"
)

// valueHashBytes is the truncation length of value hashes: 16 bytes encode to
// the fixed 32-hex-char digests exposed to consumers.
const valueHashBytes = 16

// valueHash digests the given determinant parts into a fixed-length hex
// string. Parts are separated by an unambiguous delimiter so that no two
// distinct part lists collide by concatenation.
func valueHash(parts ...string) string {
	h := sha256.New()
	for _, p := range parts {
		_, _ = fmt.Fprintf(h, "%d:", len(p))
		_, _ = h.Write([]byte(p))
	}
	sum := h.Sum(nil)
	return hex.EncodeToString(sum[:valueHashBytes])
}

// nodeID computes a cheap structural fingerprint of a condition node: its
// kind and immediate configuration plus the IDs of its children, in order.
// Unlike the value hash it covers no scenario inputs, so it is stable across
// ticks and identifies the node when diffing sub-results.
func nodeID(c *domain.AutomationCondition) string {
	h := xxhash.New()
	_, _ = h.WriteString(string(c.Kind))
	_, _ = h.Write([]byte{0})
	_, _ = h.WriteString(c.Schedule)
	_, _ = h.Write([]byte{0})
	_, _ = h.WriteString(c.Parent.String())
	_, _ = h.Write([]byte{0})
	_, _ = h.WriteString(c.Name)
	_, _ = h.Write([]byte{0})
	for _, child := range c.Children {
		_, _ = h.WriteString(nodeID(child))
		_, _ = h.Write([]byte{0})
	}
	return fmt.Sprintf("%016x", h.Sum64())
}
