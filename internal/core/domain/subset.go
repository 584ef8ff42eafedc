package domain

import (
	"fmt"
	"slices"
	"strings"
)

// subsetSeparator joins sorted keys in the canonical serialization. Partition
// keys never contain this byte.
const subsetSeparator = "\x1f"

// PartitionSubset is a set of partition keys for one asset. Operations return
// new subsets; a subset is never mutated after construction, so subsets can be
// shared freely between evaluation results.
type PartitionSubset struct {
	keys map[InternedString]struct{}
}

// EmptySubset returns a subset containing no keys.
func EmptySubset() PartitionSubset {
	return PartitionSubset{keys: make(map[InternedString]struct{})}
}

// NewSubset creates a subset from the given keys.
func NewSubset(keys ...string) PartitionSubset {
	s := EmptySubset()
	for _, k := range keys {
		s.keys[NewInternedString(k)] = struct{}{}
	}
	return s
}

// NewSubsetOf creates a subset from already-interned keys.
func NewSubsetOf(keys ...InternedString) PartitionSubset {
	s := EmptySubset()
	for _, k := range keys {
		s.keys[k] = struct{}{}
	}
	return s
}

// Len returns the number of keys in the subset.
func (s PartitionSubset) Len() int {
	return len(s.keys)
}

// IsEmpty reports whether the subset contains no keys.
func (s PartitionSubset) IsEmpty() bool {
	return len(s.keys) == 0
}

// Contains reports whether key is a member of the subset.
func (s PartitionSubset) Contains(key InternedString) bool {
	_, ok := s.keys[key]
	return ok
}

// Keys returns the member keys sorted lexicographically.
func (s PartitionSubset) Keys() []string {
	keys := make([]string, 0, len(s.keys))
	for k := range s.keys {
		keys = append(keys, k.String())
	}
	slices.Sort(keys)
	return keys
}

// Union returns the set union of s and other.
func (s PartitionSubset) Union(other PartitionSubset) PartitionSubset {
	out := EmptySubset()
	for k := range s.keys {
		out.keys[k] = struct{}{}
	}
	for k := range other.keys {
		out.keys[k] = struct{}{}
	}
	return out
}

// Intersect returns the set intersection of s and other.
func (s PartitionSubset) Intersect(other PartitionSubset) PartitionSubset {
	out := EmptySubset()
	for k := range s.keys {
		if _, ok := other.keys[k]; ok {
			out.keys[k] = struct{}{}
		}
	}
	return out
}

// Difference returns the keys of s that are not in other.
func (s PartitionSubset) Difference(other PartitionSubset) PartitionSubset {
	out := EmptySubset()
	for k := range s.keys {
		if _, ok := other.keys[k]; !ok {
			out.keys[k] = struct{}{}
		}
	}
	return out
}

// Complement returns the keys of space that are not in s.
func (s PartitionSubset) Complement(space PartitionSubset) PartitionSubset {
	return space.Difference(s)
}

// Serialize returns the canonical, order-independent serialization of the
// subset: the sorted keys prefixed with their count. Two semantically equal
// subsets always serialize identically regardless of construction order.
func (s PartitionSubset) Serialize() string {
	keys := s.Keys()
	return fmt.Sprintf("%d:%s", len(keys), strings.Join(keys, subsetSeparator))
}

// String renders the subset for logs and reports.
func (s PartitionSubset) String() string {
	keys := s.Keys()
	if len(keys) == 1 && keys[0] == DefaultPartitionKey.String() {
		return "{*}"
	}
	return "{" + strings.Join(keys, ", ") + "}"
}
