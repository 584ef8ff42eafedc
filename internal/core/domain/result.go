package domain

import "time"

// ConditionResult is the evaluation outcome of one node of a condition tree.
// Children mirror the condition's children in order.
type ConditionResult struct {
	// Label is the human-readable description of the condition node.
	Label string
	// NodeID is a cheap structural fingerprint of the condition node, stable
	// across ticks. Consumers use it to line up sub-results when diffing.
	NodeID string
	// TrueSubset is the partitions for which the node holds.
	TrueSubset PartitionSubset
	// ValueHash fingerprints the node's determinants and outcome.
	ValueHash string
	// Children mirror the condition's children in order.
	Children []*ConditionResult
}

// EvaluationResult is the per-asset output of one evaluation tick: the subset
// of partitions to materialize, the value hash of the decision, and the
// sub-results explaining it. Results are produced fresh each tick and never
// persisted by the engine; consumers may cache them for diffing.
type EvaluationResult struct {
	Asset       AssetKey
	Root        *ConditionResult
	EvaluatedAt time.Time
}

// TrueSubset returns the partitions the condition decided to materialize.
func (r *EvaluationResult) TrueSubset() PartitionSubset {
	if r == nil || r.Root == nil {
		return EmptySubset()
	}
	return r.Root.TrueSubset
}

// ValueHash returns the deterministic fingerprint of the evaluation's
// determinants and outcome, as a fixed-length hex string.
func (r *EvaluationResult) ValueHash() string {
	if r == nil || r.Root == nil {
		return ""
	}
	return r.Root.ValueHash
}
