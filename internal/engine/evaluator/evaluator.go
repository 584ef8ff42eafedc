// Package evaluator implements the automation condition evaluator: a pure
// function from an asset's spec, partition space, history, parent results,
// and the current time to a decision plus a deterministic value hash.
package evaluator

import (
	"context"

	"github.com/contribulate/dagster/internal/core/domain"
	"go.trai.ch/zerr"
)

// Evaluate runs the asset's automation condition against the inputs bundled
// in ec and returns the per-asset result. It is deterministic: identical
// inputs always produce identical true subsets and value hashes.
func Evaluate(ctx context.Context, ec Context) (*domain.EvaluationResult, error) {
	cond := ec.Spec.Automation
	if cond == nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidCondition, "asset has no automation condition"), "asset_key", ec.Spec.Key.String())
	}

	state := newEvalState(ec)
	root, err := state.evalNode(ctx, cond)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrEvaluationFailed, err.Error()), "asset_key", ec.Spec.Key.String())
	}

	return &domain.EvaluationResult{
		Asset:       ec.Spec.Key,
		Root:        root,
		EvaluatedAt: ec.Now,
	}, nil
}

// evalNode evaluates one node of the condition tree. Combinators evaluate
// children first, left to right, so that results are deterministic and child
// ordering is reflected in the combinator's value hash.
func (s *evalState) evalNode(ctx context.Context, cond *domain.AutomationCondition) (*domain.ConditionResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	switch cond.Kind {
	case domain.KindAnd, domain.KindOr, domain.KindNot:
		return s.evalCombinator(ctx, cond)
	default:
		return s.evalLeaf(ctx, cond)
	}
}

func (s *evalState) evalCombinator(ctx context.Context, cond *domain.AutomationCondition) (*domain.ConditionResult, error) {
	children := make([]*domain.ConditionResult, 0, len(cond.Children))
	for _, child := range cond.Children {
		r, err := s.evalNode(ctx, child)
		if err != nil {
			return nil, err
		}
		children = append(children, r)
	}

	var subset domain.PartitionSubset
	switch cond.Kind {
	case domain.KindAnd:
		subset = children[0].TrueSubset
		for _, r := range children[1:] {
			subset = subset.Intersect(r.TrueSubset)
		}
	case domain.KindOr:
		subset = children[0].TrueSubset
		for _, r := range children[1:] {
			subset = subset.Union(r.TrueSubset)
		}
	case domain.KindNot:
		subset = children[0].TrueSubset.Complement(s.space)
	}

	// The combinator hash covers the ordered child hashes plus the combinator
	// tag. Reordering children changes the hash; combinators are not assumed
	// commutative for hashing purposes.
	parts := append([]string{string(cond.Kind)}, hashesOf(children)...)

	return &domain.ConditionResult{
		Label:      cond.Label(),
		NodeID:     nodeID(cond),
		TrueSubset: subset,
		ValueHash:  valueHash(parts...),
		Children:   children,
	}, nil
}

func (s *evalState) evalLeaf(ctx context.Context, cond *domain.AutomationCondition) (*domain.ConditionResult, error) {
	var (
		subset domain.PartitionSubset
		err    error
	)

	switch cond.Kind {
	case domain.KindOnCron:
		subset, err = s.evalOnCron(ctx, cond)
	case domain.KindEager:
		subset, err = s.evalEager(ctx)
	case domain.KindMissing:
		subset, err = s.evalMissing(ctx)
	case domain.KindNewerThanParent:
		subset, err = s.evalNewerThanParent(ctx, cond)
	case domain.KindCustom:
		subset = s.evalCustom(cond)
	default:
		err = zerr.With(zerr.Wrap(domain.ErrInvalidCondition, "unknown condition kind"), "kind", string(cond.Kind))
	}
	if err != nil {
		return nil, err
	}

	hash, err := s.leafHash(ctx, cond, subset)
	if err != nil {
		return nil, err
	}

	return &domain.ConditionResult{
		Label:      cond.Label(),
		NodeID:     nodeID(cond),
		TrueSubset: subset,
		ValueHash:  hash,
	}, nil
}

// leafHash computes the value hash of a leaf node from its determinants.
//
// missing is deliberately hash-insensitive: it answers "has this partition
// ever been materialized", so its hash covers only the condition tag and the
// partitions-definition identity. Parent topology changes and materialization
// events must not move it; only a partitions-definition change may.
//
// The history-sensitive leaves fold in the parent set, the materialization
// sub-state, the committed parent result hashes, and the resulting subset, so
// any of those changing moves the hash.
func (s *evalState) leafHash(ctx context.Context, cond *domain.AutomationCondition, subset domain.PartitionSubset) (string, error) {
	defIdentity := domain.DefinitionIdentity(s.ec.Spec.Partitions)

	if cond.Kind == domain.KindMissing {
		return valueHash(string(cond.Kind), defIdentity), nil
	}

	parts := []string{string(cond.Kind)}
	switch cond.Kind {
	case domain.KindOnCron:
		parts = append(parts, cond.Schedule)
	case domain.KindNewerThanParent:
		parts = append(parts, cond.Parent.String())
	case domain.KindCustom:
		parts = append(parts, cond.Name)
	}
	parts = append(parts, defIdentity)
	parts = append(parts, s.sortedParents()...)

	if cond.Kind != domain.KindCustom {
		matState, err := s.materializationState(ctx)
		if err != nil {
			return "", err
		}
		parts = append(parts, matState)
		parts = append(parts, s.parentResultHashes()...)
	}

	parts = append(parts, subset.Serialize())
	return valueHash(parts...), nil
}

// evalEager is true for partitions where any parent has a newer unconsumed
// materialization and no in-flight run already covers the partition.
func (s *evalState) evalEager(ctx context.Context) (domain.PartitionSubset, error) {
	inFlight, err := s.inFlightRuns(ctx)
	if err != nil {
		return domain.EmptySubset(), err
	}

	var trueKeys []domain.InternedString
	for _, raw := range s.space.Keys() {
		key := domain.NewInternedString(raw)

		covered := false
		for _, r := range inFlight {
			if r.Covers(key) {
				covered = true
				break
			}
		}
		if covered {
			continue
		}

		newer, err := s.anyParentNewer(ctx, key)
		if err != nil {
			return domain.EmptySubset(), err
		}
		if newer {
			trueKeys = append(trueKeys, key)
		}
	}
	return domain.NewSubsetOf(trueKeys...), nil
}

// anyParentNewer reports whether any parent has materialized more recently
// than the asset's own partition. A parent that shares the asset's partitions
// definition is compared key-for-key; otherwise its newest materialization
// across all partitions counts.
func (s *evalState) anyParentNewer(ctx context.Context, key domain.InternedString) (bool, error) {
	own, err := s.latestMaterialization(ctx, s.ec.Spec.Key, key)
	if err != nil {
		return false, err
	}

	for _, parent := range s.ec.Spec.Deps {
		pm, err := s.parentLatest(ctx, parent, key)
		if err != nil {
			return false, err
		}
		if pm == nil {
			continue
		}
		if own == nil || pm.Timestamp.After(own.Timestamp) {
			return true, nil
		}
	}
	return false, nil
}

func (s *evalState) parentLatest(ctx context.Context, parent domain.AssetKey, key domain.InternedString) (*domain.Materialization, error) {
	if s.ec.ParentSpecs != nil {
		if pspec, ok := s.ec.ParentSpecs[parent]; ok {
			if domain.DefinitionIdentity(pspec.Partitions) == domain.DefinitionIdentity(s.ec.Spec.Partitions) && pspec.Partitions != nil {
				return s.latestMaterialization(ctx, parent, key)
			}
		}
	}
	return s.latestAny(ctx, parent)
}

// evalMissing is true for partitions that have never been materialized.
func (s *evalState) evalMissing(ctx context.Context) (domain.PartitionSubset, error) {
	var trueKeys []domain.InternedString
	for _, raw := range s.space.Keys() {
		key := domain.NewInternedString(raw)
		m, err := s.latestMaterialization(ctx, s.ec.Spec.Key, key)
		if err != nil {
			return domain.EmptySubset(), err
		}
		if m == nil {
			trueKeys = append(trueKeys, key)
		}
	}
	return domain.NewSubsetOf(trueKeys...), nil
}

// evalNewerThanParent is true for partitions where the named parent's latest
// materialization is newer than the asset's own.
func (s *evalState) evalNewerThanParent(ctx context.Context, cond *domain.AutomationCondition) (domain.PartitionSubset, error) {
	var trueKeys []domain.InternedString
	for _, raw := range s.space.Keys() {
		key := domain.NewInternedString(raw)

		own, err := s.latestMaterialization(ctx, s.ec.Spec.Key, key)
		if err != nil {
			return domain.EmptySubset(), err
		}
		pm, err := s.parentLatest(ctx, cond.Parent, key)
		if err != nil {
			return domain.EmptySubset(), err
		}
		if pm != nil && (own == nil || pm.Timestamp.After(own.Timestamp)) {
			trueKeys = append(trueKeys, key)
		}
	}
	return domain.NewSubsetOf(trueKeys...), nil
}

// evalCustom applies the user predicate to each key of the partition space.
func (s *evalState) evalCustom(cond *domain.AutomationCondition) domain.PartitionSubset {
	var trueKeys []domain.InternedString
	for _, raw := range s.space.Keys() {
		key := domain.NewInternedString(raw)
		if cond.Fn(key) {
			trueKeys = append(trueKeys, key)
		}
	}
	return domain.NewSubsetOf(trueKeys...)
}

func hashesOf(children []*domain.ConditionResult) []string {
	out := make([]string, len(children))
	for i, c := range children {
		out[i] = c.ValueHash
	}
	return out
}
