// Package domain contains the core domain models for the asset dependency
// graph and its automation conditions.
package domain

import (
	"iter"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// AssetGraph is a static dependency graph over asset keys. Construction is
// two-phase: AddSpec collects nodes, Validate checks structural correctness
// once, cheaply, outside the evaluation loop. After Validate succeeds the
// graph is immutable and safe for concurrent reads.
type AssetGraph struct {
	specs     map[AssetKey]AssetSpec
	children  map[AssetKey][]AssetKey
	topoOrder []AssetKey
	ancestors map[AssetKey]map[AssetKey]struct{}
}

// NewAssetGraph creates a new empty AssetGraph.
func NewAssetGraph() *AssetGraph {
	return &AssetGraph{
		specs:    make(map[AssetKey]AssetSpec),
		children: make(map[AssetKey][]AssetKey),
	}
}

// AddSpec adds an asset spec to the graph.
// It returns an error if a spec with the same key already exists.
func (g *AssetGraph) AddSpec(spec AssetSpec) error {
	if spec.Key.IsZero() {
		return ErrEmptyAssetKey
	}
	if _, exists := g.specs[spec.Key]; exists {
		return zerr.With(zerr.Wrap(ErrAssetAlreadyExists, "duplicate asset spec"), "asset_key", spec.Key.String())
	}
	g.specs[spec.Key] = spec
	return nil
}

// Spec returns the spec for key.
func (g *AssetGraph) Spec(key AssetKey) (AssetSpec, error) {
	spec, ok := g.specs[key]
	if !ok {
		return AssetSpec{}, zerr.With(zerr.Wrap(ErrAssetNotFound, "no spec for key"), "asset_key", key.String())
	}
	return spec, nil
}

// Len returns the number of assets in the graph.
func (g *AssetGraph) Len() int {
	return len(g.specs)
}

// Parents returns the sorted upstream keys of key.
func (g *AssetGraph) Parents(key AssetKey) []AssetKey {
	spec, ok := g.specs[key]
	if !ok {
		return nil
	}
	parents := slices.Clone(spec.Deps)
	SortAssetKeys(parents)
	return parents
}

// Children returns the sorted downstream keys of key.
// Populated by Validate.
func (g *AssetGraph) Children(key AssetKey) []AssetKey {
	return g.children[key]
}

// IsAncestor reports whether a is an ancestor of b.
// Populated by Validate.
func (g *AssetGraph) IsAncestor(a, b AssetKey) bool {
	_, ok := g.ancestors[b][a]
	return ok
}

// Validate checks that every dependency exists, that the graph is acyclic,
// and that every automation condition tree is structurally valid. It
// populates the deterministic topological order, the child index, and the
// ancestor index. Any error here is fatal: no tick runs on an invalid graph.
func (g *AssetGraph) Validate() error {
	g.topoOrder = make([]AssetKey, 0, len(g.specs))
	g.children = make(map[AssetKey][]AssetKey, len(g.specs))
	g.ancestors = make(map[AssetKey]map[AssetKey]struct{}, len(g.specs))

	visited := make(map[AssetKey]int, len(g.specs)) // 0: unvisited, 1: visiting, 2: visited
	var path []AssetKey

	var visit func(u AssetKey) error
	visit = func(u AssetKey) error {
		visited[u] = 1
		path = append(path, u)

		spec, exists := g.specs[u]
		if !exists {
			return zerr.With(zerr.Wrap(ErrMissingDependency, "dependency is not declared in the graph"), "asset_key", u.String())
		}

		for _, dep := range g.Parents(u) {
			if visited[dep] == 1 {
				return g.buildCycleError(path, dep)
			}
			if visited[dep] == 0 {
				if err := visit(dep); err != nil {
					return err
				}
			}
		}

		if spec.Automation != nil {
			if err := spec.Automation.Validate(); err != nil {
				return zerr.With(err, "asset_key", u.String())
			}
			if err := g.validateConditionRefs(spec); err != nil {
				return err
			}
		}

		visited[u] = 2
		path = path[:len(path)-1]
		g.topoOrder = append(g.topoOrder, u)
		return nil
	}

	// Sorted roots make the topological order deterministic across runs,
	// which downstream result diffing relies on.
	roots := make([]AssetKey, 0, len(g.specs))
	for key := range g.specs {
		roots = append(roots, key)
	}
	SortAssetKeys(roots)

	for _, key := range roots {
		if visited[key] == 0 {
			if err := visit(key); err != nil {
				return err
			}
		}
	}

	g.buildIndexes()
	return nil
}

// validateConditionRefs checks that condition nodes referencing other assets
// point at declared parents of the spec.
func (g *AssetGraph) validateConditionRefs(spec AssetSpec) error {
	var check func(c *AutomationCondition) error
	check = func(c *AutomationCondition) error {
		if c.Kind == KindNewerThanParent && !slices.Contains(spec.Deps, c.Parent) {
			err := zerr.Wrap(ErrInvalidCondition, "newer_than_parent references a non-parent asset")
			err = zerr.With(err, "asset_key", spec.Key.String())
			return zerr.With(err, "parent", c.Parent.String())
		}
		for _, child := range c.Children {
			if err := check(child); err != nil {
				return err
			}
		}
		return nil
	}
	return check(spec.Automation)
}

// buildIndexes derives the child and ancestor indexes from the topological
// order. Ancestor sets drive run-request batching and subgraph isolation.
func (g *AssetGraph) buildIndexes() {
	for _, key := range g.topoOrder {
		anc := make(map[AssetKey]struct{})
		for _, parent := range g.Parents(key) {
			g.children[parent] = append(g.children[parent], key)
			anc[parent] = struct{}{}
			for a := range g.ancestors[parent] {
				anc[a] = struct{}{}
			}
		}
		g.ancestors[key] = anc
	}
	for key := range g.children {
		SortAssetKeys(g.children[key])
	}
}

// buildCycleError constructs an error with cycle path metadata.
func (g *AssetGraph) buildCycleError(path []AssetKey, dep AssetKey) error {
	startIdx := 0
	for i, node := range path {
		if node == dep {
			startIdx = i
			break
		}
	}
	var b strings.Builder
	for i := startIdx; i < len(path); i++ {
		b.WriteString(path[i].String())
		b.WriteString(" -> ")
	}
	b.WriteString(dep.String())
	return zerr.With(zerr.Wrap(ErrCycleDetected, b.String()), "cycle", b.String())
}

// Walk returns an iterator that yields specs in topological order, parents
// before children. It assumes Validate() has been called and returned nil.
func (g *AssetGraph) Walk() iter.Seq[AssetSpec] {
	return func(yield func(AssetSpec) bool) {
		for _, key := range g.topoOrder {
			if !yield(g.specs[key]) {
				return
			}
		}
	}
}

// TopoOrder returns the validated topological order of asset keys.
func (g *AssetGraph) TopoOrder() []AssetKey {
	return slices.Clone(g.topoOrder)
}
