package domain

// AssetSpec describes a single node of the asset graph: its key, declared
// upstream dependencies, optional partitions definition, and optional
// automation condition. Specs are created at definition time and immutable
// thereafter; hot-reload replaces the whole graph.
type AssetSpec struct {
	Key        AssetKey
	Deps       []AssetKey
	Partitions PartitionsDefinition
	Automation *AutomationCondition
}

// NewAssetSpec creates an AssetSpec with the given key and upstream deps.
func NewAssetSpec(key string, deps ...string) AssetSpec {
	spec := AssetSpec{Key: ParseAssetKey(key)}
	for _, d := range deps {
		spec.Deps = append(spec.Deps, ParseAssetKey(d))
	}
	return spec
}

// WithPartitions returns a copy of the spec with the partitions definition set.
func (s AssetSpec) WithPartitions(def PartitionsDefinition) AssetSpec {
	s.Partitions = def
	return s
}

// WithAutomation returns a copy of the spec with the automation condition set.
func (s AssetSpec) WithAutomation(cond *AutomationCondition) AssetSpec {
	s.Automation = cond
	return s
}
