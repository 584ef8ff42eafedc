package config

// DefinitionsFile represents the structure of the definitions.yaml file.
type DefinitionsFile struct {
	Version string               `yaml:"version"`
	Assets  map[string]*AssetDTO `yaml:"assets"`
}

// AssetDTO represents one asset declaration in the definitions file.
type AssetDTO struct {
	DependsOn  []string       `yaml:"dependsOn"`
	Partitions *PartitionsDTO `yaml:"partitions"`
	Automation *ConditionDTO  `yaml:"automation"`
}

// PartitionsDTO represents a partitions definition. Exactly one of the
// variant fields is set.
type PartitionsDTO struct {
	Daily  *DailyPartitionsDTO `yaml:"daily"`
	Static []string            `yaml:"static"`
}

// DailyPartitionsDTO configures a daily partitions definition.
type DailyPartitionsDTO struct {
	StartDate string `yaml:"startDate"`
}

// ConditionDTO represents one node of an automation condition tree. Exactly
// one of the variant fields is set; And/Or/Not carry nested trees.
type ConditionDTO struct {
	OnCron          string          `yaml:"onCron"`
	Eager           bool            `yaml:"eager"`
	Missing         bool            `yaml:"missing"`
	NewerThanParent string          `yaml:"newerThanParent"`
	And             []*ConditionDTO `yaml:"and"`
	Or              []*ConditionDTO `yaml:"or"`
	Not             *ConditionDTO   `yaml:"not"`
}
