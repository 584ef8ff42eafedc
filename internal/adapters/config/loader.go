// Package config provides the YAML definitions loader.
package config

import (
	"fmt"
	"path/filepath"
	"regexp"
	"time"

	"github.com/contribulate/dagster/internal/core/domain"
	"github.com/contribulate/dagster/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.DefinitionsLoader using a YAML file.
type Loader struct {
	FS     FileSystem
	Logger ports.Logger
}

// NewLoader creates a new Loader reading from the OS filesystem.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{FS: NewOSFS(), Logger: logger}
}

var validAssetKeyRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+(/[a-zA-Z0-9_-]+)*$`)

// Load reads the definitions file at path and returns a validated graph.
// When path is empty the file is discovered from the current directory.
func (l *Loader) Load(path string) (*domain.AssetGraph, error) {
	if path == "" {
		discovered, err := l.Discover(".")
		if err != nil {
			return nil, err
		}
		path = discovered
	}

	raw, err := l.FS.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, err.Error()), "path", path)
	}

	var file DefinitionsFile
	if parseErr := yaml.Unmarshal(raw, &file); parseErr != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, parseErr.Error()), "path", path)
	}

	graph := domain.NewAssetGraph()

	// map iteration order is random; AddSpec is order-independent and
	// Validate sorts before reporting, so no pre-sort is needed
	for name, dto := range file.Assets {
		spec, err := l.buildSpec(name, dto)
		if err != nil {
			return nil, err
		}
		if err := graph.AddSpec(spec); err != nil {
			return nil, err
		}
	}

	if err := graph.Validate(); err != nil {
		return nil, err
	}

	l.Logger.Info(fmt.Sprintf("loaded %d asset definitions from %s", graph.Len(), path))
	return graph, nil
}

// Discover walks up from cwd to find the definitions file.
func (l *Loader) Discover(cwd string) (string, error) {
	currentDir, err := filepath.Abs(cwd)
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrConfigNotFound.Error())
	}

	for {
		candidate := filepath.Join(currentDir, domain.DefinitionsFileName)
		if _, err := l.FS.Stat(candidate); err == nil {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(zerr.Wrap(domain.ErrConfigNotFound, "no definitions file in cwd or any parent"), "cwd", cwd)
}

func (l *Loader) buildSpec(name string, dto *AssetDTO) (domain.AssetSpec, error) {
	if err := validateAssetName(name); err != nil {
		return domain.AssetSpec{}, err
	}
	if dto == nil {
		return domain.NewAssetSpec(name), nil
	}

	for _, dep := range dto.DependsOn {
		if err := validateAssetName(dep); err != nil {
			return domain.AssetSpec{}, zerr.With(err, "asset", name)
		}
	}

	spec := domain.NewAssetSpec(name, dto.DependsOn...)

	if dto.Partitions != nil {
		def, err := buildPartitions(dto.Partitions)
		if err != nil {
			return domain.AssetSpec{}, zerr.With(err, "asset", name)
		}
		spec = spec.WithPartitions(def)
	}

	if dto.Automation != nil {
		cond, err := buildCondition(dto.Automation)
		if err != nil {
			return domain.AssetSpec{}, zerr.With(err, "asset", name)
		}
		spec = spec.WithAutomation(cond)
	}

	return spec, nil
}

func buildPartitions(dto *PartitionsDTO) (domain.PartitionsDefinition, error) {
	switch {
	case dto.Daily != nil && len(dto.Static) > 0:
		return nil, zerr.Wrap(domain.ErrConfigParseFailed, "partitions must be daily or static, not both")
	case dto.Daily != nil:
		start, err := time.Parse("2006-01-02", dto.Daily.StartDate)
		if err != nil {
			err = zerr.Wrap(domain.ErrConfigParseFailed, "invalid partitions start date")
			return nil, zerr.With(err, "start_date", dto.Daily.StartDate)
		}
		return domain.NewDailyPartitions(start), nil
	case len(dto.Static) > 0:
		return domain.NewStaticPartitions(dto.Static...), nil
	default:
		return nil, zerr.Wrap(domain.ErrConfigParseFailed, "partitions requires a daily or static variant")
	}
}

// buildCondition maps one DTO node to a condition node, recursing into
// combinator children. Exactly one variant field may be set per node.
func buildCondition(dto *ConditionDTO) (*domain.AutomationCondition, error) {
	var conds []*domain.AutomationCondition

	if dto.OnCron != "" {
		conds = append(conds, domain.OnCron(dto.OnCron))
	}
	if dto.Eager {
		conds = append(conds, domain.Eager())
	}
	if dto.Missing {
		conds = append(conds, domain.Missing())
	}
	if dto.NewerThanParent != "" {
		conds = append(conds, domain.NewerThanParent(domain.ParseAssetKey(dto.NewerThanParent)))
	}
	if len(dto.And) > 0 {
		children, err := buildConditions(dto.And)
		if err != nil {
			return nil, err
		}
		conds = append(conds, domain.And(children...))
	}
	if len(dto.Or) > 0 {
		children, err := buildConditions(dto.Or)
		if err != nil {
			return nil, err
		}
		conds = append(conds, domain.Or(children...))
	}
	if dto.Not != nil {
		child, err := buildCondition(dto.Not)
		if err != nil {
			return nil, err
		}
		conds = append(conds, domain.Not(child))
	}

	if len(conds) != 1 {
		err := zerr.Wrap(domain.ErrInvalidCondition, "condition node requires exactly one variant")
		return nil, zerr.With(err, "variants_set", len(conds))
	}
	return conds[0], nil
}

func buildConditions(dtos []*ConditionDTO) ([]*domain.AutomationCondition, error) {
	out := make([]*domain.AutomationCondition, 0, len(dtos))
	for _, dto := range dtos {
		cond, err := buildCondition(dto)
		if err != nil {
			return nil, err
		}
		out = append(out, cond)
	}
	return out, nil
}

// validateAssetName checks that an asset key uses slash-separated segments of
// word characters only.
func validateAssetName(name string) error {
	if name == "" {
		return zerr.Wrap(domain.ErrEmptyAssetKey, "asset name must not be empty")
	}
	if !validAssetKeyRegex.MatchString(name) {
		return zerr.With(zerr.Wrap(domain.ErrInvalidAssetKey, "asset names are slash-separated word segments"), "asset_key", name)
	}
	return nil
}
