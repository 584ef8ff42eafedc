package domain

import (
	"strings"

	"github.com/robfig/cron/v3"
	"go.trai.ch/zerr"
)

// ConditionKind tags an AutomationCondition variant.
type ConditionKind string

const (
	// KindOnCron triggers when the schedule has fired since the last materialization.
	KindOnCron ConditionKind = "on_cron"
	// KindEager triggers when any parent has newer unconsumed materializations.
	KindEager ConditionKind = "eager"
	// KindMissing triggers for partitions that have never been materialized.
	KindMissing ConditionKind = "missing"
	// KindNewerThanParent triggers when a specific parent is newer than the asset.
	KindNewerThanParent ConditionKind = "newer_than_parent"
	// KindCustom triggers according to a user-supplied predicate.
	KindCustom ConditionKind = "custom"
	// KindAnd intersects the true subsets of its children.
	KindAnd ConditionKind = "and"
	// KindOr unions the true subsets of its children.
	KindOr ConditionKind = "or"
	// KindNot complements its child within the asset's partition space.
	KindNot ConditionKind = "not"
)

// CronParser parses the five-field cron expressions accepted by on_cron,
// plus the @hourly/@daily style descriptors.
var CronParser = cron.NewParser(
	cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// CustomPredicate decides per partition key whether a custom condition holds.
// now is the evaluation time of the current tick.
type CustomPredicate func(key InternedString) bool

// AutomationCondition is a declarative policy deciding whether an asset
// partition should be materialized. Conditions form an immutable tree:
// leaf variants are predicate-like, combinators hold ordered children.
type AutomationCondition struct {
	Kind     ConditionKind
	Schedule string              // KindOnCron
	Parent   AssetKey            // KindNewerThanParent
	Name     string              // KindCustom
	Fn       CustomPredicate     // KindCustom
	Children []*AutomationCondition
}

// OnCron returns a condition that is true for a partition once schedule has
// fired since the partition's last materialization.
func OnCron(schedule string) *AutomationCondition {
	return &AutomationCondition{Kind: KindOnCron, Schedule: schedule}
}

// Eager returns a condition that is true whenever any parent has newer
// unconsumed materializations and no in-flight run covers the partition.
func Eager() *AutomationCondition {
	return &AutomationCondition{Kind: KindEager}
}

// Missing returns a condition that is true for partitions never materialized.
func Missing() *AutomationCondition {
	return &AutomationCondition{Kind: KindMissing}
}

// NewerThanParent returns a condition that is true for partitions where the
// given parent's latest materialization is newer than the asset's own.
func NewerThanParent(parent AssetKey) *AutomationCondition {
	return &AutomationCondition{Kind: KindNewerThanParent, Parent: parent}
}

// Custom returns a condition evaluated by fn. The name identifies the
// condition in results and value hashes.
func Custom(name string, fn CustomPredicate) *AutomationCondition {
	return &AutomationCondition{Kind: KindCustom, Name: name, Fn: fn}
}

// And returns a condition whose true subset is the intersection of its
// children's. Child order is preserved and is hash-significant.
func And(children ...*AutomationCondition) *AutomationCondition {
	return &AutomationCondition{Kind: KindAnd, Children: children}
}

// Or returns a condition whose true subset is the union of its children's.
// Child order is preserved and is hash-significant.
func Or(children ...*AutomationCondition) *AutomationCondition {
	return &AutomationCondition{Kind: KindOr, Children: children}
}

// Not returns a condition whose true subset is the complement of its child's
// within the asset's partition space.
func Not(child *AutomationCondition) *AutomationCondition {
	return &AutomationCondition{Kind: KindNot, Children: []*AutomationCondition{child}}
}

// Label renders a short human-readable description of the condition node,
// without descending into children.
func (c *AutomationCondition) Label() string {
	switch c.Kind {
	case KindOnCron:
		return "on_cron(" + c.Schedule + ")"
	case KindNewerThanParent:
		return "newer_than_parent(" + c.Parent.String() + ")"
	case KindCustom:
		return "custom(" + c.Name + ")"
	default:
		return string(c.Kind)
	}
}

// String renders the full condition tree.
func (c *AutomationCondition) String() string {
	if len(c.Children) == 0 {
		return c.Label()
	}
	parts := make([]string, len(c.Children))
	for i, child := range c.Children {
		parts[i] = child.String()
	}
	return string(c.Kind) + "(" + strings.Join(parts, ", ") + ")"
}

// Validate checks the structural correctness of the condition tree. It is
// called at graph-construction time so that malformed trees fail before any
// tick runs.
func (c *AutomationCondition) Validate() error {
	switch c.Kind {
	case KindOnCron:
		if _, err := CronParser.Parse(c.Schedule); err != nil {
			return zerr.With(zerr.Wrap(ErrInvalidSchedule, err.Error()), "schedule", c.Schedule)
		}
		if len(c.Children) != 0 {
			return zerr.With(zerr.Wrap(ErrInvalidCondition, "leaf condition cannot have children"), "kind", string(c.Kind))
		}
	case KindEager, KindMissing:
		if len(c.Children) != 0 {
			return zerr.With(zerr.Wrap(ErrInvalidCondition, "leaf condition cannot have children"), "kind", string(c.Kind))
		}
	case KindNewerThanParent:
		if c.Parent.IsZero() {
			return zerr.With(zerr.Wrap(ErrInvalidCondition, "newer_than_parent requires a parent key"), "kind", string(c.Kind))
		}
	case KindCustom:
		if c.Name == "" || c.Fn == nil {
			return zerr.With(zerr.Wrap(ErrInvalidCondition, "custom requires a name and a predicate"), "kind", string(c.Kind))
		}
	case KindAnd, KindOr:
		if len(c.Children) == 0 {
			return zerr.With(zerr.Wrap(ErrInvalidCondition, "combinator requires at least one child"), "kind", string(c.Kind))
		}
	case KindNot:
		if len(c.Children) != 1 {
			return zerr.With(zerr.Wrap(ErrInvalidCondition, "not requires exactly one child"), "kind", string(c.Kind))
		}
	default:
		return zerr.With(zerr.Wrap(ErrInvalidCondition, "unknown condition kind"), "kind", string(c.Kind))
	}

	for _, child := range c.Children {
		if err := child.Validate(); err != nil {
			return err
		}
	}
	return nil
}
