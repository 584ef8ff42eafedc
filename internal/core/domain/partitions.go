package domain

import (
	"iter"
	"strings"
	"time"

	"go.trai.ch/zerr"
)

// DailyKeyFormat is the time layout for daily partition keys.
const DailyKeyFormat = "2006-01-02"

// TimeWindow is a half-open interval [Start, End).
type TimeWindow struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls within the window.
func (w TimeWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// PartitionsDefinition describes the partition key space of an asset.
// Implementations are immutable once constructed.
type PartitionsDefinition interface {
	// Identity returns a canonical string identifying the definition.
	// Two definitions with the same identity produce the same key space.
	// The identity is an input to value-hash computation.
	Identity() string

	// Keys enumerates the valid partition keys whose window has started at or
	// before now, lazily, in chronological order, without duplicates.
	Keys(now time.Time) iter.Seq[InternedString]

	// Contains reports whether key is a member of the key space as of now.
	// It returns ErrPartitionKey if the key format is incompatible with the
	// definition.
	Contains(key InternedString, now time.Time) (bool, error)

	// Window returns the time window covered by key.
	// It returns ErrPartitionKey if the key format is incompatible.
	Window(key InternedString) (TimeWindow, error)
}

// DailyPartitions defines one partition per UTC day starting at Start.
type DailyPartitions struct {
	start time.Time
}

// NewDailyPartitions creates a DailyPartitions definition. The start date is
// truncated to midnight UTC.
func NewDailyPartitions(start time.Time) *DailyPartitions {
	utc := start.UTC()
	return &DailyPartitions{
		start: time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC),
	}
}

// Identity returns the canonical identity of the definition.
func (d *DailyPartitions) Identity() string {
	return "daily[" + d.start.Format(DailyKeyFormat) + "]"
}

// Keys enumerates daily keys from the start date up to the last day whose
// window has fully elapsed by now.
func (d *DailyPartitions) Keys(now time.Time) iter.Seq[InternedString] {
	return func(yield func(InternedString) bool) {
		for day := d.start; !day.AddDate(0, 0, 1).After(now.UTC()); day = day.AddDate(0, 0, 1) {
			if !yield(NewInternedString(day.Format(DailyKeyFormat))) {
				return
			}
		}
	}
}

// Contains reports whether key names a day between the start date and now.
func (d *DailyPartitions) Contains(key InternedString, now time.Time) (bool, error) {
	day, err := d.parse(key)
	if err != nil {
		return false, err
	}
	if day.Before(d.start) {
		return false, nil
	}
	return !day.AddDate(0, 0, 1).After(now.UTC()), nil
}

// Window returns the [midnight, midnight+24h) window of the keyed day.
func (d *DailyPartitions) Window(key InternedString) (TimeWindow, error) {
	day, err := d.parse(key)
	if err != nil {
		return TimeWindow{}, err
	}
	return TimeWindow{Start: day, End: day.AddDate(0, 0, 1)}, nil
}

func (d *DailyPartitions) parse(key InternedString) (time.Time, error) {
	day, err := time.ParseInLocation(DailyKeyFormat, key.String(), time.UTC)
	if err != nil {
		return time.Time{}, zerr.With(zerr.Wrap(ErrPartitionKey, "key is not a valid date"), "key", key.String())
	}
	return day, nil
}

// StaticPartitions defines a fixed, explicitly enumerated key space.
type StaticPartitions struct {
	keys    []InternedString
	members map[InternedString]struct{}
}

// NewStaticPartitions creates a StaticPartitions definition from the given
// keys, preserving order and dropping duplicates.
func NewStaticPartitions(keys ...string) *StaticPartitions {
	d := &StaticPartitions{members: make(map[InternedString]struct{}, len(keys))}
	for _, k := range keys {
		ik := NewInternedString(k)
		if _, seen := d.members[ik]; seen {
			continue
		}
		d.members[ik] = struct{}{}
		d.keys = append(d.keys, ik)
	}
	return d
}

// Identity returns the canonical identity of the definition.
func (d *StaticPartitions) Identity() string {
	var b strings.Builder
	b.WriteString("static[")
	for i, k := range d.keys {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(k.String())
	}
	b.WriteByte(']')
	return b.String()
}

// Keys enumerates the static keys in definition order, regardless of now.
func (d *StaticPartitions) Keys(_ time.Time) iter.Seq[InternedString] {
	return func(yield func(InternedString) bool) {
		for _, k := range d.keys {
			if !yield(k) {
				return
			}
		}
	}
}

// Contains reports whether key is one of the static keys.
func (d *StaticPartitions) Contains(key InternedString, _ time.Time) (bool, error) {
	_, ok := d.members[key]
	return ok, nil
}

// Window returns an error: static partitions carry no time windows.
func (d *StaticPartitions) Window(key InternedString) (TimeWindow, error) {
	return TimeWindow{}, zerr.With(zerr.Wrap(ErrPartitionKey, "static partitions have no time windows"), "key", key.String())
}

// DefaultPartitionKey is the single implicit partition key of an unpartitioned
// asset. A nil PartitionsDefinition denotes the unpartitioned space.
var DefaultPartitionKey = NewInternedString("__default__")

// PartitionSpace returns the full partition subset of def as of now.
// A nil definition yields the implicit single-partition subset.
func PartitionSpace(def PartitionsDefinition, now time.Time) PartitionSubset {
	if def == nil {
		return NewSubsetOf(DefaultPartitionKey)
	}
	s := EmptySubset()
	for k := range def.Keys(now) {
		s.keys[k] = struct{}{}
	}
	return s
}

// DefinitionIdentity returns the identity of def, or the sentinel identity of
// the unpartitioned space when def is nil.
func DefinitionIdentity(def PartitionsDefinition) string {
	if def == nil {
		return "unpartitioned"
	}
	return def.Identity()
}
