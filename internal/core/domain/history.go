package domain

import "time"

// Materialization records one successful production of an asset partition's
// data.
type Materialization struct {
	Asset     AssetKey
	Partition InternedString
	Timestamp time.Time
}

// RunStatus is the lifecycle status of a run.
type RunStatus string

const (
	// RunQueued indicates the run has been requested but not started.
	RunQueued RunStatus = "Queued"
	// RunStarted indicates the run is currently executing.
	RunStarted RunStatus = "Started"
	// RunSuccess indicates the run finished successfully.
	RunSuccess RunStatus = "Success"
	// RunFailure indicates the run failed.
	RunFailure RunStatus = "Failure"
)

// InFlight reports whether the run may still produce materializations.
func (s RunStatus) InFlight() bool {
	return s == RunQueued || s == RunStarted
}

// RunSummary is a read-only view of one run targeting an asset.
type RunSummary struct {
	ID         string
	Asset      AssetKey
	Partitions []string
	Status     RunStatus
	CreatedAt  time.Time
}

// Covers reports whether the run targets the given partition key.
// A run recorded without explicit partitions covers the whole asset.
func (r RunSummary) Covers(key InternedString) bool {
	if len(r.Partitions) == 0 {
		return true
	}
	for _, p := range r.Partitions {
		if p == key.String() {
			return true
		}
	}
	return false
}
