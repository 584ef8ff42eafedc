package domain

import "time"

// RunRequest asks the run-launching subsystem to materialize a set of
// partition keys for one or more assets. Requests carrying multiple assets
// come out of the orchestrator's batching pass: the assets share no ordering
// constraint and select the same partitions.
type RunRequest struct {
	Assets        []AssetKey
	PartitionKeys []string
}

// NewRunRequest creates a request for a single asset.
// keys may be empty for an unpartitioned asset.
func NewRunRequest(asset string, keys ...string) RunRequest {
	return RunRequest{Assets: []AssetKey{ParseAssetKey(asset)}, PartitionKeys: keys}
}

// AssetTickStatus classifies an asset's outcome within one tick.
type AssetTickStatus string

const (
	// StatusMaterialize indicates the asset's condition selected partitions to run.
	StatusMaterialize AssetTickStatus = "Materialize"
	// StatusSkip indicates the condition evaluated to an empty subset.
	StatusSkip AssetTickStatus = "Skip"
	// StatusFail indicates the asset's own evaluation raised an error.
	StatusFail AssetTickStatus = "Fail"
	// StatusBlocked indicates an upstream failure prevented evaluation.
	StatusBlocked AssetTickStatus = "Blocked"
)

// AssetFailure pairs an asset with the error that failed its evaluation.
type AssetFailure struct {
	Asset AssetKey
	Err   error
}

// AssetOutcome is one asset's line in a tick report.
type AssetOutcome struct {
	Asset  AssetKey
	Status AssetTickStatus
	Reason string
	Result *EvaluationResult
}

// TickReport aggregates the outcome of one full evaluation pass over the
// asset graph.
type TickReport struct {
	EvaluatedAt time.Time
	Outcomes    []AssetOutcome
	Failures    []AssetFailure
	RunRequests []RunRequest
}

// Result returns the evaluation result for key, or nil when the asset was
// skipped without a condition, blocked, or failed.
func (t *TickReport) Result(key AssetKey) *EvaluationResult {
	for _, o := range t.Outcomes {
		if o.Asset == key {
			return o.Result
		}
	}
	return nil
}
