package domain

import "go.trai.ch/zerr"

var (
	// ErrAssetAlreadyExists is returned when attempting to add an asset with a key that already exists.
	ErrAssetAlreadyExists = zerr.New("asset already exists")

	// ErrMissingDependency is returned when an asset references an upstream key that doesn't exist in the graph.
	ErrMissingDependency = zerr.New("missing upstream asset")

	// ErrCycleDetected is returned when a cycle is detected in the asset dependency graph.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrAssetNotFound is returned when a requested asset is not found in the graph.
	ErrAssetNotFound = zerr.New("asset not found")

	// ErrEmptyAssetKey is returned when an asset key has no segments or an empty segment.
	ErrEmptyAssetKey = zerr.New("asset key must have non-empty segments")

	// ErrInvalidAssetKey is returned when an asset key contains invalid characters.
	ErrInvalidAssetKey = zerr.New("invalid asset key")

	// ErrInvalidCondition is returned when an automation condition tree is structurally invalid.
	ErrInvalidCondition = zerr.New("invalid automation condition")

	// ErrInvalidSchedule is returned when a cron schedule expression cannot be parsed.
	ErrInvalidSchedule = zerr.New("invalid cron schedule")

	// ErrPartitionKey is returned when a partition key is incompatible with the partitions definition.
	ErrPartitionKey = zerr.New("invalid partition key")

	// ErrPartitionsMismatch is returned when a condition references partitions in a way
	// that is incompatible with the asset's partitions definition.
	ErrPartitionsMismatch = zerr.New("incompatible partitions definition")

	// ErrEvaluationFailed is returned when a single asset's condition evaluation fails during a tick.
	ErrEvaluationFailed = zerr.New("condition evaluation failed")

	// ErrUpstreamFailed is returned for assets whose evaluation was blocked by an upstream failure.
	ErrUpstreamFailed = zerr.New("upstream evaluation failed")

	// ErrStoreOpenFailed is returned when the event log database cannot be opened.
	ErrStoreOpenFailed = zerr.New("failed to open event log")

	// ErrStoreQueryFailed is returned when an event log query fails.
	ErrStoreQueryFailed = zerr.New("failed to query event log")

	// ErrStoreWriteFailed is returned when an event log write fails.
	ErrStoreWriteFailed = zerr.New("failed to write event log")

	// ErrConfigReadFailed is returned when the definitions file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read definitions file")

	// ErrConfigParseFailed is returned when the definitions file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse definitions file")

	// ErrConfigNotFound is returned when no definitions file can be found.
	ErrConfigNotFound = zerr.New("could not find definitions file")

	// ErrLauncherReleased is returned when a run launcher handle is used after release.
	ErrLauncherReleased = zerr.New("run launcher handle already released")

	// ErrTickHadFailures is returned when a tick completed but one or more assets failed to evaluate.
	ErrTickHadFailures = zerr.New("tick completed with evaluation failures")
)
