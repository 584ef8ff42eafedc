package domain

import "path/filepath"

const (
	// DagsterDirName is the name of the internal instance directory.
	DagsterDirName = ".dagster"

	// DefinitionsFileName is the name of the asset definitions file.
	DefinitionsFileName = "definitions.yaml"

	// EventLogFileName is the name of the sqlite event log file.
	EventLogFileName = "events.db"

	// DebugLogFile is the name of the debug log file.
	DebugLogFile = "debug.log"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultInstancePath returns the default root directory for instance state.
func DefaultInstancePath() string {
	return DagsterDirName
}

// DefaultEventLogPath returns the default path for the sqlite event log.
// It joins .dagster and events.db.
func DefaultEventLogPath() string {
	return filepath.Join(DagsterDirName, EventLogFileName)
}

// DefaultDebugLogPath returns the default path for the debug log.
// It joins .dagster and debug.log.
func DefaultDebugLogPath() string {
	return filepath.Join(DagsterDirName, DebugLogFile)
}
