// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/contribulate/dagster/internal/adapters/clock"
	_ "github.com/contribulate/dagster/internal/adapters/config"
	_ "github.com/contribulate/dagster/internal/adapters/eventlog"
	_ "github.com/contribulate/dagster/internal/adapters/launcher"
	_ "github.com/contribulate/dagster/internal/adapters/logger"
	_ "github.com/contribulate/dagster/internal/adapters/telemetry"
	_ "github.com/contribulate/dagster/internal/adapters/watcher"
	// Register app nodes.
	_ "github.com/contribulate/dagster/internal/app"
)
