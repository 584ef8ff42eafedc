package ports

import (
	"context"

	"github.com/contribulate/dagster/internal/core/domain"
)

// LauncherHandle is a scoped handle on the run-launching subsystem. Acquire
// is lazy; Release must be called on every exit path, including evaluation
// failure, and is safe to call more than once.
type LauncherHandle interface {
	// Launch submits run requests produced by a tick.
	Launch(ctx context.Context, reqs []domain.RunRequest) error

	// Release returns the handle. Launch fails after Release.
	Release() error
}

// RunLauncher hands out launcher handles.
//
//go:generate mockgen -source=launcher.go -destination=mocks/mock_launcher.go -package=mocks
type RunLauncher interface {
	Acquire(ctx context.Context) (LauncherHandle, error)
}
