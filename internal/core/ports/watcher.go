package ports

import "context"

// Watcher observes the definitions file for changes so the daemon can
// hot-reload the asset graph. The graph is always replaced wholesale.
//
//go:generate mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks
type Watcher interface {
	// Watch invokes onChange whenever path changes, until ctx is done.
	Watch(ctx context.Context, path string, onChange func()) error
}
