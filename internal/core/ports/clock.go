package ports

import "time"

// Clock supplies the current evaluation time. Overridable for deterministic
// testing.
//
//go:generate mockgen -source=clock.go -destination=mocks/mock_clock.go -package=mocks
type Clock interface {
	Now() time.Time
}
