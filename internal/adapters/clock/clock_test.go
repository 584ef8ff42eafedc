package clock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/contribulate/dagster/internal/adapters/clock"
)

func TestSystem_NowIsUTC(t *testing.T) {
	t.Parallel()

	now := clock.NewSystem().Now()
	assert.Equal(t, time.UTC, now.Location())
	assert.WithinDuration(t, time.Now(), now, time.Second)
}

func TestFrozen(t *testing.T) {
	t.Parallel()

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := clock.NewFrozen(start)
	assert.Equal(t, start, c.Now())

	c.Advance(90 * time.Minute)
	assert.Equal(t, start.Add(90*time.Minute), c.Now())

	next := time.Date(2024, 2, 1, 12, 0, 0, 0, time.FixedZone("CET", 3600))
	c.Set(next)
	assert.Equal(t, next.UTC(), c.Now())
	assert.Equal(t, time.UTC, c.Now().Location())
}
