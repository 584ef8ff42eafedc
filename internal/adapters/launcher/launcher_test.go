package launcher_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/contribulate/dagster/internal/adapters/clock"
	"github.com/contribulate/dagster/internal/adapters/eventlog"
	"github.com/contribulate/dagster/internal/adapters/launcher"
	"github.com/contribulate/dagster/internal/core/domain"
	"github.com/contribulate/dagster/internal/core/ports/mocks"
)

func newTestLauncher(t *testing.T) (*launcher.Launcher, *eventlog.MemoryStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()

	store := eventlog.NewMemoryStore()
	frozen := clock.NewFrozen(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	return launcher.New(store, frozen, mockLogger), store
}

func TestLauncher_LaunchRecordsQueuedRuns(t *testing.T) {
	ctx := context.Background()
	l, store := newTestLauncher(t)

	h, err := l.Acquire(ctx)
	require.NoError(t, err)
	defer func() { _ = h.Release() }()

	err = h.Launch(ctx, []domain.RunRequest{
		domain.NewRunRequest("daily_rollup", "2024-01-01", "2024-01-02"),
		domain.NewRunRequest("raw_events"),
	})
	require.NoError(t, err)

	runs, err := store.RunsFor(ctx, domain.NewAssetKey("daily_rollup"))
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, domain.RunQueued, runs[0].Status)
	assert.Equal(t, []string{"2024-01-01", "2024-01-02"}, runs[0].Partitions)
	assert.NotEmpty(t, runs[0].ID)

	runs, err = store.RunsFor(ctx, domain.NewAssetKey("raw_events"))
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Empty(t, runs[0].Partitions)
}

func TestLauncher_RunIDsAreDeterministic(t *testing.T) {
	ctx := context.Background()
	l, store := newTestLauncher(t)

	h, err := l.Acquire(ctx)
	require.NoError(t, err)
	defer func() { _ = h.Release() }()

	req := []domain.RunRequest{domain.NewRunRequest("events", "2024-01-01")}
	require.NoError(t, h.Launch(ctx, req))
	require.NoError(t, h.Launch(ctx, req))

	// same request at the same instant upserts the same run id
	runs, err := store.RunsFor(ctx, domain.NewAssetKey("events"))
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}

func TestLauncher_LaunchAfterRelease(t *testing.T) {
	ctx := context.Background()
	l, _ := newTestLauncher(t)

	h, err := l.Acquire(ctx)
	require.NoError(t, err)

	require.NoError(t, h.Release())
	require.NoError(t, h.Release(), "release is idempotent")

	err = h.Launch(ctx, []domain.RunRequest{domain.NewRunRequest("events")})
	require.ErrorIs(t, err, domain.ErrLauncherReleased)
}
