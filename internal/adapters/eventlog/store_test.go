package eventlog_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contribulate/dagster/internal/adapters/eventlog"
	"github.com/contribulate/dagster/internal/core/domain"
	"github.com/contribulate/dagster/internal/core/ports"
)

var storeT0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func mat(asset, partition string, ts time.Time) domain.Materialization {
	return domain.Materialization{
		Asset:     domain.NewAssetKey(asset),
		Partition: domain.NewInternedString(partition),
		Timestamp: ts,
	}
}

// runStoreSuite exercises the EventStore contract shared by both backends.
func runStoreSuite(t *testing.T, open func(t *testing.T) ports.EventStore) {
	t.Helper()
	ctx := context.Background()

	t.Run("materializations range is inclusive", func(t *testing.T) {
		store := open(t)
		key := domain.NewAssetKey("events")

		for _, offset := range []time.Duration{0, time.Hour, 2 * time.Hour} {
			require.NoError(t, store.RecordMaterialization(ctx, mat("events", "__default__", storeT0.Add(offset))))
		}

		mats, err := store.MaterializationsFor(ctx, key, storeT0, storeT0.Add(2*time.Hour))
		require.NoError(t, err)
		require.Len(t, mats, 3, "bounds are part of the range")

		mats, err = store.MaterializationsFor(ctx, key, storeT0.Add(time.Minute), storeT0.Add(time.Hour))
		require.NoError(t, err)
		require.Len(t, mats, 1)
		assert.Equal(t, storeT0.Add(time.Hour).UnixNano(), mats[0].Timestamp.UnixNano())
	})

	t.Run("zero until is unbounded", func(t *testing.T) {
		store := open(t)
		key := domain.NewAssetKey("events")

		require.NoError(t, store.RecordMaterialization(ctx, mat("events", "__default__", storeT0)))
		require.NoError(t, store.RecordMaterialization(ctx, mat("events", "__default__", storeT0.Add(48*time.Hour))))

		mats, err := store.MaterializationsFor(ctx, key, time.Time{}, time.Time{})
		require.NoError(t, err)
		assert.Len(t, mats, 2)
	})

	t.Run("materializations ordered ascending", func(t *testing.T) {
		store := open(t)
		key := domain.NewAssetKey("events")

		require.NoError(t, store.RecordMaterialization(ctx, mat("events", "a", storeT0.Add(time.Hour))))
		require.NoError(t, store.RecordMaterialization(ctx, mat("events", "b", storeT0)))

		mats, err := store.MaterializationsFor(ctx, key, time.Time{}, time.Time{})
		require.NoError(t, err)
		require.Len(t, mats, 2)
		assert.True(t, !mats[1].Timestamp.Before(mats[0].Timestamp))
	})

	t.Run("latest materialization per partition", func(t *testing.T) {
		store := open(t)
		key := domain.NewAssetKey("rollup")

		latest, err := store.LatestMaterialization(ctx, key, domain.NewInternedString("2024-01-01"))
		require.NoError(t, err)
		assert.Nil(t, latest, "never materialized partitions have no latest")

		require.NoError(t, store.RecordMaterialization(ctx, mat("rollup", "2024-01-01", storeT0)))
		require.NoError(t, store.RecordMaterialization(ctx, mat("rollup", "2024-01-01", storeT0.Add(time.Hour))))
		require.NoError(t, store.RecordMaterialization(ctx, mat("rollup", "2024-01-02", storeT0.Add(2*time.Hour))))

		latest, err = store.LatestMaterialization(ctx, key, domain.NewInternedString("2024-01-01"))
		require.NoError(t, err)
		require.NotNil(t, latest)
		assert.Equal(t, storeT0.Add(time.Hour).UnixNano(), latest.Timestamp.UnixNano())
	})

	t.Run("runs upsert by id", func(t *testing.T) {
		store := open(t)
		key := domain.NewAssetKey("events")

		run := domain.RunSummary{
			ID:         "run-1",
			Asset:      key,
			Partitions: []string{"2024-01-01"},
			Status:     domain.RunQueued,
			CreatedAt:  storeT0,
		}
		require.NoError(t, store.RecordRun(ctx, run))

		run.Status = domain.RunSuccess
		require.NoError(t, store.RecordRun(ctx, run))

		runs, err := store.RunsFor(ctx, key)
		require.NoError(t, err)
		require.Len(t, runs, 1)
		assert.Equal(t, domain.RunSuccess, runs[0].Status)
		assert.Equal(t, []string{"2024-01-01"}, runs[0].Partitions)
	})

	t.Run("runs scoped to asset", func(t *testing.T) {
		store := open(t)

		require.NoError(t, store.RecordRun(ctx, domain.RunSummary{
			ID: "run-a", Asset: domain.NewAssetKey("a"), Status: domain.RunQueued, CreatedAt: storeT0,
		}))
		require.NoError(t, store.RecordRun(ctx, domain.RunSummary{
			ID: "run-b", Asset: domain.NewAssetKey("b"), Status: domain.RunQueued, CreatedAt: storeT0,
		}))

		runs, err := store.RunsFor(ctx, domain.NewAssetKey("a"))
		require.NoError(t, err)
		require.Len(t, runs, 1)
		assert.Equal(t, "run-a", runs[0].ID)
	})
}

func TestMemoryStore(t *testing.T) {
	runStoreSuite(t, func(t *testing.T) ports.EventStore {
		t.Helper()
		return eventlog.NewMemoryStore()
	})
}

func TestSQLiteStore(t *testing.T) {
	runStoreSuite(t, func(t *testing.T) ports.EventStore {
		t.Helper()
		store, err := eventlog.OpenSQLiteStore(context.Background(), filepath.Join(t.TempDir(), "events.db"))
		require.NoError(t, err)
		t.Cleanup(func() { _ = store.Close() })
		return store
	})
}

func TestMemoryStore_CloneIsolation(t *testing.T) {
	ctx := context.Background()
	base := eventlog.NewMemoryStore()
	key := domain.NewAssetKey("events")

	require.NoError(t, base.RecordMaterialization(ctx, mat("events", "__default__", storeT0)))

	clone := base.Clone()
	require.NoError(t, clone.RecordMaterialization(ctx, mat("events", "__default__", storeT0.Add(time.Hour))))

	baseMats, err := base.MaterializationsFor(ctx, key, time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.Len(t, baseMats, 1, "writes to the clone must not leak into the base")

	cloneMats, err := clone.MaterializationsFor(ctx, key, time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.Len(t, cloneMats, 2)
}

func TestSQLiteStore_Reopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "events.db")

	store, err := eventlog.OpenSQLiteStore(ctx, path)
	require.NoError(t, err)
	require.NoError(t, store.RecordMaterialization(ctx, mat("events", "__default__", storeT0)))
	require.NoError(t, store.Close())

	reopened, err := eventlog.OpenSQLiteStore(ctx, path)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	mats, err := reopened.MaterializationsFor(ctx, domain.NewAssetKey("events"), time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.Len(t, mats, 1, "events survive process restarts")
}
