package eventlog

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/contribulate/dagster/internal/core/domain"
	"github.com/contribulate/dagster/internal/core/ports"
	"go.trai.ch/zerr"

	// SQLite driver.
	_ "modernc.org/sqlite"
)

var _ ports.EventStore = (*SQLiteStore)(nil)

// runPartitionSeparator joins a run's partition keys into a single column.
// Partition keys never contain this byte.
const runPartitionSeparator = "\x1f"

const schema = `
CREATE TABLE IF NOT EXISTS materializations (
	asset      TEXT    NOT NULL,
	partition_ TEXT    NOT NULL,
	ts_unix_ns INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_materializations_asset
	ON materializations (asset, ts_unix_ns);
CREATE INDEX IF NOT EXISTS idx_materializations_partition
	ON materializations (asset, partition_, ts_unix_ns);

CREATE TABLE IF NOT EXISTS runs (
	id              TEXT PRIMARY KEY,
	asset           TEXT    NOT NULL,
	partitions      TEXT    NOT NULL,
	status          TEXT    NOT NULL,
	created_unix_ns INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_runs_asset ON runs (asset, created_unix_ns);
`

// SQLiteStore is an event store persisted in a local sqlite database. It
// backs the daemon's history view across process restarts.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLiteStore opens (and creates, if needed) the event log at path.
func OpenSQLiteStore(ctx context.Context, path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrStoreOpenFailed, err.Error()), "path", path)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, zerr.With(zerr.Wrap(domain.ErrStoreOpenFailed, err.Error()), "path", path)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, zerr.With(zerr.Wrap(domain.ErrStoreOpenFailed, err.Error()), "path", path)
	}
	return &SQLiteStore{db: db}, nil
}

// RecordMaterialization appends a materialization event.
func (s *SQLiteStore) RecordMaterialization(ctx context.Context, m domain.Materialization) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO materializations (asset, partition_, ts_unix_ns) VALUES (?, ?, ?)`,
		m.Asset.String(), m.Partition.String(), m.Timestamp.UTC().UnixNano(),
	)
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStoreWriteFailed, err.Error()), "asset_key", m.Asset.String())
	}
	return nil
}

// RecordRun inserts or replaces a run record by ID.
func (s *SQLiteStore) RecordRun(ctx context.Context, r domain.RunSummary) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO runs (id, asset, partitions, status, created_unix_ns)
		 VALUES (?, ?, ?, ?, ?)`,
		r.ID, r.Asset.String(), strings.Join(r.Partitions, runPartitionSeparator),
		string(r.Status), r.CreatedAt.UTC().UnixNano(),
	)
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStoreWriteFailed, err.Error()), "run_id", r.ID)
	}
	return nil
}

// MaterializationsFor returns the materializations of key in [since, until],
// ordered by timestamp ascending. A zero until means unbounded.
func (s *SQLiteStore) MaterializationsFor(ctx context.Context, key domain.AssetKey, since, until time.Time) ([]domain.Materialization, error) {
	untilNS := int64(1<<63 - 1)
	if !until.IsZero() {
		untilNS = until.UTC().UnixNano()
	}
	sinceNS := int64(0)
	if !since.IsZero() {
		sinceNS = since.UTC().UnixNano()
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT partition_, ts_unix_ns FROM materializations
		 WHERE asset = ? AND ts_unix_ns >= ? AND ts_unix_ns <= ?
		 ORDER BY ts_unix_ns ASC`,
		key.String(), sinceNS, untilNS,
	)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrStoreQueryFailed, err.Error()), "asset_key", key.String())
	}
	defer rows.Close() //nolint:errcheck // read-only cursor

	var out []domain.Materialization
	for rows.Next() {
		var partition string
		var ns int64
		if err := rows.Scan(&partition, &ns); err != nil {
			return nil, zerr.Wrap(domain.ErrStoreQueryFailed, err.Error())
		}
		out = append(out, domain.Materialization{
			Asset:     key,
			Partition: domain.NewInternedString(partition),
			Timestamp: time.Unix(0, ns).UTC(),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, zerr.Wrap(domain.ErrStoreQueryFailed, err.Error())
	}
	return out, nil
}

// LatestMaterialization returns the newest materialization of the partition,
// or nil if it has never been materialized.
func (s *SQLiteStore) LatestMaterialization(ctx context.Context, key domain.AssetKey, partition domain.InternedString) (*domain.Materialization, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT ts_unix_ns FROM materializations
		 WHERE asset = ? AND partition_ = ?
		 ORDER BY ts_unix_ns DESC LIMIT 1`,
		key.String(), partition.String(),
	)

	var ns int64
	if err := row.Scan(&ns); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(domain.ErrStoreQueryFailed, err.Error()), "asset_key", key.String())
	}
	return &domain.Materialization{
		Asset:     key,
		Partition: partition,
		Timestamp: time.Unix(0, ns).UTC(),
	}, nil
}

// RunsFor returns the runs targeting key ordered by creation time ascending.
func (s *SQLiteStore) RunsFor(ctx context.Context, key domain.AssetKey) ([]domain.RunSummary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, partitions, status, created_unix_ns FROM runs
		 WHERE asset = ? ORDER BY created_unix_ns ASC`,
		key.String(),
	)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrStoreQueryFailed, err.Error()), "asset_key", key.String())
	}
	defer rows.Close() //nolint:errcheck // read-only cursor

	var out []domain.RunSummary
	for rows.Next() {
		var (
			id, partitions, status string
			ns                     int64
		)
		if err := rows.Scan(&id, &partitions, &status, &ns); err != nil {
			return nil, zerr.Wrap(domain.ErrStoreQueryFailed, err.Error())
		}
		r := domain.RunSummary{
			ID:        id,
			Asset:     key,
			Status:    domain.RunStatus(status),
			CreatedAt: time.Unix(0, ns).UTC(),
		}
		if partitions != "" {
			r.Partitions = strings.Split(partitions, runPartitionSeparator)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, zerr.Wrap(domain.ErrStoreQueryFailed, err.Error())
	}
	return out, nil
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
