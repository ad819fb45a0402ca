package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/eraycan/toplana/internal/model"
	"github.com/eraycan/toplana/internal/repository"
)

// compile-time check that *DB implements repository.SnapshotRepository
var _ repository.SnapshotRepository = (*DB)(nil)

// Load reads the persisted snapshot.
//
// Returns (nil, nil) when:
//   - no snapshot has ever been saved, or
//   - the stored schema_version differs from model.SnapshotSchemaVersion.
//
// A version mismatch is treated exactly like a missing snapshot: the store
// falls back to its seed defaults. Discarding a stale snapshot loses the
// saved session, which is the acceptable cost of never mis-reading one.
func (db *DB) Load(ctx context.Context) (*model.Snapshot, error) {
	var (
		version int
		payload string
	)
	err := db.conn.QueryRowContext(ctx,
		`SELECT schema_version, payload FROM snapshot WHERE id = 1`,
	).Scan(&version, &payload)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("sqlite: loading snapshot: %w", err)
	}

	if version != model.SnapshotSchemaVersion {
		return nil, nil
	}

	var snap model.Snapshot
	if err := json.Unmarshal([]byte(payload), &snap); err != nil {
		return nil, fmt.Errorf("sqlite: decoding snapshot payload: %w", err)
	}

	return &snap, nil
}

// Save writes the snapshot, replacing any previous one.
//
// INSERT OR REPLACE is the simplest SQLite upsert idiom and is atomic — with
// WAL journaling a crash leaves either the old snapshot or the new one,
// never a mix.
func (db *DB) Save(ctx context.Context, snap *model.Snapshot) error {
	if snap == nil {
		return fmt.Errorf("sqlite: snapshot must not be nil")
	}

	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("sqlite: encoding snapshot payload: %w", err)
	}

	_, err = db.conn.ExecContext(ctx,
		`INSERT OR REPLACE INTO snapshot (id, schema_version, payload, updated_at)
		 VALUES (1, ?, ?, ?)`,
		snap.SchemaVersion,
		string(payload),
		time.Now(),
	)
	if err != nil {
		return fmt.Errorf("sqlite: saving snapshot: %w", err)
	}

	return nil
}
