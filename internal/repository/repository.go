package repository

import (
	"context"

	"github.com/eraycan/toplana/internal/model"
)

// SnapshotRepository persists the store's durable subset as a single named
// record. Load returns (nil, nil) when no usable snapshot exists — a fresh
// install and an incompatible schema version look identical to the caller.
type SnapshotRepository interface {
	Load(ctx context.Context) (*model.Snapshot, error)
	Save(ctx context.Context, snap *model.Snapshot) error
}
