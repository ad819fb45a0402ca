// Package memory provides an in-memory SnapshotRepository.
//
// It is the degraded mode the application falls back to when the SQLite
// database cannot be opened (read-only filesystem, bad path, locked file):
// everything keeps working for the life of the process, nothing survives a
// restart. It doubles as a fast repository for tests.
package memory

import (
	"context"
	"sync"

	"github.com/eraycan/toplana/internal/model"
	"github.com/eraycan/toplana/internal/repository"
)

var _ repository.SnapshotRepository = (*Repository)(nil)

type Repository struct {
	mu   sync.Mutex
	snap *model.Snapshot
}

func New() *Repository {
	return &Repository{}
}

// Load returns a copy of the last saved snapshot, or (nil, nil) if nothing
// has been saved yet. Version mismatches are treated like the sqlite
// implementation: the snapshot is discarded.
func (r *Repository) Load(_ context.Context) (*model.Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.snap == nil || r.snap.SchemaVersion != model.SnapshotSchemaVersion {
		return nil, nil
	}
	out := cloneSnapshot(r.snap)
	return out, nil
}

// Save stores a copy of the snapshot.
func (r *Repository) Save(_ context.Context, snap *model.Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.snap = cloneSnapshot(snap)
	return nil
}

// cloneSnapshot copies the snapshot so caller and repository never share
// backing arrays.
func cloneSnapshot(snap *model.Snapshot) *model.Snapshot {
	if snap == nil {
		return nil
	}
	out := *snap
	if snap.Users != nil {
		out.Users = make([]model.User, len(snap.Users))
		copy(out.Users, snap.Users)
	}
	if snap.JoinedAdIDs != nil {
		out.JoinedAdIDs = make([]string, len(snap.JoinedAdIDs))
		copy(out.JoinedAdIDs, snap.JoinedAdIDs)
	}
	return &out
}
