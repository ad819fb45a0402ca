package sqlite

import (
	"context"
	"testing"

	"github.com/eraycan/toplana/internal/model"
)

// newTestDB creates an in-memory SQLite database that is cleaned up when the
// test finishes.
func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func testSnapshot() *model.Snapshot {
	return &model.Snapshot{
		SchemaVersion: model.SnapshotSchemaVersion,
		Users: []model.User{
			{
				Name:         "Eray Can",
				Email:        "eraycan@email.com",
				PasswordHash: "$2a$04$fakefakefakefakefakefakefakefakefakefakefakefakefake",
				Avatar:       model.AvatarFor("Eray Can"),
				Bio:          "Sosyal etkinlikleri seven biriyim.",
			},
		},
		CurrentEmail: "eraycan@email.com",
		JoinedAdIDs:  []string{"2", "4"},
		Theme:        model.ThemeDark,
	}
}

func TestLoadEmptyDatabase(t *testing.T) {
	db := newTestDB(t)

	snap, err := db.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if snap != nil {
		t.Errorf("Load() on empty database = %+v, want nil", snap)
	}
}

func TestSaveThenLoad(t *testing.T) {
	db := newTestDB(t)

	want := testSnapshot()
	if err := db.Save(context.Background(), want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := db.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got == nil {
		t.Fatal("Load() = nil after Save()")
	}
	if got.CurrentEmail != want.CurrentEmail {
		t.Errorf("CurrentEmail = %q, want %q", got.CurrentEmail, want.CurrentEmail)
	}
	if got.Theme != model.ThemeDark {
		t.Errorf("Theme = %q, want %q", got.Theme, model.ThemeDark)
	}
	if len(got.Users) != 1 || got.Users[0].Email != "eraycan@email.com" {
		t.Errorf("Users = %+v", got.Users)
	}
	if len(got.JoinedAdIDs) != 2 || got.JoinedAdIDs[0] != "2" || got.JoinedAdIDs[1] != "4" {
		t.Errorf("JoinedAdIDs = %v, want [2 4] in order", got.JoinedAdIDs)
	}
}

func TestSaveReplacesPrevious(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	first := testSnapshot()
	if err := db.Save(ctx, first); err != nil {
		t.Fatalf("first Save() error = %v", err)
	}

	second := testSnapshot()
	second.CurrentEmail = "" // logged out
	second.JoinedAdIDs = nil
	if err := db.Save(ctx, second); err != nil {
		t.Fatalf("second Save() error = %v", err)
	}

	got, err := db.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.CurrentEmail != "" {
		t.Errorf("CurrentEmail = %q, want empty after replace", got.CurrentEmail)
	}
	if len(got.JoinedAdIDs) != 0 {
		t.Errorf("JoinedAdIDs = %v, want empty", got.JoinedAdIDs)
	}

	// Still exactly one row — the CHECK (id = 1) constraint plus REPLACE
	// semantics must never accumulate history.
	var count int
	if err := db.conn.QueryRow(`SELECT COUNT(*) FROM snapshot`).Scan(&count); err != nil {
		t.Fatalf("counting rows: %v", err)
	}
	if count != 1 {
		t.Errorf("snapshot rows = %d, want 1", count)
	}
}

func TestLoadDiscardsMismatchedSchemaVersion(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	snap := testSnapshot()
	snap.SchemaVersion = model.SnapshotSchemaVersion + 1
	if err := db.Save(ctx, snap); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := db.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got != nil {
		t.Errorf("Load() = %+v, want nil for mismatched schema version", got)
	}
}

func TestSaveNilSnapshot(t *testing.T) {
	db := newTestDB(t)

	if err := db.Save(context.Background(), nil); err == nil {
		t.Error("Save(nil) should return an error")
	}
}
