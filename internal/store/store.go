// Package store contains the domain store — the single owner of all
// application state and the business rules that guard it.
//
// THE ARCHITECTURE:
//
//	CLI (presentation)  → Store (entities, invariants, queries)
//	                        → SnapshotRepository (durable persistence)
//	                        → PasswordService (bcrypt)
//
// The store owns every collection (users, advertisements, categories), the
// session (at most one authenticated identity), the session's joined-ad set,
// and the UI preferences. Nothing outside this package mutates that state;
// the presentation layer calls operation methods and reads query results,
// which are always copies.
//
// CONCURRENCY MODEL:
// Any goroutine may call in, so one mutex guards every operation — the
// invariants (capacity bounds, email uniqueness) span multiple fields and
// must never be observable mid-update. Each operation runs to completion
// atomically; there is no background work and nothing blocks on I/O except
// the snapshot write at the end of a mutation.
package store

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/eraycan/toplana/internal/apperror"
	"github.com/eraycan/toplana/internal/auth"
	"github.com/eraycan/toplana/internal/model"
	"github.com/eraycan/toplana/internal/repository"
)

// Store is the application state container. Construct it once with New and
// inject it into the presentation layer; it is safe for concurrent use.
type Store struct {
	mu        sync.Mutex
	repo      repository.SnapshotRepository
	passwords *auth.PasswordService
	logger    *slog.Logger
	now       func() time.Time

	users      []model.User          // the user directory; email is unique
	ads        []model.Advertisement // most-recent-first
	categories []model.Category      // fixed reference data, seeded

	currentEmail string   // "" when anonymous
	joined       []string // session-scoped joined-ad ids, insertion order

	selectedCategory string // "" means all
	searchQuery      string
	theme            model.Theme
}

// Option configures a Store at construction time.
type Option func(*Store)

// WithClock injects the time source. Tests use a fixed clock so the
// past/upcoming partition is deterministic.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithPasswordService overrides the bcrypt service. Tests inject a
// minimum-cost service to avoid the deliberate slowness of the default.
func WithPasswordService(ps *auth.PasswordService) Option {
	return func(s *Store) { s.passwords = ps }
}

// New creates the store: seed data is loaded from the embedded defaults,
// then the persisted snapshot (if any) rehydrates the user directory, the
// session, the joined set, and the theme. Advertisements and filters always
// start from defaults — they are intentionally not persisted.
//
// A failing repository is not fatal: the store logs the problem and runs
// in-memory-only, exactly as if there were no snapshot.
func New(repo repository.SnapshotRepository, logger *slog.Logger, opts ...Option) (*Store, error) {
	categories, ads, err := loadSeed()
	if err != nil {
		return nil, err
	}

	s := &Store{
		repo:       repo,
		passwords:  auth.NewPasswordService(),
		logger:     logger,
		now:        time.Now,
		ads:        ads,
		categories: categories,
		theme:      model.ThemeLight,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.hydrate()

	return s, nil
}

// hydrate applies the persisted snapshot to the freshly seeded store.
// Called once from New, before the store is shared, so no locking.
func (s *Store) hydrate() {
	snap, err := s.repo.Load(context.Background())
	if err != nil {
		s.logger.Warn("snapshot unavailable, starting from defaults",
			slog.String("error", err.Error()),
		)
		return
	}
	if snap == nil {
		return
	}

	s.users = snap.Users
	s.joined = snap.JoinedAdIDs
	if snap.Theme.Valid() {
		s.theme = snap.Theme
	}
	// Only restore the session if the account still exists in the restored
	// directory — a snapshot edited by hand must not conjure a ghost login.
	if snap.CurrentEmail != "" && s.findUserLocked(snap.CurrentEmail) != nil {
		s.currentEmail = snap.CurrentEmail
	}

	s.logger.Info("snapshot restored",
		slog.Int("users", len(s.users)),
		slog.Int("joined", len(s.joined)),
		slog.Bool("loggedIn", s.currentEmail != ""),
	)
}

// persistLocked writes the persisted subset to the repository. Persistence
// failures degrade to in-memory-only behaviour: logged, never surfaced.
// Caller must hold s.mu.
func (s *Store) persistLocked() {
	snap := &model.Snapshot{
		SchemaVersion: model.SnapshotSchemaVersion,
		Users:         s.users,
		CurrentEmail:  s.currentEmail,
		JoinedAdIDs:   s.joined,
		Theme:         s.theme,
	}
	if err := s.repo.Save(context.Background(), snap); err != nil {
		s.logger.Warn("failed to persist snapshot, continuing in memory",
			slog.String("error", err.Error()),
		)
	}
}

// findUserLocked returns a pointer into the directory, or nil.
// Caller must hold s.mu (or be in single-owner construction).
func (s *Store) findUserLocked(email string) *model.User {
	for i := range s.users {
		if s.users[i].Email == email {
			return &s.users[i]
		}
	}
	return nil
}

// currentLocked returns the active session's directory entry, or nil when
// anonymous. Caller must hold s.mu.
func (s *Store) currentLocked() *model.User {
	if s.currentEmail == "" {
		return nil
	}
	return s.findUserLocked(s.currentEmail)
}

// findAdLocked returns a pointer into the ad collection, or nil.
// Caller must hold s.mu.
func (s *Store) findAdLocked(id string) *model.Advertisement {
	for i := range s.ads {
		if s.ads[i].ID == id {
			return &s.ads[i]
		}
	}
	return nil
}

func (s *Store) categoryByIDLocked(id string) (model.Category, bool) {
	for _, c := range s.categories {
		if c.ID == id {
			return c, true
		}
	}
	return model.Category{}, false
}

// CurrentUser returns a copy of the active session's user, or nil when
// anonymous.
func (s *Store) CurrentUser() *model.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.currentLocked()
	if u == nil {
		return nil
	}
	out := *u
	return &out
}

// Categories returns the fixed category set.
func (s *Store) Categories() []model.Category {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// Theme returns the current display preference.
func (s *Store) Theme() model.Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}

// SetTheme switches the display preference and persists it. The theme
// survives logout — it belongs to the device, not the account.
func (s *Store) SetTheme(t model.Theme) error {
	if !t.Valid() {
		return apperror.ValidationFailed("theme", fmt.Sprintf("unknown theme %q", t))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.theme = t
	s.persistLocked()
	return nil
}

// SelectedCategory returns the active category filter ("" means all).
func (s *Store) SelectedCategory() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedCategory
}

// SetSelectedCategory sets the category filter. Pass "" to show all
// categories. Filter state is session-local and never persisted.
func (s *Store) SetSelectedCategory(categoryID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedCategory = categoryID
}

// SearchQuery returns the free-text filter string.
func (s *Store) SearchQuery() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.searchQuery
}

// SetSearchQuery sets the free-text filter. Never persisted.
func (s *Store) SetSearchQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchQuery = query
}
