package cli

import (
	"bytes"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/eraycan/toplana/internal/auth"
	"github.com/eraycan/toplana/internal/repository/memory"
	"github.com/eraycan/toplana/internal/store"
)

// testNow keeps the past/upcoming partition stable: seed ad 1 is upcoming,
// seed ads 2-4 are past.
var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.Local)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	st, err := store.New(memory.New(), logger,
		store.WithClock(func() time.Time { return testNow }),
		store.WithPasswordService(auth.NewPasswordServiceForTest(bcrypt.MinCost)),
	)
	require.NoError(t, err)
	return st
}

// execute runs one command line against the shared store and captures its
// combined output. The store survives across calls, like the app process
// would.
func execute(t *testing.T, st *store.Store, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd := NewRootCommand(st)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestRegisterLoginFlow(t *testing.T) {
	st := newTestStore(t)

	out, err := execute(t, st, "register",
		"--name", "Eray Can", "--email", "eraycan@email.com", "--password", "parola123")
	require.NoError(t, err)
	assert.Contains(t, out, "Welcome, Eray Can!")

	out, err = execute(t, st, "profile")
	require.NoError(t, err)
	assert.Contains(t, out, "Eray Can <eraycan@email.com>")

	out, err = execute(t, st, "logout")
	require.NoError(t, err)
	assert.Contains(t, out, "Signed out.")

	_, err = execute(t, st, "profile")
	require.Error(t, err, "profile without a session must fail")

	_, err = execute(t, st, "login", "--email", "eraycan@email.com", "--password", "yanlis")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid email or password")

	out, err = execute(t, st, "login", "--email", "eraycan@email.com", "--password", "parola123")
	require.NoError(t, err)
	assert.Contains(t, out, "Welcome back, Eray Can!")
}

func TestRegisterRequiresFlags(t *testing.T) {
	st := newTestStore(t)

	_, err := execute(t, st, "register", "--name", "Eksik")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag")
}

func TestAdsListFilters(t *testing.T) {
	st := newTestStore(t)

	out, err := execute(t, st, "ads", "--category", "gaming", "--search", "okey")
	require.NoError(t, err)
	assert.Contains(t, out, "Okey Masası")
	assert.NotContains(t, out, "FIFA 24")

	out, err = execute(t, st, "ads", "--search", "bulunamaz-kelime")
	require.NoError(t, err)
	assert.Contains(t, out, "No listings match.")
}

func TestAdsCreateAndMine(t *testing.T) {
	st := newTestStore(t)

	_, err := execute(t, st, "ads", "create",
		"--title", "Kamp Gecesi", "--category", "travel",
		"--location", "Polonezköy", "--date", "2026-10-03", "--max", "5")
	require.Error(t, err, "posting without a session must fail")

	_, err = execute(t, st, "register",
		"--name", "Gezgin", "--email", "gezgin@x.com", "--password", "pw")
	require.NoError(t, err)

	out, err := execute(t, st, "ads", "create",
		"--title", "Kamp Gecesi", "--category", "travel",
		"--location", "Polonezköy", "--date", "2026-10-03", "--max", "5",
		"--tags", "Kamp,Doğa")
	require.NoError(t, err)
	assert.Contains(t, out, "Listing posted.")
	assert.Contains(t, out, "participants: 1/5")

	out, err = execute(t, st, "mine")
	require.NoError(t, err)
	assert.Contains(t, out, "Kamp Gecesi")

	_, err = execute(t, st, "ads", "create",
		"--title", "X", "--category", "yok-boyle-kategori",
		"--location", "Y", "--date", "2026-10-03")
	require.Error(t, err, "unknown category must be an explicit failure")
}

func TestJoinFlow(t *testing.T) {
	st := newTestStore(t)

	_, err := execute(t, st, "register",
		"--name", "Katılımcı", "--email", "k@x.com", "--password", "pw")
	require.NoError(t, err)

	out, err := execute(t, st, "ads", "join", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "You're in!")

	out, err = execute(t, st, "events", "upcoming")
	require.NoError(t, err)
	assert.Contains(t, out, "FIFA 24")

	out, err = execute(t, st, "ads", "participants", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Ahmet K.")
	assert.Contains(t, out, "k@x.com")

	// Capacity: ad 1 is seeded 3/4, our join made it 4/4.
	_, err = execute(t, st, "logout")
	require.NoError(t, err)
	_, err = execute(t, st, "register",
		"--name", "Geç Kalan", "--email", "gec@x.com", "--password", "pw")
	require.NoError(t, err)
	_, err = execute(t, st, "ads", "join", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "full")
}

func TestThemeCommand(t *testing.T) {
	st := newTestStore(t)

	out, err := execute(t, st, "theme")
	require.NoError(t, err)
	assert.Contains(t, out, "light")

	out, err = execute(t, st, "theme", "dark")
	require.NoError(t, err)
	assert.Contains(t, out, "Theme set to dark.")

	out, err = execute(t, st, "theme")
	require.NoError(t, err)
	assert.Contains(t, out, "dark")

	_, err = execute(t, st, "theme", "neon")
	require.Error(t, err)
}

func TestCategoriesCommand(t *testing.T) {
	st := newTestStore(t)

	out, err := execute(t, st, "categories")
	require.NoError(t, err)
	for _, id := range []string{"gaming", "cinema", "sports", "music", "food", "travel", "study", "other"} {
		assert.Contains(t, out, id)
	}
}
