package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(Config{Path: filepath.Join(t.TempDir(), "nested", "checks.db")})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestDefaultConfig(t *testing.T) {
	assert.Equal(t, "./data/checks.db", DefaultConfig().Path)
}

func TestHashSource(t *testing.T) {
	a := HashSource("x = 1;")
	assert.Len(t, a, 64)
	assert.Equal(t, a, HashSource("x = 1;"))
	assert.NotEqual(t, a, HashSource("x = 2;"))
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", HashSource(""))
}

func TestStore_PutGet(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	ok := &Record{
		Hash:       HashSource("x = 1;"),
		Path:       "a.why",
		OK:         true,
		Tokens:     5,
		Statements: 1,
		RunID:      "run-1",
	}
	require.NoError(t, s.Put(ctx, ok))
	assert.False(t, ok.CheckedAt.IsZero(), "Put should stamp CheckedAt")

	got, err := s.Get(ctx, ok.Hash)
	require.NoError(t, err)
	assert.Equal(t, "a.why", got.Path)
	assert.True(t, got.OK)
	assert.Empty(t, got.Message)
	assert.Zero(t, got.Line)
	assert.Equal(t, 5, got.Tokens)
	assert.Equal(t, 1, got.Statements)
	assert.Equal(t, "run-1", got.RunID)
	assert.WithinDuration(t, ok.CheckedAt, got.CheckedAt, time.Second)

	failed := &Record{
		Hash:    HashSource("x = ;"),
		Path:    "b.why",
		OK:      false,
		Message: "expected expression, found ';'",
		Line:    1,
		Column:  5,
		Tokens:  4,
		RunID:   "run-1",
	}
	require.NoError(t, s.Put(ctx, failed))

	got, err = s.Get(ctx, failed.Hash)
	require.NoError(t, err)
	assert.False(t, got.OK)
	assert.Equal(t, failed.Message, got.Message)
	assert.Equal(t, 1, got.Line)
	assert.Equal(t, 5, got.Column)
}

func TestStore_PutReplaces(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	hash := HashSource("x = 1;")

	require.NoError(t, s.Put(ctx, &Record{Hash: hash, Path: "old.why", OK: true, RunID: "a"}))
	require.NoError(t, s.Put(ctx, &Record{Hash: hash, Path: "new.why", OK: true, RunID: "b"}))

	got, err := s.Get(ctx, hash)
	require.NoError(t, err)
	assert.Equal(t, "new.why", got.Path)
	assert.Equal(t, "b", got.RunID)

	st, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, st.Total)
}

func TestStore_GetMissing(t *testing.T) {
	s := openTestStore(t)
	_, err := s.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_PutRequiresHash(t *testing.T) {
	s := openTestStore(t)
	assert.Error(t, s.Put(context.Background(), &Record{Path: "a.why"}))
}

func TestStore_PruneAndStats(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	old := time.Now().Add(-48 * time.Hour)
	require.NoError(t, s.Put(ctx, &Record{Hash: "old", Path: "a.why", OK: false, RunID: "r", CheckedAt: old}))
	require.NoError(t, s.Put(ctx, &Record{Hash: "new", Path: "b.why", OK: true, RunID: "r"}))

	st, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, st.Total)
	assert.EqualValues(t, 1, st.Failed)
	assert.False(t, st.LastCheck.IsZero())

	n, err := s.Prune(ctx, 24*time.Hour)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	_, err = s.Get(ctx, "old")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.Get(ctx, "new")
	assert.NoError(t, err)
}

func TestStore_EmptyStats(t *testing.T) {
	s := openTestStore(t)
	st, err := s.Stats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, st.Total)
	assert.True(t, st.LastCheck.IsZero())
}
