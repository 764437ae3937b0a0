package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingBackend struct {
	Backend
	gets int
}

func (b *countingBackend) Get(ctx context.Context, hash string) (*Record, error) {
	b.gets++
	return b.Backend.Get(ctx, hash)
}

func TestTiered(t *testing.T) {
	backend := &countingBackend{Backend: openTestStore(t)}
	tiered := NewTiered(backend, 10, time.Minute)
	defer tiered.Close()
	ctx := context.Background()

	_, err := tiered.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 1, backend.gets)

	rec := &Record{Hash: HashSource("x = 1;"), Path: "a.why", OK: true, Tokens: 5}
	require.NoError(t, tiered.Put(ctx, rec))

	got, err := tiered.Get(ctx, rec.Hash)
	require.NoError(t, err)
	assert.Equal(t, "a.why", got.Path)
	assert.Equal(t, 1, backend.gets, "served from memory")

	got.Path = "changed"
	again, err := tiered.Get(ctx, rec.Hash)
	require.NoError(t, err)
	assert.Equal(t, "a.why", again.Path, "callers get copies")

	hits, _, _ := tiered.Stats()
	assert.Equal(t, int64(2), hits)
}

func TestTiered_LoadsFromBackend(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	rec := &Record{Hash: HashSource("y = 2;"), Path: "b.why", OK: true}
	require.NoError(t, s.Put(ctx, rec))

	backend := &countingBackend{Backend: s}
	tiered := NewTiered(backend, 10, time.Minute)
	defer tiered.Close()

	for i := 0; i < 3; i++ {
		got, err := tiered.Get(ctx, rec.Hash)
		require.NoError(t, err)
		assert.Equal(t, "b.why", got.Path)
	}
	assert.Equal(t, 1, backend.gets)
}

func TestTiered_PutFailureSkipsMemory(t *testing.T) {
	tiered := NewTiered(openTestStore(t), 10, time.Minute)
	defer tiered.Close()

	err := tiered.Put(context.Background(), &Record{})
	require.Error(t, err)
	_, err = tiered.Get(context.Background(), "")
	assert.ErrorIs(t, err, ErrNotFound)
}
