// ============================================================================
// why - Sprachwerkzeuge
// ============================================================================
//
// Package:     store
// Description: In-memory layer in front of the check store
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package store

import (
	"context"
	"time"

	"github.com/msto63/why/pkg/core/cache"
)

// Backend is the persistent layer behind a Tiered cache. *Store implements it.
type Backend interface {
	Get(ctx context.Context, hash string) (*Record, error)
	Put(ctx context.Context, r *Record) error
}

// Tiered answers lookups from memory first and falls back to the backend
type Tiered struct {
	mem     *cache.Cache[Record]
	backend Backend
}

// NewTiered creates a tiered cache holding up to maxItems records in memory
// for ttl. A ttl of 0 uses the memory cache default.
func NewTiered(backend Backend, maxItems int, ttl time.Duration) *Tiered {
	return &Tiered{
		mem: cache.New[Record](cache.Config{
			MaxItems:        maxItems,
			TTL:             ttl,
			CleanupInterval: time.Minute,
		}),
		backend: backend,
	}
}

// Get returns the record for hash or ErrNotFound
func (t *Tiered) Get(ctx context.Context, hash string) (*Record, error) {
	if r, ok := t.mem.Get(hash); ok {
		return &r, nil
	}
	r, err := t.backend.Get(ctx, hash)
	if err != nil {
		return nil, err
	}
	t.mem.Set(hash, *r)
	return r, nil
}

// Put writes r to the backend and, once that succeeded, to memory
func (t *Tiered) Put(ctx context.Context, r *Record) error {
	if err := t.backend.Put(ctx, r); err != nil {
		return err
	}
	t.mem.Set(r.Hash, *r)
	return nil
}

// Stats returns the hit statistics of the memory layer
func (t *Tiered) Stats() (hits, misses int64, hitRate float64) {
	return t.mem.Stats()
}

// Close stops the memory layer. The backend is left open.
func (t *Tiered) Close() {
	t.mem.Close()
}
