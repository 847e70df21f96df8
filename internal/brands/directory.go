// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package brands serves the storefront brand directory through an explicit
// in-memory TTL cache. The cache is owned by whoever constructs the
// Directory — there is no package-level singleton — and both the TTL and the
// clock are injectable so expiry is testable without sleeping.
package brands

import (
	"context"
	"fmt"
	"sync"
	"time"

	"bijoucatalog/internal/models"
)

// Lister is the slice of the brand store the directory needs.
// Satisfied by *store.BrandStore.
type Lister interface {
	ListBrands(ctx context.Context) ([]models.Brand, error)
}

// Directory is a cache-aside view over the brand store.
type Directory struct {
	store Lister
	ttl   time.Duration
	now   func() time.Time

	mu      sync.RWMutex
	data    []models.Brand
	expires time.Time
}

// Option configures a Directory.
type Option func(*Directory)

// WithClock replaces the wall clock. Used by tests to control expiry.
func WithClock(now func() time.Time) Option {
	return func(d *Directory) { d.now = now }
}

// New creates a brand directory with the given backing store and cache TTL.
func New(store Lister, ttl time.Duration, opts ...Option) *Directory {
	d := &Directory{
		store: store,
		ttl:   ttl,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// List returns the brand directory, serving from cache when fresh and
// falling through to the store otherwise.
func (d *Directory) List(ctx context.Context) ([]models.Brand, error) {
	d.mu.RLock()
	if d.data != nil && d.now().Before(d.expires) {
		brands := d.data
		d.mu.RUnlock()
		return brands, nil
	}
	d.mu.RUnlock()

	brands, err := d.store.ListBrands(ctx)
	if err != nil {
		return nil, fmt.Errorf("brand directory: %w", err)
	}

	d.mu.Lock()
	d.data = brands
	d.expires = d.now().Add(d.ttl)
	d.mu.Unlock()

	return brands, nil
}

// Invalidate drops the cached directory so the next List hits the store.
func (d *Directory) Invalidate() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.data = nil
}
