// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package search provides a unified interface over the upstream category
// indexes (Meilisearch, Elastic App Search, or the local Postgres catalog).
// Each backend implements the Provider interface and handles its own HTTP
// communication and hit normalization; the Registry selects the active one
// by name.
package search

import (
	"context"
	"fmt"
	"sync"

	"bijoucatalog/internal/models"
)

// Provider fetches the full flat category list from one upstream backend.
type Provider interface {
	// FetchCategories returns every category document in the index,
	// normalized into the internal shape. The list is flat; tree building
	// happens downstream.
	FetchCategories(ctx context.Context) ([]models.Category, error)

	// Name returns the backend identifier (e.g. "meilisearch").
	Name() string
}

// ProviderConfig holds the connection settings for a single search backend.
type ProviderConfig struct {
	Host   string
	APIKey string
	// Index is the Meilisearch index uid or the App Search engine name.
	Index string
}

// Registry manages the configured search backends and selects the active
// one. Safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	providers map[string]Provider
	active    string
}

// NewRegistry creates a registry and initialises a provider for every config
// with a non-empty host. Backends without a host are silently skipped.
func NewRegistry(active string, configs map[string]ProviderConfig) *Registry {
	r := &Registry{
		providers: make(map[string]Provider),
		active:    active,
	}

	for name, cfg := range configs {
		if cfg.Host == "" {
			continue
		}
		switch name {
		case "meilisearch":
			r.providers[name] = newMeilisearch(cfg)
		case "appsearch":
			r.providers[name] = newAppSearch(cfg)
		}
	}

	return r
}

// FetchCategories calls the active provider.
func (r *Registry) FetchCategories(ctx context.Context) ([]models.Category, error) {
	p, err := r.Active()
	if err != nil {
		return nil, err
	}
	return p.FetchCategories(ctx)
}

// Active returns the currently active provider.
func (r *Registry) Active() (Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.providers[r.active]
	if !ok {
		return nil, fmt.Errorf("search: no backend configured for %q", r.active)
	}
	return p, nil
}

// ActiveName returns the name of the currently active backend.
func (r *Registry) ActiveName() string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.active
}

// SetActive switches the active backend at runtime. Returns an error if the
// named backend is not configured.
func (r *Registry) SetActive(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.providers[name]; !ok {
		return fmt.Errorf("search: backend %q is not available", name)
	}
	r.active = name
	return nil
}

// Available returns the names of all configured backends.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var names []string
	for name := range r.providers {
		names = append(names, name)
	}
	return names
}

// Register adds or replaces a provider. Used to wire the Postgres fallback
// and to inject fakes in tests.
func (r *Registry) Register(name string, p Provider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers[name] = p
}
