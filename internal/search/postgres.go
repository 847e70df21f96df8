// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package search

import (
	"context"
	"fmt"

	"bijoucatalog/internal/models"
)

// CategoryLister is the slice of the category store the Postgres provider
// needs. Satisfied by *store.CategoryStore.
type CategoryLister interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
}

// postgresProvider serves categories from the local Postgres catalog. It is
// the fallback backend when no search engine is configured, and what
// development environments run against after seeding.
type postgresProvider struct {
	store CategoryLister
}

// NewPostgresProvider wraps a category store as a search Provider.
func NewPostgresProvider(store CategoryLister) Provider {
	return &postgresProvider{store: store}
}

func (p *postgresProvider) Name() string { return "postgres" }

func (p *postgresProvider) FetchCategories(ctx context.Context) ([]models.Category, error) {
	cats, err := p.store.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("postgres categories: %w", err)
	}
	return cats, nil
}
