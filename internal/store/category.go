// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"bijoucatalog/internal/models"
	"bijoucatalog/internal/slug"
)

// CategoryStore handles category rows in the local Postgres catalog. It is
// the system of record in development and the fallback index when no search
// backend is configured.
type CategoryStore struct {
	db *sql.DB
}

// NewCategoryStore creates a new CategoryStore with the given database connection.
func NewCategoryStore(db *sql.DB) *CategoryStore {
	return &CategoryStore{db: db}
}

// categoryRow is a category as stored, before the ancestor chains are derived.
type categoryRow struct {
	id           uuid.UUID
	handle       string
	name         string
	parentID     uuid.NullUUID
	rank         int
	isActive     bool
	productCount int
}

// ListCategories returns every category with its derived attributes
// (root-first ancestor chains and depth) computed from the parent links, in
// the same shape the search backends deliver.
func (s *CategoryStore) ListCategories(ctx context.Context) ([]models.Category, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, handle, name, parent_id, rank, is_active, product_count
		FROM categories
		ORDER BY rank, handle
	`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var raw []categoryRow
	for rows.Next() {
		var r categoryRow
		if err := rows.Scan(
			&r.id, &r.handle, &r.name, &r.parentID,
			&r.rank, &r.isActive, &r.productCount,
		); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		raw = append(raw, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	return deriveChains(raw), nil
}

// deriveChains computes the cached ancestor arrays and depth for every row
// by walking parent links. A row whose parent is missing from the set is
// treated as a root, mirroring the orphan policy of the tree builder.
func deriveChains(raw []categoryRow) []models.Category {
	byID := make(map[uuid.UUID]*categoryRow, len(raw))
	for i := range raw {
		byID[raw[i].id] = &raw[i]
	}

	type chain struct {
		ids, handles, names []string
	}
	memo := make(map[uuid.UUID]chain, len(raw))

	var ancestry func(r *categoryRow, visiting map[uuid.UUID]bool) chain
	ancestry = func(r *categoryRow, visiting map[uuid.UUID]bool) chain {
		if c, ok := memo[r.id]; ok {
			return c
		}
		var c chain
		// visiting guards against parent cycles in hand-edited data.
		if r.parentID.Valid && !visiting[r.id] {
			if parent, ok := byID[r.parentID.UUID]; ok {
				visiting[r.id] = true
				pc := ancestry(parent, visiting)
				c.ids = append(append([]string{}, pc.ids...), parent.id.String())
				c.handles = append(append([]string{}, pc.handles...), parent.handle)
				c.names = append(append([]string{}, pc.names...), parent.name)
			}
		}
		if c.ids == nil {
			c = chain{ids: []string{}, handles: []string{}, names: []string{}}
		}
		memo[r.id] = c
		return c
	}

	cats := make([]models.Category, 0, len(raw))
	for i := range raw {
		r := &raw[i]
		c := ancestry(r, map[uuid.UUID]bool{})

		parentID := ""
		if r.parentID.Valid {
			parentID = r.parentID.UUID.String()
		}

		cats = append(cats, models.Category{
			ID:                r.id.String(),
			Handle:            r.handle,
			Name:              r.name,
			ParentCategoryID:  parentID,
			ParentCategoryIDs: c.ids,
			AncestorHandles:   c.handles,
			AncestorNames:     c.names,
			Depth:             len(c.ids),
			Rank:              r.rank,
			IsActive:          r.isActive,
			ProductCount:      r.productCount,
		})
	}
	return cats
}

// CreateCategory inserts a category. The handle is generated from the name
// when empty. parentID may be uuid.Nil for a root category.
func (s *CategoryStore) CreateCategory(ctx context.Context, name, handle string, parentID uuid.UUID, rank, productCount int) (uuid.UUID, error) {
	if handle == "" {
		handle = slug.Generate(name)
	}

	var parent uuid.NullUUID
	if parentID != uuid.Nil {
		parent = uuid.NullUUID{UUID: parentID, Valid: true}
	}

	id := uuid.New()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO categories (id, handle, name, parent_id, rank, is_active, product_count)
		VALUES ($1, $2, $3, $4, $5, TRUE, $6)
	`, id, handle, name, parent, rank, productCount)
	if err != nil {
		return uuid.Nil, fmt.Errorf("create category: %w", err)
	}
	return id, nil
}

// CountCategories returns the number of category rows. Used by the seed to
// stay idempotent.
func (s *CategoryStore) CountCategories(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM categories").Scan(&count); err != nil {
		return 0, fmt.Errorf("count categories: %w", err)
	}
	return count, nil
}
