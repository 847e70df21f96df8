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

// BrandStore handles brand directory rows.
type BrandStore struct {
	db *sql.DB
}

// NewBrandStore creates a new BrandStore with the given database connection.
func NewBrandStore(db *sql.DB) *BrandStore {
	return &BrandStore{db: db}
}

// ListBrands returns all brands, featured first, then alphabetically.
func (s *BrandStore) ListBrands(ctx context.Context) ([]models.Brand, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, handle, logo_url, product_count, featured, created_at, updated_at
		FROM brands
		ORDER BY featured DESC, name ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list brands: %w", err)
	}
	defer rows.Close()

	var brands []models.Brand
	for rows.Next() {
		var b models.Brand
		if err := rows.Scan(
			&b.ID, &b.Name, &b.Handle, &b.LogoURL,
			&b.ProductCount, &b.Featured, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan brand: %w", err)
		}
		brands = append(brands, b)
	}
	return brands, rows.Err()
}

// FindBrandByHandle retrieves one brand by its handle. Returns nil if not found.
func (s *BrandStore) FindBrandByHandle(ctx context.Context, handle string) (*models.Brand, error) {
	b := &models.Brand{}
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, handle, logo_url, product_count, featured, created_at, updated_at
		FROM brands WHERE handle = $1
	`, handle).Scan(
		&b.ID, &b.Name, &b.Handle, &b.LogoURL,
		&b.ProductCount, &b.Featured, &b.CreatedAt, &b.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find brand by handle: %w", err)
	}
	return b, nil
}

// CreateBrand inserts a brand, generating the handle from the name when empty.
func (s *BrandStore) CreateBrand(ctx context.Context, name, handle, logoURL string, productCount int, featured bool) (uuid.UUID, error) {
	if handle == "" {
		handle = slug.Generate(name)
	}

	id := uuid.New()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO brands (id, name, handle, logo_url, product_count, featured)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, id, name, handle, logoURL, productCount, featured)
	if err != nil {
		return uuid.Nil, fmt.Errorf("create brand: %w", err)
	}
	return id, nil
}
