// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"fmt"

	"bijoucatalog/internal/models"
)

// ContentStore handles the CMS-driven storefront content: announcement bar
// messages and homepage hero banners.
type ContentStore struct {
	db *sql.DB
}

// NewContentStore creates a new ContentStore with the given database connection.
func NewContentStore(db *sql.DB) *ContentStore {
	return &ContentStore{db: db}
}

// ListAnnouncements returns all active announcements ordered by rank.
// Scheduling windows are evaluated by the content service, not here, so the
// service can use an injectable clock.
func (s *ContentStore) ListAnnouncements(ctx context.Context) ([]models.Announcement, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, message, rank, starts_at, ends_at, is_active, created_at, updated_at
		FROM announcements
		WHERE is_active
		ORDER BY rank ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list announcements: %w", err)
	}
	defer rows.Close()

	var items []models.Announcement
	for rows.Next() {
		var a models.Announcement
		if err := rows.Scan(
			&a.ID, &a.Message, &a.Rank, &a.StartsAt, &a.EndsAt,
			&a.IsActive, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan announcement: %w", err)
		}
		items = append(items, a)
	}
	return items, rows.Err()
}

// ListActiveBanners returns all active hero banners ordered by rank.
func (s *ContentStore) ListActiveBanners(ctx context.Context) ([]models.HeroBanner, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, subtitle, image_url, link_url, rank, is_active, created_at, updated_at
		FROM hero_banners
		WHERE is_active
		ORDER BY rank ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list banners: %w", err)
	}
	defer rows.Close()

	var banners []models.HeroBanner
	for rows.Next() {
		var b models.HeroBanner
		if err := rows.Scan(
			&b.ID, &b.Title, &b.Subtitle, &b.ImageURL, &b.LinkURL,
			&b.Rank, &b.IsActive, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan banner: %w", err)
		}
		banners = append(banners, b)
	}
	return banners, rows.Err()
}

// FindAnnouncement retrieves one announcement by id. Returns nil if not found.
func (s *ContentStore) FindAnnouncement(ctx context.Context, id string) (*models.Announcement, error) {
	a := &models.Announcement{}
	err := s.db.QueryRowContext(ctx, `
		SELECT id, message, rank, starts_at, ends_at, is_active, created_at, updated_at
		FROM announcements WHERE id = $1
	`, id).Scan(
		&a.ID, &a.Message, &a.Rank, &a.StartsAt, &a.EndsAt,
		&a.IsActive, &a.CreatedAt, &a.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find announcement: %w", err)
	}
	return a, nil
}
