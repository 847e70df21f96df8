// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package content serves the CMS-driven storefront content: announcement
// bar messages (Markdown rendered to HTML with goldmark) and homepage hero
// banners. Read-only — editing happens in the merchandising backoffice.
package content

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"bijoucatalog/internal/models"
)

// md is the configured goldmark instance, reused across calls. GFM covers
// the links and emphasis announcement copy uses; Typographer fixes quotes
// and dashes in French marketing text.
var md = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		extension.Typographer,
	),
)

// Store is the slice of the content store the service needs.
// Satisfied by *store.ContentStore.
type Store interface {
	ListAnnouncements(ctx context.Context) ([]models.Announcement, error)
	ListActiveBanners(ctx context.Context) ([]models.HeroBanner, error)
}

// Service assembles storefront content payloads. The clock is injectable so
// announcement scheduling windows are testable.
type Service struct {
	store Store
	now   func() time.Time
}

// NewService creates a content service over the given store.
func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// NewServiceWithClock creates a content service with a fixed clock. Used by tests.
func NewServiceWithClock(store Store, now func() time.Time) *Service {
	return &Service{store: store, now: now}
}

// Announcements returns the announcements currently visible, with their
// Markdown messages rendered to HTML. An announcement whose Markdown fails
// to render is skipped with a warning rather than failing the list.
func (s *Service) Announcements(ctx context.Context) ([]models.Announcement, error) {
	items, err := s.store.ListAnnouncements(ctx)
	if err != nil {
		return nil, fmt.Errorf("announcements: %w", err)
	}

	now := s.now()
	visible := make([]models.Announcement, 0, len(items))
	for _, a := range items {
		if !a.VisibleAt(now) {
			continue
		}
		html, err := renderMarkdown(a.Message)
		if err != nil {
			slog.Warn("announcement render failed", "id", a.ID, "error", err)
			continue
		}
		a.HTML = html
		visible = append(visible, a)
	}
	return visible, nil
}

// Banners returns the active hero banners ordered by rank.
func (s *Service) Banners(ctx context.Context) ([]models.HeroBanner, error) {
	banners, err := s.store.ListActiveBanners(ctx)
	if err != nil {
		return nil, fmt.Errorf("banners: %w", err)
	}
	return banners, nil
}

// renderMarkdown converts Markdown source into HTML.
func renderMarkdown(source string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
