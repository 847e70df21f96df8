// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"bijoucatalog/internal/models"
)

// BrandLister serves the brand directory. Satisfied by *brands.Directory.
type BrandLister interface {
	List(ctx context.Context) ([]models.Brand, error)
}

// ContentService serves storefront content. Satisfied by *content.Service.
type ContentService interface {
	Announcements(ctx context.Context) ([]models.Announcement, error)
	Banners(ctx context.Context) ([]models.HeroBanner, error)
}

// Storefront groups the brand directory and CMS content handlers.
type Storefront struct {
	brands  BrandLister
	content ContentService
}

// NewStorefront creates the storefront handler group.
func NewStorefront(brands BrandLister, content ContentService) *Storefront {
	return &Storefront{brands: brands, content: content}
}

// Brands serves the brand directory, featured brands first.
func (h *Storefront) Brands(w http.ResponseWriter, r *http.Request) {
	brands, err := h.brands.List(r.Context())
	if err != nil {
		slog.Error("brand directory failed", "error", err)
		writeError(w, http.StatusInternalServerError, "brand directory unavailable")
		return
	}
	if brands == nil {
		brands = []models.Brand{}
	}

	w.Header().Set("Cache-Control", cacheControl)
	writeJSON(w, http.StatusOK, map[string]any{"brands": brands})
}

// Announcements serves the currently visible announcement bar messages.
func (h *Storefront) Announcements(w http.ResponseWriter, r *http.Request) {
	items, err := h.content.Announcements(r.Context())
	if err != nil {
		slog.Error("announcements failed", "error", err)
		writeError(w, http.StatusInternalServerError, "announcements unavailable")
		return
	}

	w.Header().Set("Cache-Control", cacheControl)
	writeJSON(w, http.StatusOK, map[string]any{"announcements": items})
}

// Banners serves the active homepage hero banners.
func (h *Storefront) Banners(w http.ResponseWriter, r *http.Request) {
	banners, err := h.content.Banners(r.Context())
	if err != nil {
		slog.Error("banners failed", "error", err)
		writeError(w, http.StatusInternalServerError, "banners unavailable")
		return
	}
	if banners == nil {
		banners = []models.HeroBanner{}
	}

	w.Header().Set("Cache-Control", cacheControl)
	writeJSON(w, http.StatusOK, map[string]any{"banners": banners})
}
