// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers implements the JSON API. The catalog handlers check the
// Valkey response cache before fetching from the upstream index, and every
// payload is rebuilt from a fresh flat fetch on miss — no catalog state is
// held between requests.
package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"bijoucatalog/internal/cache"
	"bijoucatalog/internal/catalog"
	"bijoucatalog/internal/models"
)

// cacheControl is sent on the catalog endpoints; the CDN revalidation window
// matches the Valkey TTL.
const cacheControl = "public, s-maxage=300, stale-while-revalidate=600"

// CategorySource is the upstream the catalog handlers fetch from.
// Satisfied by *search.Registry.
type CategorySource interface {
	FetchCategories(ctx context.Context) ([]models.Category, error)
	ActiveName() string
}

// Catalog groups the category tree and path resolution handlers.
type Catalog struct {
	source        CategorySource
	responseCache *cache.ResponseCache
}

// NewCatalog creates the catalog handler group. responseCache may be nil
// when Valkey is not configured; every request then rebuilds from upstream.
func NewCatalog(source CategorySource, responseCache *cache.ResponseCache) *Catalog {
	return &Catalog{source: source, responseCache: responseCache}
}

// Tree serves the assembled category hierarchy.
func (h *Catalog) Tree(w http.ResponseWriter, r *http.Request) {
	_, payload, err := h.loadResponse(r.Context())
	if err != nil {
		slog.Error("category tree fetch failed", "backend", h.source.ActiveName(), "error", err)
		// Empty-tree fallback: navigation consumers render an empty menu
		// instead of needing a separate error path.
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"tree":  []any{},
			"flat":  []any{},
			"total": 0,
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", cacheControl)
	w.Write(payload)
}

// ResolvePath resolves a multi-segment category path into a category and its
// breadcrumb trail. An unknown handle and a structurally invalid chain both
// answer 404 — the storefront treats them identically.
func (h *Catalog) ResolvePath(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "*")
	segments := splitPath(raw)
	if len(segments) == 0 {
		writeError(w, http.StatusNotFound, "category not found")
		return
	}

	resp, _, err := h.loadResponse(r.Context())
	if err != nil {
		slog.Error("category path fetch failed", "backend", h.source.ActiveName(), "error", err)
		writeError(w, http.StatusInternalServerError, "category index unavailable")
		return
	}

	resolution := catalog.ResolveCategoryFromSlug(segments, resp)
	if resolution == nil {
		writeError(w, http.StatusNotFound, "category not found")
		return
	}

	w.Header().Set("Cache-Control", cacheControl)
	writeJSON(w, http.StatusOK, resolution)
}

// loadResponse returns the assembled catalog response and its serialized
// form, via the Valkey cache when possible.
func (h *Catalog) loadResponse(ctx context.Context) (*models.CategoryResponse, []byte, error) {
	key := cache.TreeKey(h.source.ActiveName())

	if h.responseCache != nil {
		if payload, ok := h.responseCache.Get(ctx, key); ok {
			var resp models.CategoryResponse
			if err := json.Unmarshal(payload, &resp); err == nil {
				return &resp, payload, nil
			}
			slog.Warn("cached catalog payload corrupt, rebuilding", "key", key)
		}
	}

	cats, err := h.source.FetchCategories(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch categories: %w", err)
	}

	resp := catalog.BuildResponse(cats)
	payload, err := json.Marshal(resp)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal catalog response: %w", err)
	}

	if h.responseCache != nil {
		h.responseCache.Set(ctx, key, payload)
	}
	return resp, payload, nil
}

// splitPath splits a wildcard URL remainder into clean path segments.
func splitPath(raw string) []string {
	var segments []string
	for _, s := range strings.Split(raw, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}
	return segments
}
