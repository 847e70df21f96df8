// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package catalog

import (
	"log/slog"
	"sort"

	"bijoucatalog/internal/models"
)

// BuildResponse assembles the full catalog payload for one request: inactive
// categories are dropped, the flat list is sorted by depth then rank, the
// tree and both lookup maps are built over the same backing slice, and
// MaxDepth records the deepest level observed (0 for an empty catalog).
//
// The response is transient — callers build one per upstream fetch and
// discard it; any cross-request caching happens at the HTTP layer.
func BuildResponse(cats []models.Category) *models.CategoryResponse {
	flat := make([]models.Category, 0, len(cats))
	for i := range cats {
		if cats[i].IsActive {
			flat = append(flat, cats[i])
		}
	}

	sort.SliceStable(flat, func(i, j int) bool {
		if flat[i].Depth != flat[j].Depth {
			return flat[i].Depth < flat[j].Depth
		}
		return flat[i].Rank < flat[j].Rank
	})

	byID := make(map[string]*models.Category, len(flat))
	byHandle := make(map[string]*models.Category, len(flat))
	maxDepth := 0
	for i := range flat {
		byID[flat[i].ID] = &flat[i]
		if other, ok := byHandle[flat[i].Handle]; ok {
			// The handle map is keyed by bare handle, matching the upstream
			// index contract. Collisions are a data problem worth surfacing.
			slog.Warn("duplicate category handle",
				"handle", flat[i].Handle, "id", flat[i].ID, "other_id", other.ID)
		}
		byHandle[flat[i].Handle] = &flat[i]
		if flat[i].Depth > maxDepth {
			maxDepth = flat[i].Depth
		}
	}

	return &models.CategoryResponse{
		Tree:     BuildTree(flat),
		Flat:     flat,
		ByID:     byID,
		ByHandle: byHandle,
		Total:    len(flat),
		MaxDepth: maxDepth,
	}
}
