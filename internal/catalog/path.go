// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package catalog

import (
	"strings"

	"bijoucatalog/internal/models"
)

// categoryBasePath prefixes every breadcrumb href. The storefront serves
// category pages under /categorie/<handle>/<handle>/...
const categoryBasePath = "/categorie"

// ResolvePath validates a multi-segment category path left to right and
// builds its breadcrumb trail. Every segment must name a known handle, and
// from the second segment on, the previous segment must be an ancestor
// handle of — or the direct parent of — the segment's category.
//
// Resolution is all or nothing: the first missing or structurally
// inconsistent segment fails the whole chain and nil is returned. A wrong
// path and an unknown handle are deliberately indistinguishable here.
func ResolvePath(segments []string, byHandle map[string]*models.Category) []models.Breadcrumb {
	if len(segments) == 0 {
		return nil
	}

	breadcrumbs := make([]models.Breadcrumb, 0, len(segments))
	var prev *models.Category
	currentPath := ""

	for i, handle := range segments {
		cat, ok := byHandle[handle]
		if !ok {
			return nil
		}

		if i > 0 && !descendsFrom(cat, segments[i-1], prev) {
			return nil
		}

		currentPath += "/" + handle
		breadcrumbs = append(breadcrumbs, models.Breadcrumb{
			ID:     cat.ID,
			Name:   cat.Name,
			Handle: cat.Handle,
			Href:   categoryBasePath + currentPath,
			Depth:  cat.Depth,
		})
		prev = cat
	}

	return breadcrumbs
}

// descendsFrom reports whether prevHandle is a legitimate predecessor of cat
// in the hierarchy: either an ancestor handle from cat's cached chain, or
// the handle of cat's direct parent.
func descendsFrom(cat *models.Category, prevHandle string, prev *models.Category) bool {
	for _, h := range cat.AncestorHandles {
		if h == prevHandle {
			return true
		}
	}
	return prev != nil && cat.ParentCategoryID == prev.ID
}

// ResolveCategoryFromSlug resolves a category page path against an assembled
// response. It returns nil when the path does not resolve at all.
//
// Resolution and canonicality are distinct: Valid is true only when the
// input segments match the resolved category's own ancestor-handle chain
// verbatim. A shorter-but-consistent route to a deep category resolves with
// breadcrumbs yet carries Valid == false, letting callers redirect to the
// canonical URL instead of serving duplicate content.
func ResolveCategoryFromSlug(segments []string, resp *models.CategoryResponse) *models.PathResolution {
	breadcrumbs := ResolvePath(segments, resp.ByHandle)
	if breadcrumbs == nil {
		return nil
	}

	cat := resp.ByHandle[segments[len(segments)-1]]

	canonical := append(append([]string{}, cat.AncestorHandles...), cat.Handle)
	valid := strings.Join(segments, "/") == strings.Join(canonical, "/")

	return &models.PathResolution{
		Category:    cat,
		Breadcrumbs: breadcrumbs,
		Valid:       valid,
	}
}
