// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package catalog

import (
	"sort"

	"bijoucatalog/internal/models"
)

// Ancestors maps the category's cached ancestor id chain (root-first)
// through the byID table. Ids missing from the table are dropped — partial
// catalogs are tolerated, not reported.
func Ancestors(c *models.Category, byID map[string]*models.Category) []models.Category {
	ancestors := make([]models.Category, 0, len(c.ParentCategoryIDs))
	for _, id := range c.ParentCategoryIDs {
		if a, ok := byID[id]; ok {
			ancestors = append(ancestors, *a)
		}
	}
	return ancestors
}

// Descendants walks the active subtree below the category depth-first and
// returns it as a flat pre-order list: a parent appears before its children,
// and children before their own descendants.
func Descendants(c *models.Category, all []models.Category) []models.Category {
	var out []models.Category
	for i := range all {
		if all[i].ParentCategoryID != c.ID || !all[i].IsActive {
			continue
		}
		out = append(out, all[i])
		out = append(out, Descendants(&all[i], all)...)
	}
	return out
}

// DirectChildren returns the category's active children sorted by rank.
func DirectChildren(c *models.Category, all []models.Category) []models.Category {
	var children []models.Category
	for i := range all {
		if all[i].ParentCategoryID == c.ID && all[i].IsActive {
			children = append(children, all[i])
		}
	}
	sortByRank(children)
	return children
}

// Siblings returns the active categories sharing the category's parent,
// excluding the category itself, sorted by rank. Two root categories count
// as siblings of each other.
func Siblings(c *models.Category, all []models.Category) []models.Category {
	var siblings []models.Category
	for i := range all {
		if all[i].ID == c.ID || !all[i].IsActive {
			continue
		}
		if all[i].ParentCategoryID == c.ParentCategoryID {
			siblings = append(siblings, all[i])
		}
	}
	sortByRank(siblings)
	return siblings
}

// TotalProductCount returns the category's product count. By default this is
// the upstream pre-aggregated value, which already includes descendants.
// With recalculate it instead sums the category's own count plus every
// descendant's own count. Callers must pick one mode and stick with it:
// recalculating on top of pre-aggregated counts double-counts.
func TotalProductCount(c *models.Category, all []models.Category, recalculate bool) int {
	if !recalculate {
		return c.ProductCount
	}
	total := c.ProductCount
	for _, d := range Descendants(c, all) {
		total += d.ProductCount
	}
	return total
}

func sortByRank(cats []models.Category) {
	sort.SliceStable(cats, func(i, j int) bool {
		return cats[i].Rank < cats[j].Rank
	})
}
