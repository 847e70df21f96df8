// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// Category is a single node of the storefront category taxonomy as delivered
// by the upstream index. The ancestor arrays are cached derived attributes:
// ParentCategoryIDs, AncestorHandles and AncestorNames are parallel,
// root-first, and mirror the ParentCategoryID chain. Depth is expected to
// equal len(ParentCategoryIDs); the upstream index owns that invariant and we
// do not re-verify it here.
type Category struct {
	ID               string `json:"id"`
	Handle           string `json:"handle"`
	Name             string `json:"name"`
	ParentCategoryID string `json:"parent_category_id,omitempty"`

	ParentCategoryIDs []string `json:"parent_category_ids"`
	AncestorHandles   []string `json:"ancestor_handles"`
	AncestorNames     []string `json:"ancestor_names"`

	Depth    int  `json:"depth"`
	Rank     int  `json:"rank"`
	IsActive bool `json:"is_active"`

	// ProductCount is pre-aggregated upstream: it already includes the
	// counts of all descendant categories.
	ProductCount int `json:"product_count"`
}

// IsRoot reports whether the category has no parent.
func (c *Category) IsRoot() bool {
	return c.ParentCategoryID == ""
}

// CategoryTreeNode is a Category with its resolved children. The embedded
// pointer means tree nodes, the flat list and the lookup maps all share the
// same underlying Category values — no deep copies. Children are appended
// exactly once during tree construction and never mutated afterwards.
type CategoryTreeNode struct {
	*Category
	Children []*CategoryTreeNode `json:"children"`
}

// Breadcrumb is one entry of a hierarchical breadcrumb trail. Href is the
// storefront path accumulated from the root down to this entry.
type Breadcrumb struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Handle string `json:"handle"`
	Href   string `json:"href"`
	Depth  int    `json:"depth"`
}

// CategoryResponse is the assembled payload answering one catalog request.
// Tree, Flat and the lookup maps share the same underlying Category values —
// no deep copies are made.
type CategoryResponse struct {
	Tree     []*CategoryTreeNode  `json:"tree"`
	Flat     []Category           `json:"flat"`
	ByID     map[string]*Category `json:"by_id"`
	ByHandle map[string]*Category `json:"by_handle"`
	Total    int                  `json:"total"`
	MaxDepth int                  `json:"max_depth"`
}

// PathResolution is the outcome of resolving a multi-segment category path.
// A path can resolve (Category set, Breadcrumbs built) and still not be
// canonical: Valid is true only when the input segments match the category's
// own ancestor-handle chain verbatim.
type PathResolution struct {
	Category    *Category    `json:"category"`
	Breadcrumbs []Breadcrumb `json:"breadcrumbs"`
	Valid       bool         `json:"valid"`
}
