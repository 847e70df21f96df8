// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package catalog implements the category hierarchy: flat-to-tree
// construction, ancestor/descendant resolution, breadcrumb path resolution
// and the assembled per-request response. All functions are pure apart from
// warning logs; lookup tables are always passed in, never held as package
// state.
package catalog

import (
	"log/slog"
	"sort"

	"bijoucatalog/internal/models"
)

// BuildTree turns a flat category list into a forest ordered by rank at
// every level. Nodes point into the input slice, so callers must not reorder
// it afterwards.
//
// A category whose declared parent is absent from the input is promoted to a
// root rather than treated as an error — upstream indexes routinely deliver
// partial catalogs. Parent cycles are broken by promoting one member of each
// cycle to a root, with a warning, so every input category stays reachable.
//
// Children are sorted with a stable sort by ascending rank; categories with
// equal rank keep their input-relative order.
func BuildTree(cats []models.Category) []*models.CategoryTreeNode {
	nodes := make(map[string]*models.CategoryTreeNode, len(cats))
	for i := range cats {
		nodes[cats[i].ID] = &models.CategoryTreeNode{
			Category: &cats[i],
			Children: []*models.CategoryTreeNode{},
		}
	}

	roots := []*models.CategoryTreeNode{}
	for i := range cats {
		node := nodes[cats[i].ID]
		parentID := cats[i].ParentCategoryID

		if parentID == "" || parentID == cats[i].ID {
			if parentID == cats[i].ID {
				slog.Warn("category is its own parent, promoting to root", "id", cats[i].ID)
			}
			roots = append(roots, node)
			continue
		}

		parent, ok := nodes[parentID]
		if !ok {
			// Orphan promotion: the parent is not part of this catalog.
			roots = append(roots, node)
			continue
		}
		parent.Children = append(parent.Children, node)
	}

	roots = repairCycles(cats, nodes, roots)

	sortChildren(roots)
	for _, root := range roots {
		sortTree(root)
	}
	return roots
}

// repairCycles finds categories unreachable from any root (which can only
// happen when the parent chain loops) and promotes one member of each cycle
// to a root, making the whole cycle reachable again.
func repairCycles(cats []models.Category, nodes map[string]*models.CategoryTreeNode, roots []*models.CategoryTreeNode) []*models.CategoryTreeNode {
	reachable := make(map[string]bool, len(nodes))
	var mark func(n *models.CategoryTreeNode)
	mark = func(n *models.CategoryTreeNode) {
		if reachable[n.ID] {
			return
		}
		reachable[n.ID] = true
		for _, child := range n.Children {
			mark(child)
		}
	}
	for _, root := range roots {
		mark(root)
	}
	if len(reachable) == len(nodes) {
		return roots
	}

	for i := range cats {
		if reachable[cats[i].ID] {
			continue
		}
		// Walk up the parent chain until an id repeats; that id is on the
		// cycle itself (unreachable nodes always lead into a cycle).
		seen := map[string]bool{}
		cur := &cats[i]
		for !seen[cur.ID] {
			seen[cur.ID] = true
			cur = nodes[cur.ParentCategoryID].Category
		}

		node := nodes[cur.ID]
		parent := nodes[cur.ParentCategoryID]
		parent.Children = removeChild(parent.Children, node)
		roots = append(roots, node)
		slog.Warn("category parent cycle broken, promoting to root",
			"id", cur.ID, "parent_id", cur.ParentCategoryID)
		mark(node)
	}
	return roots
}

// removeChild returns children without the given node, preserving order.
func removeChild(children []*models.CategoryTreeNode, node *models.CategoryTreeNode) []*models.CategoryTreeNode {
	out := children[:0]
	for _, c := range children {
		if c != node {
			out = append(out, c)
		}
	}
	return out
}

// sortTree recursively orders every children slice by rank.
func sortTree(node *models.CategoryTreeNode) {
	sortChildren(node.Children)
	for _, child := range node.Children {
		sortTree(child)
	}
}

// sortChildren stable-sorts one sibling group by ascending rank.
func sortChildren(nodes []*models.CategoryTreeNode) {
	sort.SliceStable(nodes, func(i, j int) bool {
		return nodes[i].Rank < nodes[j].Rank
	})
}
