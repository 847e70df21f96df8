package catalog

import (
	"bytes"
	"encoding/json"
	"testing"

	"bijoucatalog/internal/models"
)

func TestBuildResponse(t *testing.T) {
	resp := BuildResponse(jewelryFixture())

	if resp.Total != 6 {
		t.Errorf("total = %d, want 6", resp.Total)
	}
	if resp.MaxDepth != 2 {
		t.Errorf("max depth = %d, want 2", resp.MaxDepth)
	}
	if len(resp.Tree) != 2 {
		t.Errorf("roots = %d, want 2", len(resp.Tree))
	}

	// Flat is sorted by depth first, rank within a depth.
	for i := 1; i < len(resp.Flat); i++ {
		prev, cur := resp.Flat[i-1], resp.Flat[i]
		if cur.Depth < prev.Depth {
			t.Fatalf("flat[%d] depth %d after depth %d", i, cur.Depth, prev.Depth)
		}
		if cur.Depth == prev.Depth && cur.Rank < prev.Rank {
			t.Fatalf("flat[%d] rank %d after rank %d at depth %d", i, cur.Rank, prev.Rank, cur.Depth)
		}
	}

	// Both maps cover every flat entry.
	for i := range resp.Flat {
		if resp.ByID[resp.Flat[i].ID] == nil {
			t.Errorf("category %s missing from id map", resp.Flat[i].ID)
		}
		if resp.ByHandle[resp.Flat[i].Handle] == nil {
			t.Errorf("handle %s missing from handle map", resp.Flat[i].Handle)
		}
	}
}

func TestBuildResponse_SharedBacking(t *testing.T) {
	// Tree nodes and both maps alias the flat slice, not copies of it.
	resp := BuildResponse(jewelryFixture())

	resp.ByID["2"].Name = "Colliers & Sautoirs"

	if resp.ByHandle["colliers"].Name != "Colliers & Sautoirs" {
		t.Error("handle map does not share backing with id map")
	}

	var found *models.CategoryTreeNode
	for _, root := range resp.Tree {
		for _, child := range root.Children {
			if child.ID == "2" {
				found = child
			}
		}
	}
	if found == nil {
		t.Fatal("colliers not found in tree")
	}
	if found.Name != "Colliers & Sautoirs" {
		t.Error("tree node does not share backing with maps")
	}
}

func TestBuildResponse_FiltersInactive(t *testing.T) {
	cats := jewelryFixture()
	cats = append(cats, cat("7", "archive", "1", 9, withInactive()))

	resp := BuildResponse(cats)

	if resp.Total != 6 {
		t.Errorf("total = %d, want 6 after filtering", resp.Total)
	}
	if resp.ByID["7"] != nil {
		t.Error("inactive category present in id map")
	}
	for _, id := range flatten(resp.Tree) {
		if id == "7" {
			t.Error("inactive category present in tree")
		}
	}
}

func TestBuildResponse_Empty(t *testing.T) {
	resp := BuildResponse(nil)

	if resp.Total != 0 {
		t.Errorf("total = %d, want 0", resp.Total)
	}
	if resp.MaxDepth != 0 {
		t.Errorf("max depth = %d, want 0", resp.MaxDepth)
	}
	if resp.Tree == nil || len(resp.Tree) != 0 {
		t.Errorf("tree = %v, want empty non-nil forest", resp.Tree)
	}
	if resp.Flat == nil || len(resp.Flat) != 0 {
		t.Errorf("flat = %v, want empty non-nil slice", resp.Flat)
	}
}

func TestBuildResponse_Deterministic(t *testing.T) {
	// Building twice from the same input yields byte-identical payloads.
	first, err := json.Marshal(BuildResponse(jewelryFixture()))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	second, err := json.Marshal(BuildResponse(jewelryFixture()))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Error("identical input produced different payloads")
	}
}

func TestBuildResponse_HandleCollisionLastWins(t *testing.T) {
	cats := []models.Category{
		cat("1", "bijoux", "", 0),
		cat("2", "colliers", "1", 0, withAncestors([]string{"1"}, []string{"bijoux"})),
		cat("3", "colliers", "1", 1, withAncestors([]string{"1"}, []string{"bijoux"})),
	}

	resp := BuildResponse(cats)

	if resp.Total != 3 {
		t.Errorf("total = %d, want 3 (collision must not drop entries)", resp.Total)
	}
	if got := resp.ByHandle["colliers"].ID; got != "3" {
		t.Errorf("handle map holds %s, want last-written 3", got)
	}
}
