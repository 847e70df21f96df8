package catalog

import (
	"strings"
	"testing"
)

func TestResolvePath(t *testing.T) {
	resp := BuildResponse(jewelryFixture())

	tests := []struct {
		name     string
		segments []string
		wantLen  int // 0 means resolution must fail
	}{
		{name: "single root", segments: []string{"bijoux"}, wantLen: 1},
		{name: "two levels", segments: []string{"bijoux", "colliers"}, wantLen: 2},
		{name: "three levels", segments: []string{"bijoux", "colliers", "pendentifs"}, wantLen: 3},
		{name: "direct parent link", segments: []string{"colliers", "pendentifs"}, wantLen: 2},
		{name: "unknown handle", segments: []string{"inconnu"}, wantLen: 0},
		{name: "unknown middle segment", segments: []string{"bijoux", "inconnu", "pendentifs"}, wantLen: 0},
		{name: "unrelated roots", segments: []string{"bijoux", "montres"}, wantLen: 0},
		{name: "reversed order", segments: []string{"colliers", "bijoux"}, wantLen: 0},
		{name: "empty path", segments: nil, wantLen: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolvePath(tt.segments, resp.ByHandle)
			if tt.wantLen == 0 {
				if got != nil {
					t.Fatalf("expected nil, got %d breadcrumbs", len(got))
				}
				return
			}
			if len(got) != tt.wantLen {
				t.Fatalf("got %d breadcrumbs, want %d", len(got), tt.wantLen)
			}
			if got[len(got)-1].Handle != tt.segments[len(tt.segments)-1] {
				t.Errorf("last breadcrumb handle = %s, want %s",
					got[len(got)-1].Handle, tt.segments[len(tt.segments)-1])
			}
		})
	}
}

func TestResolvePath_BreadcrumbHrefs(t *testing.T) {
	resp := BuildResponse(jewelryFixture())

	crumbs := ResolvePath([]string{"bijoux", "colliers", "pendentifs"}, resp.ByHandle)
	if len(crumbs) != 3 {
		t.Fatalf("got %d breadcrumbs, want 3", len(crumbs))
	}

	wantHrefs := []string{
		"/categorie/bijoux",
		"/categorie/bijoux/colliers",
		"/categorie/bijoux/colliers/pendentifs",
	}
	for i, crumb := range crumbs {
		if crumb.Href != wantHrefs[i] {
			t.Errorf("breadcrumb[%d].Href = %s, want %s", i, crumb.Href, wantHrefs[i])
		}
		// Each href strictly extends the previous one.
		if i > 0 && !strings.HasPrefix(crumb.Href, crumbs[i-1].Href+"/") {
			t.Errorf("breadcrumb[%d].Href %s does not extend %s", i, crumb.Href, crumbs[i-1].Href)
		}
	}
}

func TestResolveCategoryFromSlug(t *testing.T) {
	resp := BuildResponse(jewelryFixture())

	tests := []struct {
		name      string
		segments  []string
		wantID    string // empty means nil resolution
		wantValid bool
	}{
		{
			name:      "canonical full path",
			segments:  []string{"bijoux", "colliers", "pendentifs"},
			wantID:    "4",
			wantValid: true,
		},
		{
			name:      "canonical root",
			segments:  []string{"bijoux"},
			wantID:    "1",
			wantValid: true,
		},
		{
			name: "resolvable but not canonical",
			// colliers/pendentifs is a consistent chain, yet the canonical
			// path to pendentifs is bijoux/colliers/pendentifs.
			segments:  []string{"colliers", "pendentifs"},
			wantID:    "4",
			wantValid: false,
		},
		{
			name:     "structurally invalid",
			segments: []string{"bijoux", "montres"},
		},
		{
			name:     "unknown handle",
			segments: []string{"tiares"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveCategoryFromSlug(tt.segments, resp)
			if tt.wantID == "" {
				if got != nil {
					t.Fatalf("expected nil resolution, got category %s", got.Category.ID)
				}
				return
			}
			if got == nil {
				t.Fatal("expected resolution, got nil")
			}
			if got.Category.ID != tt.wantID {
				t.Errorf("resolved category = %s, want %s", got.Category.ID, tt.wantID)
			}
			if got.Valid != tt.wantValid {
				t.Errorf("valid = %v, want %v", got.Valid, tt.wantValid)
			}
			if len(got.Breadcrumbs) != len(tt.segments) {
				t.Errorf("got %d breadcrumbs, want %d", len(got.Breadcrumbs), len(tt.segments))
			}
		})
	}
}

func TestResolveCategoryFromSlug_RoundTrip(t *testing.T) {
	// For every category, its own canonical path must resolve back to it.
	resp := BuildResponse(jewelryFixture())

	for _, c := range resp.Flat {
		segments := append(append([]string{}, c.AncestorHandles...), c.Handle)
		got := ResolveCategoryFromSlug(segments, resp)
		if got == nil {
			t.Fatalf("canonical path %v did not resolve", segments)
		}
		if got.Category.ID != c.ID {
			t.Errorf("path %v resolved to %s, want %s", segments, got.Category.ID, c.ID)
		}
		if !got.Valid {
			t.Errorf("canonical path %v flagged as non-canonical", segments)
		}
	}
}
