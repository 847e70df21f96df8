package search

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bijoucatalog/internal/models"
)

type fakeProvider struct {
	name string
	cats []models.Category
	err  error
}

func (f *fakeProvider) FetchCategories(ctx context.Context) ([]models.Category, error) {
	return f.cats, f.err
}

func (f *fakeProvider) Name() string { return f.name }

func TestRegistry_SkipsUnconfiguredBackends(t *testing.T) {
	r := NewRegistry("meilisearch", map[string]ProviderConfig{
		"meilisearch": {Host: "http://meili.local", Index: "categories"},
		"appsearch":   {}, // no host, skipped
	})

	if _, err := r.Active(); err != nil {
		t.Fatalf("active backend missing: %v", err)
	}
	if err := r.SetActive("appsearch"); err == nil {
		t.Error("expected error switching to unconfigured backend")
	}
}

func TestRegistry_ActiveNotConfigured(t *testing.T) {
	r := NewRegistry("meilisearch", nil)

	if _, err := r.Active(); err == nil {
		t.Fatal("expected error for unconfigured active backend")
	}
	if _, err := r.FetchCategories(context.Background()); err == nil {
		t.Fatal("expected fetch to fail without an active backend")
	}
}

func TestRegistry_RegisterAndSwitch(t *testing.T) {
	r := NewRegistry("postgres", nil)
	r.Register("postgres", &fakeProvider{
		name: "postgres",
		cats: []models.Category{{ID: "1", Handle: "bijoux", IsActive: true}},
	})

	cats, err := r.FetchCategories(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(cats) != 1 || cats[0].Handle != "bijoux" {
		t.Errorf("unexpected categories: %+v", cats)
	}

	r.Register("meilisearch", &fakeProvider{name: "meilisearch"})
	if err := r.SetActive("meilisearch"); err != nil {
		t.Fatalf("switch: %v", err)
	}
	if got := r.ActiveName(); got != "meilisearch" {
		t.Errorf("active = %s, want meilisearch", got)
	}
	if got := len(r.Available()); got != 2 {
		t.Errorf("available = %d backends, want 2", got)
	}
}

func TestMeilisearchProvider_FetchCategories(t *testing.T) {
	var gotPath, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")

		var req meiliRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.Limit != meiliFetchLimit {
			t.Errorf("limit = %d, want %d", req.Limit, meiliFetchLimit)
		}

		json.NewEncoder(w).Encode(meiliResponse{Hits: []meiliHit{
			{ID: "1", Handle: "bijoux", Name: "Bijoux"},
			{ID: "2", Handle: "colliers", Name: "Colliers", ParentCategoryID: "1", Depth: 1},
		}})
	}))
	defer srv.Close()

	p := newMeilisearch(ProviderConfig{Host: srv.URL, APIKey: "secret", Index: "categories"})

	cats, err := p.FetchCategories(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}

	if gotPath != "/indexes/categories/search" {
		t.Errorf("path = %s", gotPath)
	}
	if gotAuth != "Bearer secret" {
		t.Errorf("authorization = %q", gotAuth)
	}
	if len(cats) != 2 {
		t.Fatalf("got %d categories, want 2", len(cats))
	}
	if !cats[0].IsActive {
		t.Error("hit without is_active must normalize to active")
	}
	if cats[1].ParentCategoryID != "1" {
		t.Errorf("parent = %s, want 1", cats[1].ParentCategoryID)
	}
}

func TestMeilisearchProvider_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"index not found"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	p := newMeilisearch(ProviderConfig{Host: srv.URL, Index: "missing"})
	if _, err := p.FetchCategories(context.Background()); err == nil {
		t.Fatal("expected error for non-200 response")
	}
}

func TestAppSearchProvider_FetchCategories(t *testing.T) {
	var gotPath, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")

		w.Write([]byte(`{"results":[
			{"id":{"raw":"1"},"handle":{"raw":"bijoux"},"name":{"raw":"Bijoux"}},
			{"id":{"raw":"2"},"handle":{"raw":"colliers"},"parent_category_id":{"raw":"1"},
			 "depth":{"raw":1},"is_active":{"raw":"false"}}
		]}`))
	}))
	defer srv.Close()

	p := newAppSearch(ProviderConfig{Host: srv.URL, APIKey: "search-key", Index: "categories"})

	cats, err := p.FetchCategories(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}

	if gotPath != "/api/as/v1/engines/categories/search" {
		t.Errorf("path = %s", gotPath)
	}
	if gotAuth != "Bearer search-key" {
		t.Errorf("authorization = %q", gotAuth)
	}
	if len(cats) != 2 {
		t.Fatalf("got %d categories, want 2", len(cats))
	}
	if !cats[0].IsActive || cats[1].IsActive {
		t.Errorf("is_active normalization wrong: %v, %v", cats[0].IsActive, cats[1].IsActive)
	}
	if cats[1].Depth != 1 {
		t.Errorf("depth = %d, want 1", cats[1].Depth)
	}
}

func TestAppSearchProvider_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"errors":["engine not found"]}`, http.StatusNotFound)
	}))
	defer srv.Close()

	p := newAppSearch(ProviderConfig{Host: srv.URL, Index: "missing"})
	if _, err := p.FetchCategories(context.Background()); err == nil {
		t.Fatal("expected error for non-200 response")
	}
}
