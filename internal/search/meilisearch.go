// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"bijoucatalog/internal/models"
)

// meiliFetchLimit caps a single search request. The category catalog is a
// few hundred documents at most, so one page always covers it.
const meiliFetchLimit = 1000

// meilisearchProvider implements Provider against the Meilisearch search
// endpoint (POST /indexes/{uid}/search).
type meilisearchProvider struct {
	config ProviderConfig
	client *http.Client
}

// newMeilisearch creates a Meilisearch provider.
func newMeilisearch(cfg ProviderConfig) *meilisearchProvider {
	return &meilisearchProvider{
		config: cfg,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (p *meilisearchProvider) Name() string { return "meilisearch" }

type meiliRequest struct {
	Query string `json:"q"`
	Limit int    `json:"limit"`
}

type meiliResponse struct {
	Hits []meiliHit `json:"hits"`
}

// FetchCategories runs an empty-query search over the category index and
// normalizes every hit.
func (p *meilisearchProvider) FetchCategories(ctx context.Context) ([]models.Category, error) {
	payload, err := json.Marshal(meiliRequest{Query: "", Limit: meiliFetchLimit})
	if err != nil {
		return nil, fmt.Errorf("meilisearch marshal: %w", err)
	}

	url := fmt.Sprintf("%s/indexes/%s/search", p.config.Host, p.config.Index)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("meilisearch request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if p.config.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+p.config.APIKey)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("meilisearch http: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("meilisearch read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("meilisearch error (status %d): %s", resp.StatusCode, string(body))
	}

	var result meiliResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("meilisearch unmarshal: %w", err)
	}

	cats := make([]models.Category, 0, len(result.Hits))
	for _, hit := range result.Hits {
		cats = append(cats, normalizeMeili(hit))
	}
	return cats, nil
}
