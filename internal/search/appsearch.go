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

// appSearchPageSize is the maximum page size App Search allows.
const appSearchPageSize = 1000

// appSearchProvider implements Provider against an Elastic App
// Search-compatible engine (POST /api/as/v1/engines/{engine}/search).
type appSearchProvider struct {
	config ProviderConfig
	client *http.Client
}

// newAppSearch creates an App Search provider.
func newAppSearch(cfg ProviderConfig) *appSearchProvider {
	return &appSearchProvider{
		config: cfg,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (p *appSearchProvider) Name() string { return "appsearch" }

type appSearchRequest struct {
	Query string        `json:"query"`
	Page  appSearchPage `json:"page"`
}

type appSearchPage struct {
	Size    int `json:"size"`
	Current int `json:"current"`
}

type appSearchResponse struct {
	Results []appSearchHit `json:"results"`
}

// FetchCategories runs an empty-query search over the category engine and
// normalizes every result out of its {raw: value} wrappers.
func (p *appSearchProvider) FetchCategories(ctx context.Context) ([]models.Category, error) {
	payload, err := json.Marshal(appSearchRequest{
		Query: "",
		Page:  appSearchPage{Size: appSearchPageSize, Current: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("appsearch marshal: %w", err)
	}

	url := fmt.Sprintf("%s/api/as/v1/engines/%s/search", p.config.Host, p.config.Index)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("appsearch request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.config.APIKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("appsearch http: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("appsearch read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("appsearch error (status %d): %s", resp.StatusCode, string(body))
	}

	var result appSearchResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("appsearch unmarshal: %w", err)
	}

	cats := make([]models.Category, 0, len(result.Results))
	for _, hit := range result.Results {
		cats = append(cats, normalizeAppSearch(hit))
	}
	return cats, nil
}
