// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// normalize.go maps the raw hit shape of each search backend onto the
// internal Category. One decoder type per backend, matched explicitly —
// Meilisearch returns flat JSON documents while App Search wraps every field
// as {"raw": value}. Normalization is lenient by policy: missing arrays
// become empty, a missing is_active defaults to true, missing numbers to
// zero. Malformed fields degrade to their defaults instead of failing the
// batch.
package search

import "bijoucatalog/internal/models"

// meiliHit is one document as returned by the Meilisearch search endpoint.
type meiliHit struct {
	ID                string   `json:"id"`
	Handle            string   `json:"handle"`
	Name              string   `json:"name"`
	ParentCategoryID  string   `json:"parent_category_id"`
	ParentCategoryIDs []string `json:"parent_category_ids"`
	AncestorHandles   []string `json:"ancestor_handles"`
	AncestorNames     []string `json:"ancestor_names"`
	Depth             int      `json:"depth"`
	Rank              int      `json:"rank"`
	IsActive          *bool    `json:"is_active"`
	ProductCount      int      `json:"product_count"`
}

// normalizeMeili converts a Meilisearch hit, applying defaults.
func normalizeMeili(h meiliHit) models.Category {
	return models.Category{
		ID:                h.ID,
		Handle:            h.Handle,
		Name:              h.Name,
		ParentCategoryID:  h.ParentCategoryID,
		ParentCategoryIDs: orEmpty(h.ParentCategoryIDs),
		AncestorHandles:   orEmpty(h.AncestorHandles),
		AncestorNames:     orEmpty(h.AncestorNames),
		Depth:             h.Depth,
		Rank:              h.Rank,
		IsActive:          h.IsActive == nil || *h.IsActive,
		ProductCount:      h.ProductCount,
	}
}

// App Search wraps every field value in an object keyed "raw". Numeric
// fields arrive as JSON numbers (decoded to float64), booleans sometimes as
// the strings "true"/"false" depending on the field schema.

type rawString struct {
	Raw string `json:"raw"`
}

type rawStrings struct {
	Raw []string `json:"raw"`
}

type rawNumber struct {
	Raw float64 `json:"raw"`
}

// appSearchHit is one result from the App Search search endpoint.
type appSearchHit struct {
	ID                rawString  `json:"id"`
	Handle            rawString  `json:"handle"`
	Name              rawString  `json:"name"`
	ParentCategoryID  rawString  `json:"parent_category_id"`
	ParentCategoryIDs rawStrings `json:"parent_category_ids"`
	AncestorHandles   rawStrings `json:"ancestor_handles"`
	AncestorNames     rawStrings `json:"ancestor_names"`
	Depth             rawNumber  `json:"depth"`
	Rank              rawNumber  `json:"rank"`
	IsActive          *rawString `json:"is_active"`
	ProductCount      rawNumber  `json:"product_count"`
}

// normalizeAppSearch converts an App Search hit, applying defaults.
func normalizeAppSearch(h appSearchHit) models.Category {
	return models.Category{
		ID:                h.ID.Raw,
		Handle:            h.Handle.Raw,
		Name:              h.Name.Raw,
		ParentCategoryID:  h.ParentCategoryID.Raw,
		ParentCategoryIDs: orEmpty(h.ParentCategoryIDs.Raw),
		AncestorHandles:   orEmpty(h.AncestorHandles.Raw),
		AncestorNames:     orEmpty(h.AncestorNames.Raw),
		Depth:             int(h.Depth.Raw),
		Rank:              int(h.Rank.Raw),
		IsActive:          h.IsActive == nil || h.IsActive.Raw != "false",
		ProductCount:      int(h.ProductCount.Raw),
	}
}

// orEmpty replaces a nil slice with an empty one so downstream consumers
// never see null arrays.
func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
