// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Announcement is a storefront announcement bar message. Message holds the
// Markdown source; HTML is populated by the content service at read time and
// never stored.
type Announcement struct {
	ID       uuid.UUID  `json:"id"`
	Message  string     `json:"message"`
	HTML     string     `json:"html,omitempty"`
	Rank     int        `json:"rank"`
	StartsAt *time.Time `json:"starts_at"`
	EndsAt   *time.Time `json:"ends_at"`
	IsActive bool       `json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// VisibleAt reports whether the announcement should be shown at the given
// instant: it must be active and inside its optional scheduling window.
func (a *Announcement) VisibleAt(now time.Time) bool {
	if !a.IsActive {
		return false
	}
	if a.StartsAt != nil && now.Before(*a.StartsAt) {
		return false
	}
	if a.EndsAt != nil && now.After(*a.EndsAt) {
		return false
	}
	return true
}

// HeroBanner is a homepage hero slide.
type HeroBanner struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	Subtitle string    `json:"subtitle"`
	ImageURL string    `json:"image_url"`
	LinkURL  string    `json:"link_url"`
	Rank     int       `json:"rank"`
	IsActive bool      `json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
