// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Brand is one entry of the storefront brand directory.
type Brand struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Handle       string    `json:"handle"`
	LogoURL      string    `json:"logo_url"`
	ProductCount int       `json:"product_count"`
	Featured     bool      `json:"featured"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
