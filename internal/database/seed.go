package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"bijoucatalog/internal/store"
)

// Seed populates the database with a development catalog: a small jewelry
// category taxonomy, a few brands, and sample storefront content. It is a
// no-op when categories already exist.
func Seed(db *sql.DB) error {
	ctx := context.Background()
	categories := store.NewCategoryStore(db)

	count, err := categories.CountCategories(ctx)
	if err != nil {
		return fmt.Errorf("seed check categories: %w", err)
	}
	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	// Root: bijoux, with the storefront's main collections below it.
	bijoux, err := categories.CreateCategory(ctx, "Bijoux", "bijoux", uuid.Nil, 0, 120)
	if err != nil {
		return err
	}

	colliers, err := categories.CreateCategory(ctx, "Colliers", "colliers", bijoux, 0, 34)
	if err != nil {
		return err
	}
	if _, err := categories.CreateCategory(ctx, "Bagues", "bagues", bijoux, 1, 28); err != nil {
		return err
	}
	if _, err := categories.CreateCategory(ctx, "Bracelets", "bracelets", bijoux, 2, 22); err != nil {
		return err
	}
	// Handle generated from the name ("Boucles d'Oreilles" → boucles-doreilles).
	if _, err := categories.CreateCategory(ctx, "Boucles d'Oreilles", "", bijoux, 3, 26); err != nil {
		return err
	}

	if _, err := categories.CreateCategory(ctx, "Pendentifs", "pendentifs", colliers, 0, 18); err != nil {
		return err
	}
	if _, err := categories.CreateCategory(ctx, "Chaînes", "chaines", colliers, 1, 16); err != nil {
		return err
	}

	// Second root for the watch line.
	if _, err := categories.CreateCategory(ctx, "Montres", "montres", uuid.Nil, 1, 10); err != nil {
		return err
	}

	brands := store.NewBrandStore(db)
	for _, b := range []struct {
		name     string
		count    int
		featured bool
	}{
		{"Maison Lumière", 42, true},
		{"Atelier Doré", 31, true},
		{"Perle & Co", 24, false},
		{"Orfèvre Moderne", 17, false},
	} {
		if _, err := brands.CreateBrand(ctx, b.name, "", "", b.count, b.featured); err != nil {
			return err
		}
	}

	if _, err := db.ExecContext(ctx, `
		INSERT INTO announcements (id, message, rank)
		VALUES ($1, $2, 0)
	`, uuid.New(), "**Livraison offerte** dès 80€ d'achat"); err != nil {
		return fmt.Errorf("seed announcement: %w", err)
	}

	if _, err := db.ExecContext(ctx, `
		INSERT INTO hero_banners (id, title, subtitle, image_url, link_url, rank)
		VALUES ($1, $2, $3, $4, $5, 0)
	`, uuid.New(), "Nouvelle collection", "Les colliers de la saison",
		"https://cdn.example.com/banners/colliers.webp", "/categorie/bijoux/colliers"); err != nil {
		return fmt.Errorf("seed banner: %w", err)
	}

	slog.Info("database seeded with development catalog")
	return nil
}
