package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/v2/bson"

	"helioskin-backend/database"
	"helioskin-backend/models"
	"helioskin-backend/utils"
)

// CatalogService serves the product catalog, seeding it on first use.
type CatalogService struct {
	store database.Store
}

func NewCatalogService(store database.Store) *CatalogService {
	return &CatalogService{store: store}
}

// ListProducts returns the full catalog. An empty product collection is seeded
// first; the seed writes are slug-keyed upserts, so concurrent first requests
// cannot duplicate products.
func (s *CatalogService) ListProducts(ctx context.Context) ([]models.Product, error) {
	if !s.store.Connected() {
		return nil, database.ErrStoreUnavailable
	}

	count, err := s.store.CountDocuments(ctx, database.ProductCollection, bson.M{})
	if err != nil {
		return nil, err
	}
	if count == 0 {
		if err := s.seed(ctx); err != nil {
			return nil, err
		}
	}

	docs, err := s.store.GetDocuments(ctx, database.ProductCollection, bson.M{})
	if err != nil {
		return nil, err
	}

	products := make([]models.Product, 0, len(docs))
	for _, d := range docs {
		products = append(products, models.ProductFromDocument(d))
	}
	return products, nil
}

// GetProduct looks a product up by slug. It never seeds.
func (s *CatalogService) GetProduct(ctx context.Context, slug string) (models.Product, error) {
	doc, err := s.store.FindOne(ctx, database.ProductCollection, bson.M{"slug": slug})
	if err != nil {
		return models.Product{}, err
	}
	return models.ProductFromDocument(doc), nil
}

func (s *CatalogService) seed(ctx context.Context) error {
	seeded := 0
	for _, p := range utils.SeedProducts() {
		inserted, err := s.store.UpsertDocument(ctx, database.ProductCollection, bson.M{"slug": p.Slug}, p)
		if err != nil {
			return fmt.Errorf("seed product %s: %w", p.Slug, err)
		}
		if inserted {
			seeded++
		}
	}
	log.Info().Int("products", seeded).Msg("seeded catalog")
	return nil
}
