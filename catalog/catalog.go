package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"

	"storefront-service/models"
	"storefront-service/store"
)

// ProductCollection is the store collection holding product documents.
const ProductCollection = "product"

// Service reads the product catalog and seeds it with demo data on first use.
type Service struct {
	store  store.Store
	logger *slog.Logger
}

func NewService(st store.Store, logger *slog.Logger) *Service {
	return &Service{store: st, logger: logger}
}

// EnsureSeedProducts inserts the demo catalog when the product collection is
// observed empty. Failures are logged and swallowed; listing must keep working
// even when seeding cannot. Concurrent first calls can double-seed, which is
// accepted at this scale.
func (s *Service) EnsureSeedProducts(ctx context.Context) {
	count, err := s.store.CountDocuments(ctx, ProductCollection)
	if err != nil {
		s.logger.Warn("could not count products, skipping seed", "error", err)
		return
	}
	if count > 0 {
		return
	}
	for _, p := range SeedProducts {
		if err := s.store.CreateDocument(ctx, ProductCollection, p); err != nil {
			s.logger.Warn("failed to seed product", "slug", p.Slug, "error", err)
		}
	}
	s.logger.Info("seeded demo catalog", "products", len(SeedProducts))
}

// ListProducts returns every product, seeding first when the collection is empty.
func (s *Service) ListProducts(ctx context.Context) ([]models.Product, error) {
	s.EnsureSeedProducts(ctx)

	raws, err := s.store.GetDocuments(ctx, ProductCollection)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	products := make([]models.Product, 0, len(raws))
	for _, raw := range raws {
		var p models.Product
		if err := bson.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("failed to decode product: %w", err)
		}
		products = append(products, p)
	}
	return products, nil
}

// GetProduct looks a product up by its slug. Returns store.ErrNotFound when
// the slug does not resolve.
func (s *Service) GetProduct(ctx context.Context, slug string) (*models.Product, error) {
	var p models.Product
	if err := s.store.FindOne(ctx, ProductCollection, bson.M{"slug": slug}, &p); err != nil {
		return nil, err
	}
	return &p, nil
}
