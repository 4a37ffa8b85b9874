package services

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"

	"helioskin-backend/database"
	"helioskin-backend/dto"
	"helioskin-backend/models"
)

// InvalidProductError means an order line referenced a slug with no matching
// catalog product.
type InvalidProductError struct {
	Slug string
}

func (e *InvalidProductError) Error() string {
	return fmt.Sprintf("invalid product: %s", e.Slug)
}

// OrderService validates and persists customer orders.
type OrderService struct {
	store database.Store
}

func NewOrderService(store database.Store) *OrderService {
	return &OrderService{store: store}
}

// CreateOrder checks every line item against the catalog, failing fast on the
// first unknown slug, then persists the order as given. Item prices and the
// total are order-time snapshots supplied by the client and are stored without
// recomputation.
func (s *OrderService) CreateOrder(ctx context.Context, order models.Order) (dto.OrderReceipt, error) {
	if !s.store.Connected() {
		return dto.OrderReceipt{}, database.ErrStoreUnavailable
	}

	for _, item := range order.Items {
		_, err := s.store.FindOne(ctx, database.ProductCollection, bson.M{"slug": item.Slug})
		if errors.Is(err, database.ErrNotFound) {
			return dto.OrderReceipt{}, &InvalidProductError{Slug: item.Slug}
		}
		if err != nil {
			return dto.OrderReceipt{}, err
		}
	}

	if order.Status == "" {
		order.Status = models.OrderStatusPending
	}

	id, err := s.store.CreateDocument(ctx, database.OrderCollection, order)
	if err != nil {
		return dto.OrderReceipt{}, err
	}
	return dto.OrderReceipt{OrderID: id, Status: models.OrderStatusReceived}, nil
}
