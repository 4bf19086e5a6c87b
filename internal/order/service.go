package order

import (
	"context"

	"github.com/biblion/gamevault/internal/catalog"
)

const defaultPaymentMethod = "card"

// Service is the checkout engine plus the order-history reader.
type Service struct {
	repo    Repository
	catalog catalog.Provider
}

func NewService(repo Repository, cat catalog.Provider) *Service {
	return &Service{repo: repo, catalog: cat}
}

// PlaceOrder converts the user's cart into an order. idemKey may be empty;
// when set, retries with the same key return the already-created order.
func (s *Service) PlaceOrder(ctx context.Context, userID, paymentMethod, idemKey string) (*WithItems, error) {
	if paymentMethod == "" {
		paymentMethod = defaultPaymentMethod
	}
	o, items, err := s.repo.CreateFromCart(ctx, userID, paymentMethod, idemKey, s.catalog.Title)
	if err != nil {
		return nil, err
	}
	return &WithItems{Order: *o, Items: items}, nil
}

// ListOrders returns the user's orders newest-first, each with its items.
func (s *Service) ListOrders(ctx context.Context, userID string) ([]WithItems, error) {
	orders, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]WithItems, 0, len(orders))
	for _, o := range orders {
		items, err := s.repo.GetItems(ctx, o.ID)
		if err != nil {
			return nil, err
		}
		if items == nil {
			items = []Item{}
		}
		out = append(out, WithItems{Order: o, Items: items})
	}
	return out, nil
}
