package orders

import (
	"context"
	"fmt"

	"github.com/matthieukhl/orderdesk/internal/models"
	"github.com/matthieukhl/orderdesk/internal/store"
)

// Service is the order ledger: it lists a client's orders and places new ones
// with sequential identifiers.
type Service struct {
	store     store.OrderStore
	atomicIDs bool
}

// New creates an order ledger backed by the given store. With atomicIDs set,
// identifiers come from the store's atomic counter instead of the
// read-max-then-insert sequence.
func New(st store.OrderStore, atomicIDs bool) *Service {
	return &Service{store: st, atomicIDs: atomicIDs}
}

// ListForClient returns all orders recorded for the email, in store-native
// order. The result is never nil.
func (s *Service) ListForClient(ctx context.Context, email string) ([]models.Order, error) {
	orders, err := s.store.FindOrdersByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	if orders == nil {
		orders = []models.Order{}
	}
	return orders, nil
}

// NextOrderID computes the identifier for the next order. The default path
// reads the current maximum and adds one; the read and the later insert are
// separate store calls, so two concurrent placements can observe the same
// maximum and produce a duplicate id. Enable orders.atomic_ids to use the
// store counter instead.
func (s *Service) NextOrderID(ctx context.Context) (int64, error) {
	if s.atomicIDs {
		return s.store.NextOrderSeq(ctx)
	}

	max, err := s.store.MaxOrderID(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to find max order id: %w", err)
	}
	return max + 1, nil
}

// Place records a new order for the email in the initial processing status.
// The caller is responsible for checking that the client exists.
func (s *Service) Place(ctx context.Context, email string, total float64) (models.Order, error) {
	id, err := s.NextOrderID(ctx)
	if err != nil {
		return models.Order{}, err
	}

	order := models.Order{
		OrderID: id,
		Email:   email,
		Status:  models.StatusProcessing,
		Total:   total,
	}
	created, err := s.store.InsertOrder(ctx, order)
	if err != nil {
		return models.Order{}, fmt.Errorf("failed to place order: %w", err)
	}
	return created, nil
}
