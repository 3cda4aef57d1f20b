package memory

import (
	"context"
	"sync"

	"github.com/matthieukhl/orderdesk/internal/models"
	"github.com/matthieukhl/orderdesk/internal/store"
)

// Store is an in-memory implementation of the persistence gateway. It is safe
// for concurrent use and is primarily intended for tests and local development.
type Store struct {
	mu       sync.RWMutex
	clients  map[string]models.Client
	orders   []models.Order
	orderSeq int64
}

var _ store.Store = (*Store)(nil)

// New creates an empty store.
func New() *Store {
	return &Store{
		clients: make(map[string]models.Client),
	}
}

func (s *Store) FindClientByEmail(_ context.Context, email string) (models.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	client, ok := s.clients[email]
	if !ok {
		return models.Client{}, store.ErrNotFound
	}
	return client, nil
}

func (s *Store) InsertClient(_ context.Context, client models.Client) (models.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.clients[client.Email]; exists {
		return models.Client{}, store.ErrDuplicateEmail
	}
	s.clients[client.Email] = client
	return client, nil
}

func (s *Store) FindOrdersByEmail(_ context.Context, email string) ([]models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []models.Order
	for _, order := range s.orders {
		if order.Email == email {
			result = append(result, order)
		}
	}
	return result, nil
}

func (s *Store) MaxOrderID(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var max int64
	for _, order := range s.orders {
		if order.OrderID > max {
			max = order.OrderID
		}
	}
	return max, nil
}

func (s *Store) NextOrderSeq(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orderSeq++
	return s.orderSeq, nil
}

func (s *Store) InsertOrder(_ context.Context, order models.Order) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders = append(s.orders, order)
	return order, nil
}

// Ping always succeeds for the in-memory store.
func (s *Store) Ping(_ context.Context) error {
	return nil
}

// Close is a no-op for the in-memory store.
func (s *Store) Close(_ context.Context) error {
	return nil
}
