package store

import (
	"context"
	"errors"

	"github.com/matthieukhl/orderdesk/internal/models"
)

var (
	// ErrNotFound is returned when no record matches the lookup.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateEmail is returned when an insert hits the unique client
	// email constraint.
	ErrDuplicateEmail = errors.New("email already exists")
)

// ClientStore persists client records.
type ClientStore interface {
	FindClientByEmail(ctx context.Context, email string) (models.Client, error)
	InsertClient(ctx context.Context, client models.Client) (models.Client, error)
}

// OrderStore persists order records.
type OrderStore interface {
	FindOrdersByEmail(ctx context.Context, email string) ([]models.Order, error)
	// MaxOrderID returns the highest order_id in the collection, or 0 when
	// no orders exist.
	MaxOrderID(ctx context.Context) (int64, error)
	// NextOrderSeq atomically increments and returns the store-native order
	// id counter. Only used when atomic id assignment is enabled.
	NextOrderSeq(ctx context.Context) (int64, error)
	InsertOrder(ctx context.Context, order models.Order) (models.Order, error)
}

// Store is the full persistence gateway: both record collections plus the
// connection lifecycle, opened once at startup and shared by all requests.
type Store interface {
	ClientStore
	OrderStore
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}
