package clients

import (
	"context"
	"errors"
	"fmt"

	"github.com/matthieukhl/orderdesk/internal/models"
	"github.com/matthieukhl/orderdesk/internal/store"
)

// ErrAlreadyRegistered is returned by Register when the email is taken.
var ErrAlreadyRegistered = errors.New("client already registered")

// Service resolves and registers clients against the persistence gateway.
type Service struct {
	store store.ClientStore
}

// New creates a client directory service backed by the given store.
func New(st store.ClientStore) *Service {
	return &Service{store: st}
}

// LookupOrProvision finds a client by email, creating one on first contact.
// The returned bool reports whether the client was newly created. Absence is
// a handled branch here, not an error.
func (s *Service) LookupOrProvision(ctx context.Context, email string) (models.Client, bool, error) {
	client, err := s.store.FindClientByEmail(ctx, email)
	if err == nil {
		return client, false, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return models.Client{}, false, fmt.Errorf("failed to look up client: %w", err)
	}

	client = models.Client{
		Email: email,
		Name:  models.ProvisionedName,
		IsNew: true,
	}
	created, err := s.store.InsertClient(ctx, client)
	if err != nil {
		return models.Client{}, false, fmt.Errorf("failed to provision client: %w", err)
	}
	return created, true, nil
}

// Lookup finds a client by email. Returns store.ErrNotFound when absent;
// callers translate that into a not-found response.
func (s *Service) Lookup(ctx context.Context, email string) (models.Client, error) {
	return s.store.FindClientByEmail(ctx, email)
}

// Register creates a new client with the given name. The existence check runs
// before the insert so a taken email yields ErrAlreadyRegistered rather than
// the store's less specific uniqueness failure.
func (s *Service) Register(ctx context.Context, email, name string) (models.Client, error) {
	_, err := s.store.FindClientByEmail(ctx, email)
	if err == nil {
		return models.Client{}, ErrAlreadyRegistered
	}
	if !errors.Is(err, store.ErrNotFound) {
		return models.Client{}, fmt.Errorf("failed to look up client: %w", err)
	}

	client := models.Client{
		Email: email,
		Name:  name,
		IsNew: false,
	}
	created, err := s.store.InsertClient(ctx, client)
	if errors.Is(err, store.ErrDuplicateEmail) {
		return models.Client{}, ErrAlreadyRegistered
	}
	if err != nil {
		return models.Client{}, fmt.Errorf("failed to register client: %w", err)
	}
	return created, nil
}
