package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/matthieukhl/orderdesk/internal/config"
	"github.com/matthieukhl/orderdesk/internal/models"
	"github.com/matthieukhl/orderdesk/internal/store"
)

// Store is the MongoDB-backed persistence gateway.
type Store struct {
	client   *mongo.Client
	clients  *mongo.Collection
	orders   *mongo.Collection
	counters *mongo.Collection
}

var _ store.Store = (*Store)(nil)

// Connect opens the process-wide store connection using the provided config,
// verifies it with a ping and ensures the unique client email index.
func Connect(ctx context.Context, cfg *config.StoreConfig) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to store: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping store: %w", err)
	}

	db := client.Database(cfg.Database)
	s := &Store{
		client:   client,
		clients:  db.Collection("clients"),
		orders:   db.Collection("orders"),
		counters: db.Collection("counters"),
	}

	if err := s.ensureIndexes(ctx); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Store) ensureIndexes(ctx context.Context) error {
	_, err := s.clients.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to ensure client email index: %w", err)
	}
	return nil
}

// Ping performs a simple health check on the store connection.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

// Close disconnects from the store.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *Store) FindClientByEmail(ctx context.Context, email string) (models.Client, error) {
	var client models.Client
	err := s.clients.FindOne(ctx, bson.M{"email": email}).Decode(&client)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Client{}, store.ErrNotFound
	}
	if err != nil {
		return models.Client{}, fmt.Errorf("failed to find client: %w", err)
	}
	return client, nil
}

func (s *Store) InsertClient(ctx context.Context, client models.Client) (models.Client, error) {
	_, err := s.clients.InsertOne(ctx, client)
	if mongo.IsDuplicateKeyError(err) {
		return models.Client{}, store.ErrDuplicateEmail
	}
	if err != nil {
		return models.Client{}, fmt.Errorf("failed to insert client: %w", err)
	}
	return client, nil
}

func (s *Store) FindOrdersByEmail(ctx context.Context, email string) ([]models.Order, error) {
	cursor, err := s.orders.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("failed to find orders: %w", err)
	}

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("failed to decode orders: %w", err)
	}
	return orders, nil
}

func (s *Store) MaxOrderID(ctx context.Context) (int64, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "order_id", Value: -1}})

	var last models.Order
	err := s.orders.FindOne(ctx, bson.M{}, opts).Decode(&last)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to find last order: %w", err)
	}
	return last.OrderID, nil
}

func (s *Store) NextOrderSeq(ctx context.Context) (int64, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var counter struct {
		Value int64 `bson:"value"`
	}
	err := s.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": "order_id"},
		bson.M{"$inc": bson.M{"value": 1}},
		opts,
	).Decode(&counter)
	if err != nil {
		return 0, fmt.Errorf("failed to increment order counter: %w", err)
	}
	return counter.Value, nil
}

func (s *Store) InsertOrder(ctx context.Context, order models.Order) (models.Order, error) {
	_, err := s.orders.InsertOne(ctx, order)
	if err != nil {
		return models.Order{}, fmt.Errorf("failed to insert order: %w", err)
	}
	return order, nil
}
