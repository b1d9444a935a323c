package storage

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/guttosm/idxboard/config"
	"go.mongodb.org/mongo-driver/mongo"
)

// Opener connects to MongoDB and returns a ready (pinged) client.
type Opener func(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, error)

// CollectionProvider hands out collection handles backed by the shared client.
type CollectionProvider interface {
	Collection(ctx context.Context, database, name string) (*mongo.Collection, error)
}

// MongoStore owns the process-wide MongoDB client.
//
// The client is created on first use and reused for the lifetime of the process;
// no request ever opens its own connection. A failed first connection is not
// remembered, so a later request connects again once the store is reachable.
// MongoStore is safe for concurrent use.
type MongoStore struct {
	cfg  config.MongoConfig
	open Opener

	mu     sync.Mutex
	client *mongo.Client
}

// NewMongoStore returns a store that connects lazily through open.
func NewMongoStore(cfg config.MongoConfig, open Opener) *MongoStore {
	return &MongoStore{cfg: cfg, open: open}
}

// NewMongoStoreWithClient returns a store around an already connected client.
func NewMongoStoreWithClient(client *mongo.Client, database string) *MongoStore {
	return &MongoStore{cfg: config.MongoConfig{Database: database}, client: client}
}

// Client returns the shared client, connecting on first use.
func (s *MongoStore) Client(ctx context.Context) (*mongo.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client != nil {
		return s.client, nil
	}
	if s.open == nil {
		return nil, errors.New("mongo store has no opener")
	}

	client, err := s.open(ctx, s.cfg)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	s.client = client
	return client, nil
}

// Database returns a handle to the named database; an empty name selects the
// configured default.
func (s *MongoStore) Database(ctx context.Context, name string) (*mongo.Database, error) {
	client, err := s.Client(ctx)
	if err != nil {
		return nil, err
	}
	if name == "" {
		name = s.cfg.Database
	}
	return client.Database(name), nil
}

// Collection returns a handle to database.name (default database when database is empty).
func (s *MongoStore) Collection(ctx context.Context, database, name string) (*mongo.Collection, error) {
	db, err := s.Database(ctx, database)
	if err != nil {
		return nil, err
	}
	return db.Collection(name), nil
}

// Ping checks that the store is reachable, connecting first if needed.
func (s *MongoStore) Ping(ctx context.Context) error {
	client, err := s.Client(ctx)
	if err != nil {
		return err
	}
	return client.Ping(ctx, nil)
}

// Close disconnects the client if one was created.
func (s *MongoStore) Close(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client == nil {
		return nil
	}
	err := s.client.Disconnect(ctx)
	s.client = nil
	return err
}
