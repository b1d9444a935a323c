package app

import (
	"context"
	"fmt"

	"github.com/guttosm/idxboard/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// appName identifies this service in MongoDB server logs and currentOp.
const appName = "idxboard"

// mongoConnect is an indirection for unit testing; defaults to mongo.Connect.
var mongoConnect = mongo.Connect

// InitMongo opens a MongoDB client using the provided configuration and pings
// the primary to validate connectivity.
//
// Behavior:
//   - Applies cfg.URI and uses cfg.Timeout as connect and server selection timeout.
//   - Pings with a context bounded by cfg.Timeout.
//   - Disconnects the client again when the ping fails.
//
// Returns:
//   - *mongo.Client: a connection pool, safe for concurrent use.
//   - error: if connecting or pinging fails.
func InitMongo(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetAppName(appName).
		SetConnectTimeout(cfg.Timeout).
		SetServerSelectionTimeout(cfg.Timeout)

	client, err := mongoConnect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect mongo: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	return client, nil
}

// mongoOpener is the opener handed to the store; overridden in tests to avoid real connections.
var mongoOpener = InitMongo
