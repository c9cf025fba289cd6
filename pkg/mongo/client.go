package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// New parses cfg.Server and connects to its server, retrying up to
// cfg.RetryAttempts times. A malformed locator fails immediately.
func New(ctx context.Context, cfg Config) (*mongo.Client, Locator, error) {
	loc, err := ParseLocator(cfg.Server)
	if err != nil {
		return nil, Locator{}, err
	}

	uri := cfg.ConnectionURL
	if uri == "" {
		uri = loc.URI()
	}

	opts := options.Client().
		ApplyURI(uri).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetMaxPoolSize(cfg.PoolSize).
		SetServerSelectionTimeout(cfg.PoolTimeout)

	attempts := max(cfg.RetryAttempts, 1)
	var lastErr error
	for attempt := range attempts {
		client, err := mongo.Connect(opts)
		if err == nil {
			if err = client.Ping(ctx, nil); err == nil {
				return client, loc, nil
			}
			_ = client.Disconnect(context.WithoutCancel(ctx))
		}
		lastErr = err

		if attempt == attempts-1 {
			break
		}

		// Wait for the next retry interval
		select {
		case <-ctx.Done():
			return nil, loc, errors.Join(ErrFailedToConnectToMongo, ctx.Err())
		case <-time.After(cfg.RetryInterval):
		}
	}

	return nil, loc, errors.Join(ErrFailedToConnectToMongo, lastErr)
}

// Open connects and returns the session collection named by cfg.Server,
// with its indexes in place. Close releases the connection.
func Open(ctx context.Context, cfg Config) (*Collection, error) {
	client, loc, err := New(ctx, cfg)
	if err != nil {
		return nil, err
	}

	coll := NewCollection(client.Database(loc.Database).Collection(loc.Collection))
	coll.client = client

	if err := coll.EnsureIndexes(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return coll, nil
}
