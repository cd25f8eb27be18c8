// Package database owns the MongoDB connection for the tool.
//
// The handle is created once at startup and passed explicitly to every
// repository; nothing in this package is a global. Close it on exit:
//
//	db, err := database.Connect(ctx)
//	if err != nil { ... }
//	defer db.Close(context.Background())
package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/zackariya14/databasteknik-uppgift-2/config"
)

// Collection names for the five record kinds.
const (
	Categories  = "categories"
	Suppliers   = "suppliers"
	Products    = "products"
	Offers      = "offers"
	SalesOrders = "salesorders"
)

// DB is the process-wide persistence handle.
type DB struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect opens the MongoDB connection and verifies it with a ping.
// Returns an error instead of exiting so the caller can shut down
// gracefully.
func Connect(ctx context.Context) (*DB, error) {
	clientOpts := options.Client().ApplyURI(config.MongoURI()).
		SetConnectTimeout(5 * time.Second).
		SetServerSelectionTimeout(5 * time.Second).
		SetMaxPoolSize(10)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("database: connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("database: ping: %w", err)
	}

	return &DB{client: client, db: client.Database(config.MongoDB())}, nil
}

// Collection returns a handle to the named collection.
func (d *DB) Collection(name string) *mongo.Collection {
	return d.db.Collection(name)
}

// Close disconnects from MongoDB.
func (d *DB) Close(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := d.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("database: disconnect: %w", err)
	}
	return nil
}
