package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names shared by the Mongo repositories
const (
	CollectionStates       = "states"
	CollectionDistricts    = "districts"
	CollectionPerformances = "performances"
)

// MongoConfig holds MongoDB connection settings
type MongoConfig struct {
	URI            string
	Database       string
	ConnectTimeout time.Duration // defaults to 10s
}

// MongoDB wraps a connected client and the selected database
type MongoDB struct {
	client *mongo.Client
	db     *mongo.Database
}

// ConnectMongo opens a client, verifies it with a ping and selects the database.
func ConnectMongo(ctx context.Context, cfg MongoConfig) (*MongoDB, error) {
	timeout := cfg.ConnectTimeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	clientOptions := options.Client().ApplyURI(cfg.URI).
		SetMaxPoolSize(100).
		SetMinPoolSize(5).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout).
		SetRetryWrites(true).
		SetRetryReads(true).
		SetReadPreference(readpref.Primary())

	connectCtx, cancel := context.WithTimeout(ctx, timeout+5*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("error connecting to MongoDB: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("error pinging MongoDB: %w", err)
	}

	return &MongoDB{
		client: client,
		db:     client.Database(cfg.Database),
	}, nil
}

// Database returns the selected database handle
func (m *MongoDB) Database() *mongo.Database {
	return m.db
}

// Collection returns a collection of the selected database
func (m *MongoDB) Collection(name string) *mongo.Collection {
	return m.db.Collection(name)
}

// Ping checks the connection against the primary
func (m *MongoDB) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

// HealthCheck pings the primary and runs dbStats on the selected database
func (m *MongoDB) HealthCheck(ctx context.Context) error {
	if err := m.Ping(ctx); err != nil {
		return fmt.Errorf("ping failed for %s: %w", m.db.Name(), err)
	}

	var stats bson.M
	if err := m.Database().RunCommand(ctx, bson.D{{Key: "dbStats", Value: 1}}).Decode(&stats); err != nil {
		return fmt.Errorf("dbStats failed for %s: %w", m.db.Name(), err)
	}
	return nil
}

// Close disconnects the client
func (m *MongoDB) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// EnsureIndexes creates the lookup indexes used by the repositories.
// Codes are unique; (district_code, year, month) is deliberately not.
func (m *MongoDB) EnsureIndexes(ctx context.Context) error {
	indexes := map[string][]mongo.IndexModel{
		CollectionStates: {
			{
				Keys:    bson.D{{Key: "state_code", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("state_code_idx"),
			},
		},
		CollectionDistricts: {
			{
				Keys:    bson.D{{Key: "district_code", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("district_code_idx"),
			},
			{
				Keys:    bson.D{{Key: "state_code", Value: 1}},
				Options: options.Index().SetName("district_state_idx"),
			},
		},
		CollectionPerformances: {
			{
				Keys: bson.D{
					{Key: "district_code", Value: 1},
					{Key: "year", Value: -1},
					{Key: "month", Value: -1},
				},
				Options: options.Index().SetName("district_period_idx"),
			},
		},
	}

	for collection, models := range indexes {
		if _, err := m.db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("error creating %s indexes: %w", collection, err)
		}
	}
	return nil
}
