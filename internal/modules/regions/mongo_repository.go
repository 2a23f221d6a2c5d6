package regions

import (
	"context"
	"errors"
	"fmt"

	"github.com/aftab0khan021/mgnrega/internal/database"
	"github.com/aftab0khan021/mgnrega/internal/domain"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRepository stores the reference catalog in the states and districts collections.
// Listings are ordered by _id, which follows insertion order for a single seeding client.
type MongoRepository struct {
	mongo     *database.MongoDB
	states    *mongo.Collection
	districts *mongo.Collection
	log       zerolog.Logger
}

// NewMongoRepository creates a reference store over a connected MongoDB
func NewMongoRepository(db *database.MongoDB, log zerolog.Logger) *MongoRepository {
	return &MongoRepository{
		mongo:     db,
		states:    db.Collection(database.CollectionStates),
		districts: db.Collection(database.CollectionDistricts),
		log:       log.With().Str("repository", "regions_mongo").Logger(),
	}
}

// noID drops the driver-assigned _id from results
var noID = bson.D{{Key: "_id", Value: 0}}

func (r *MongoRepository) ListStates(ctx context.Context) ([]domain.State, error) {
	opts := options.Find().SetProjection(noID).SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.states.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, domain.StorageError("list states", err)
	}
	defer cursor.Close(ctx)

	states := []domain.State{}
	if err := cursor.All(ctx, &states); err != nil {
		return nil, domain.StorageError("decode states", err)
	}
	return states, nil
}

func (r *MongoRepository) CountStates(ctx context.Context) (int64, error) {
	n, err := r.states.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, domain.StorageError("count states", err)
	}
	return n, nil
}

func (r *MongoRepository) GetState(ctx context.Context, code string) (*domain.State, error) {
	var s domain.State
	err := r.states.FindOne(ctx, bson.M{"state_code": code}, options.FindOne().SetProjection(noID)).Decode(&s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("state %q: %w", code, domain.ErrNotFound)
	}
	if err != nil {
		return nil, domain.StorageError("get state", err)
	}
	return &s, nil
}

func (r *MongoRepository) ListDistricts(ctx context.Context, stateCode string) ([]domain.District, error) {
	opts := options.Find().SetProjection(noID).SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.districts.Find(ctx, bson.M{"state_code": stateCode}, opts)
	if err != nil {
		return nil, domain.StorageError("list districts", err)
	}
	defer cursor.Close(ctx)

	var districts []domain.District
	if err := cursor.All(ctx, &districts); err != nil {
		return nil, domain.StorageError("decode districts", err)
	}

	if len(districts) == 0 {
		return nil, fmt.Errorf("districts for state %q: %w", stateCode, domain.ErrNotFound)
	}
	return districts, nil
}

// ReplaceCatalog clears both collections and bulk-inserts the catalog.
// Mongo gives no cross-collection transaction on a standalone server, so a failure
// part way leaves a partial catalog; the next seed clears it again.
func (r *MongoRepository) ReplaceCatalog(ctx context.Context, states []domain.State, districts []domain.District) error {
	if _, err := r.states.DeleteMany(ctx, bson.D{}); err != nil {
		return domain.StorageError("clear states", err)
	}
	if _, err := r.districts.DeleteMany(ctx, bson.D{}); err != nil {
		return domain.StorageError("clear districts", err)
	}

	if len(states) > 0 {
		docs := make([]interface{}, len(states))
		for i := range states {
			docs[i] = states[i]
		}
		if _, err := r.states.InsertMany(ctx, docs); err != nil {
			return domain.StorageError("insert states", err)
		}
	}

	if len(districts) > 0 {
		docs := make([]interface{}, len(districts))
		for i := range districts {
			docs[i] = districts[i]
		}
		if _, err := r.districts.InsertMany(ctx, docs); err != nil {
			return domain.StorageError("insert districts", err)
		}
	}

	r.log.Debug().
		Int("states", len(states)).
		Int("districts", len(districts)).
		Msg("Reference catalog replaced")

	return nil
}

func (r *MongoRepository) Ping(ctx context.Context) error {
	if err := r.mongo.Ping(ctx); err != nil {
		return domain.StorageError("ping", err)
	}
	return nil
}
