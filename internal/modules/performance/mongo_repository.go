package performance

import (
	"context"
	"fmt"

	"github.com/aftab0khan021/mgnrega/internal/database"
	"github.com/aftab0khan021/mgnrega/internal/domain"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRepository stores performance records in the performances collection
type MongoRepository struct {
	collection *mongo.Collection
	log        zerolog.Logger
}

// NewMongoRepository creates a performance store over a connected MongoDB
func NewMongoRepository(db *database.MongoDB, log zerolog.Logger) *MongoRepository {
	return &MongoRepository{
		collection: db.Collection(database.CollectionPerformances),
		log:        log.With().Str("repository", "performance_mongo").Logger(),
	}
}

// ListByDistrict sorts on the compound (year, month) key in one sort document.
func (r *MongoRepository) ListByDistrict(ctx context.Context, districtCode string, limit int) ([]domain.PerformanceRecord, error) {
	opts := options.Find().
		SetProjection(bson.D{{Key: "_id", Value: 0}}).
		SetSort(bson.D{{Key: "year", Value: -1}, {Key: "month", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, bson.M{"district_code": districtCode}, opts)
	if err != nil {
		return nil, domain.StorageError("list performance", err)
	}
	defer cursor.Close(ctx)

	var records []domain.PerformanceRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, domain.StorageError("decode performance", err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("performance for district %q: %w", districtCode, domain.ErrNotFound)
	}

	SortNewestFirst(records)
	return records, nil
}

// ReplaceAll clears the collection and bulk-inserts the records
func (r *MongoRepository) ReplaceAll(ctx context.Context, records []domain.PerformanceRecord) error {
	if _, err := r.collection.DeleteMany(ctx, bson.D{}); err != nil {
		return domain.StorageError("clear performance", err)
	}

	if len(records) == 0 {
		return nil
	}

	docs := make([]interface{}, len(records))
	for i := range records {
		docs[i] = records[i]
	}
	if _, err := r.collection.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false)); err != nil {
		return domain.StorageError("insert performance", err)
	}

	r.log.Debug().Int("records", len(records)).Msg("Performance records replaced")
	return nil
}

func (r *MongoRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.collection.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, domain.StorageError("count performance", err)
	}
	return n, nil
}
