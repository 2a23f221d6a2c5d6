package di

import (
	"context"
	"fmt"
	"time"

	"github.com/aftab0khan021/mgnrega/internal/config"
	"github.com/aftab0khan021/mgnrega/internal/database"
	"github.com/rs/zerolog"
)

// InitializeDatabases opens the configured backend and prepares its schema
func InitializeDatabases(cfg *config.Config, log zerolog.Logger) (*Container, error) {
	container := &Container{Backend: cfg.StorageBackend}

	switch cfg.StorageBackend {
	case config.BackendSQLite:
		db, err := database.New(database.Config{
			Path:    cfg.SQLitePath(),
			Profile: database.ProfileStandard,
			Name:    cfg.DBName,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize sqlite database: %w", err)
		}
		if err := db.Migrate(); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to migrate sqlite database: %w", err)
		}
		container.SQLiteDB = db

		log.Info().Str("path", db.Path()).Msg("SQLite database ready")

	case config.BackendMongo:
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		db, err := database.ConnectMongo(ctx, database.MongoConfig{
			URI:      cfg.MongoURL,
			Database: cfg.DBName,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize mongo database: %w", err)
		}
		if err := db.EnsureIndexes(ctx); err != nil {
			_ = db.Close(context.Background())
			return nil, fmt.Errorf("failed to create mongo indexes: %w", err)
		}
		container.MongoDB = db

		log.Info().Str("database", cfg.DBName).Msg("MongoDB ready")

	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}

	return container, nil
}
