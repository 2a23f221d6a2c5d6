package di

import (
	"fmt"

	"github.com/aftab0khan021/mgnrega/internal/modules/performance"
	"github.com/aftab0khan021/mgnrega/internal/modules/regions"
	"github.com/rs/zerolog"
)

// InitializeRepositories builds the stores for the open backend
func InitializeRepositories(container *Container, log zerolog.Logger) error {
	switch {
	case container.SQLiteDB != nil:
		container.ReferenceStore = regions.NewSQLiteRepository(container.SQLiteDB.Conn(), log)
		container.PerformanceStore = performance.NewSQLiteRepository(container.SQLiteDB.Conn(), log)
	case container.MongoDB != nil:
		container.ReferenceStore = regions.NewMongoRepository(container.MongoDB, log)
		container.PerformanceStore = performance.NewMongoRepository(container.MongoDB, log)
	default:
		return fmt.Errorf("no database initialized")
	}
	return nil
}
