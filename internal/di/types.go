// Package di provides dependency injection type definitions.
//
// Container holds every long-lived dependency. It is the single source of
// truth for store and service instances and is passed to the server.
package di

import (
	"context"
	"time"

	"github.com/aftab0khan021/mgnrega/internal/database"
	"github.com/aftab0khan021/mgnrega/internal/domain"
	"github.com/aftab0khan021/mgnrega/internal/modules/dashboard"
	"github.com/aftab0khan021/mgnrega/internal/modules/seeding"
	"github.com/aftab0khan021/mgnrega/internal/modules/translations"
	"github.com/aftab0khan021/mgnrega/internal/scheduler"
)

// Container holds all application dependencies
type Container struct {
	// Storage. Exactly one of SQLiteDB and MongoDB is set.
	Backend  string
	SQLiteDB *database.DB
	MongoDB  *database.MongoDB

	// Stores
	ReferenceStore   domain.ReferenceStore
	PerformanceStore domain.PerformanceStore

	// Services
	Seeder           *seeding.Seeder
	Translations     *translations.Table
	DashboardService *dashboard.Service
}

// JobInstances holds the maintenance jobs registered with the scheduler
type JobInstances struct {
	CheckWALCheckpoints scheduler.Job // nil on the mongo backend
	CheckStoreHealth    scheduler.Job
}

// Close releases the storage connection
func (c *Container) Close() error {
	if c.SQLiteDB != nil {
		return c.SQLiteDB.Close()
	}
	if c.MongoDB != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return c.MongoDB.Close(ctx)
	}
	return nil
}
