package di

import (
	"fmt"

	"github.com/aftab0khan021/mgnrega/internal/config"
	"github.com/aftab0khan021/mgnrega/internal/modules/dashboard"
	"github.com/aftab0khan021/mgnrega/internal/modules/regions"
	"github.com/aftab0khan021/mgnrega/internal/modules/seeding"
	"github.com/aftab0khan021/mgnrega/internal/modules/translations"
	"github.com/rs/zerolog"
)

// InitializeServices builds the seeder, translation table and dashboard service
func InitializeServices(container *Container, cfg *config.Config, log zerolog.Logger) error {
	table, err := translations.Load(cfg.TranslationsFile)
	if err != nil {
		return fmt.Errorf("failed to load translations: %w", err)
	}
	container.Translations = table

	container.Seeder = seeding.NewSeeder(
		container.ReferenceStore,
		container.PerformanceStore,
		regions.Catalog,
		seeding.NewGenerator(seeding.GeneratorConfig{}),
		seeding.Anchor{Year: cfg.Seed.AnchorYear, Month: cfg.Seed.AnchorMonth},
		log,
	)

	container.DashboardService = dashboard.NewService(
		container.ReferenceStore,
		container.PerformanceStore,
		container.Seeder,
		container.Translations,
		log,
	)

	return nil
}
