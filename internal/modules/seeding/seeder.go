package seeding

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/aftab0khan021/mgnrega/internal/domain"
	"github.com/aftab0khan021/mgnrega/internal/utils"
	"github.com/rs/zerolog"
)

// CatalogFunc returns the states and districts to seed
type CatalogFunc func() ([]domain.State, []domain.District)

// Seeder writes the catalog and generated records into the stores
type Seeder struct {
	refs      domain.ReferenceStore
	perf      domain.PerformanceStore
	catalog   CatalogFunc
	generator *Generator
	anchor    Anchor
	log       zerolog.Logger

	mu    sync.Mutex
	seeds atomic.Int64
}

// NewSeeder creates a seeder
func NewSeeder(
	refs domain.ReferenceStore,
	perf domain.PerformanceStore,
	catalog CatalogFunc,
	generator *Generator,
	anchor Anchor,
	log zerolog.Logger,
) *Seeder {
	return &Seeder{
		refs:      refs,
		perf:      perf,
		catalog:   catalog,
		generator: generator,
		anchor:    anchor,
		log:       log.With().Str("component", "seeder").Logger(),
	}
}

// Seed replaces the catalog and all performance records.
// It clears before inserting, so running it twice leaves one window per district.
// Seed takes no lock; concurrent callers should go through EnsureSeeded.
func (s *Seeder) Seed(ctx context.Context) error {
	timer := utils.NewTimer("seed", s.log)

	states, districts := s.catalog()
	if err := s.refs.ReplaceCatalog(ctx, states, districts); err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}

	records := s.generator.GenerateRecords(districts, s.anchor)
	if err := s.perf.ReplaceAll(ctx, records); err != nil {
		return fmt.Errorf("failed to seed performance records: %w", err)
	}

	s.seeds.Add(1)
	elapsed := timer.Stop()
	s.log.Info().
		Int("states", len(states)).
		Int("districts", len(districts)).
		Int("records", len(records)).
		Int("anchor_year", s.anchor.Year).
		Int("anchor_month", s.anchor.Month).
		Dur("elapsed", elapsed).
		Msg("Store seeded")

	return nil
}

// EnsureSeeded seeds the stores if no states exist and reports whether it did.
// The emptiness check and the seed run under one lock, so concurrent callers
// that all observed an empty store trigger a single seed.
func (s *Seeder) EnsureSeeded(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, err := s.refs.CountStates(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to count states: %w", err)
	}
	if n > 0 {
		return false, nil
	}

	s.log.Info().Msg("Reference store is empty, seeding sample data")
	if err := s.Seed(ctx); err != nil {
		return false, err
	}
	return true, nil
}

// SeedCount returns how many seeds completed since the process started
func (s *Seeder) SeedCount() int64 {
	return s.seeds.Load()
}
