// Package dashboard composes the stores, seeder and translation table into the read operations served over HTTP.
package dashboard

import (
	"context"
	"fmt"

	"github.com/aftab0khan021/mgnrega/internal/domain"
	"github.com/aftab0khan021/mgnrega/internal/modules/performance"
	"github.com/aftab0khan021/mgnrega/internal/modules/translations"
	"github.com/aftab0khan021/mgnrega/internal/utils"
	"github.com/rs/zerolog"
)

// DefaultLimit is the number of months returned when the caller gives no limit
const DefaultLimit = 12

// Seeder populates an empty store
type Seeder interface {
	EnsureSeeded(ctx context.Context) (bool, error)
}

// Service implements the read operations
type Service struct {
	refs   domain.ReferenceStore
	perf   domain.PerformanceStore
	seeder Seeder
	table  *translations.Table
	log    zerolog.Logger
}

// NewService creates a dashboard service
func NewService(
	refs domain.ReferenceStore,
	perf domain.PerformanceStore,
	seeder Seeder,
	table *translations.Table,
	log zerolog.Logger,
) *Service {
	return &Service{
		refs:   refs,
		perf:   perf,
		seeder: seeder,
		table:  table,
		log:    log.With().Str("service", "dashboard").Logger(),
	}
}

// ListStates returns every state. An empty store is seeded first,
// so the result is never empty unless seeding itself produced nothing.
func (s *Service) ListStates(ctx context.Context) ([]domain.State, error) {
	done := utils.MeasureDBQuery("list_states", s.log)
	states, err := s.refs.ListStates(ctx)
	if err != nil {
		return nil, err
	}
	if len(states) > 0 {
		done(int64(len(states)))
		return states, nil
	}

	if _, err := s.seeder.EnsureSeeded(ctx); err != nil {
		return nil, fmt.Errorf("failed to seed empty store: %w", err)
	}

	states, err = s.refs.ListStates(ctx)
	if err != nil {
		return nil, err
	}
	done(int64(len(states)))
	return states, nil
}

// GetState returns one state or a not-found error
func (s *Service) GetState(ctx context.Context, code string) (*domain.State, error) {
	return s.refs.GetState(ctx, code)
}

// ListDistricts returns the districts of a state. Never seeds.
func (s *Service) ListDistricts(ctx context.Context, stateCode string) ([]domain.District, error) {
	done := utils.MeasureDBQuery("list_districts", s.log)
	districts, err := s.refs.ListDistricts(ctx, stateCode)
	if err != nil {
		return nil, err
	}
	done(int64(len(districts)))
	return districts, nil
}

// ListPerformance returns up to limit records for a district, newest first.
// Zero returns every record and a negative limit counts as its absolute value,
// matching a Mongo cursor limit. Never seeds.
func (s *Service) ListPerformance(ctx context.Context, districtCode string, limit int) ([]domain.PerformanceRecord, error) {
	if limit < 0 {
		limit = -limit
	}

	done := utils.MeasureDBQuery("list_performance", s.log)
	records, err := s.perf.ListByDistrict(ctx, districtCode, limit)
	if err != nil {
		return nil, err
	}
	done(int64(len(records)))
	return records, nil
}

// PerformanceSummary aggregates the same window ListPerformance returns
func (s *Service) PerformanceSummary(ctx context.Context, districtCode string, limit int) (performance.Summary, error) {
	records, err := s.ListPerformance(ctx, districtCode, limit)
	if err != nil {
		return performance.Summary{}, err
	}
	return performance.Summarize(records), nil
}

// TranslationEntries returns the whole table in definition order
func (s *Service) TranslationEntries() []domain.TranslationEntry {
	return s.table.Entries()
}

// TranslationsFor returns key -> text for one language with English fallback
func (s *Service) TranslationsFor(lang string) map[string]string {
	return s.table.For(lang)
}

// Languages lists the languages present in the table
func (s *Service) Languages() []translations.Language {
	return s.table.Languages()
}
