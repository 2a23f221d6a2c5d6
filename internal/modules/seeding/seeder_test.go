package seeding

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/aftab0khan021/mgnrega/internal/domain"
	"github.com/aftab0khan021/mgnrega/internal/modules/performance"
	"github.com/aftab0khan021/mgnrega/internal/modules/regions"
	testingpkg "github.com/aftab0khan021/mgnrega/internal/testing"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureCatalog() ([]domain.State, []domain.District) {
	return testingpkg.NewStateFixtures(), testingpkg.NewDistrictFixtures()
}

func newMockSeeder() (*Seeder, *testingpkg.MockReferenceStore, *testingpkg.MockPerformanceStore) {
	refs := testingpkg.NewMockReferenceStore()
	perf := testingpkg.NewMockPerformanceStore()
	s := NewSeeder(refs, perf, fixtureCatalog, newTestGenerator(1), Anchor{Year: 2025, Month: 10}, zerolog.Nop())
	return s, refs, perf
}

func TestSeeder_SeedTwiceLeavesOneWindow(t *testing.T) {
	db := testingpkg.NewTestDB(t)
	refs := regions.NewSQLiteRepository(db.Conn(), zerolog.Nop())
	perf := performance.NewSQLiteRepository(db.Conn(), zerolog.Nop())
	s := NewSeeder(refs, perf, regions.Catalog, NewGenerator(GeneratorConfig{}), Anchor{Year: 2025, Month: 10}, zerolog.Nop())
	ctx := context.Background()

	require.NoError(t, s.Seed(ctx))
	require.NoError(t, s.Seed(ctx))

	states, districts := regions.Catalog()
	n, err := refs.CountStates(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(len(states)), n)

	total, err := perf.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(len(districts)*WindowMonths), total)

	for _, code := range []string{"UP001", "SK002", "WB004"} {
		records, err := perf.ListByDistrict(ctx, code, 0)
		require.NoError(t, err)
		assert.Len(t, records, WindowMonths, code)
	}
	assert.Equal(t, int64(2), s.SeedCount())
}

func TestSeeder_EnsureSeeded(t *testing.T) {
	s, refs, perf := newMockSeeder()
	ctx := context.Background()

	seeded, err := s.EnsureSeeded(ctx)
	require.NoError(t, err)
	assert.True(t, seeded)
	assert.Len(t, perf.Records(), len(testingpkg.NewDistrictFixtures())*WindowMonths)

	seeded, err = s.EnsureSeeded(ctx)
	require.NoError(t, err)
	assert.False(t, seeded)
	assert.Equal(t, 1, refs.Replacements())
}

func TestSeeder_EnsureSeeded_PopulatedStore(t *testing.T) {
	s, refs, _ := newMockSeeder()
	ctx := context.Background()
	require.NoError(t, refs.ReplaceCatalog(ctx, testingpkg.NewStateFixtures()[:1], nil))

	seeded, err := s.EnsureSeeded(ctx)
	require.NoError(t, err)
	assert.False(t, seeded)
	assert.Equal(t, 1, refs.Replacements())
	assert.Zero(t, s.SeedCount())
}

func TestSeeder_EnsureSeeded_Concurrent(t *testing.T) {
	s, refs, perf := newMockSeeder()
	ctx := context.Background()

	var wg sync.WaitGroup
	results := make(chan bool, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			seeded, err := s.EnsureSeeded(ctx)
			assert.NoError(t, err)
			results <- seeded
		}()
	}
	wg.Wait()
	close(results)

	count := 0
	for seeded := range results {
		if seeded {
			count++
		}
	}
	assert.Equal(t, 1, count)
	assert.Equal(t, 1, refs.Replacements())
	assert.Len(t, perf.Records(), len(testingpkg.NewDistrictFixtures())*WindowMonths)
}

func TestSeeder_Errors(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")

	t.Run("count fails", func(t *testing.T) {
		s, refs, _ := newMockSeeder()
		refs.SetError(boom)

		seeded, err := s.EnsureSeeded(ctx)
		assert.ErrorIs(t, err, boom)
		assert.False(t, seeded)
	})

	t.Run("performance insert fails", func(t *testing.T) {
		s, _, perf := newMockSeeder()
		perf.SetError(boom)

		err := s.Seed(ctx)
		assert.ErrorIs(t, err, boom)
		assert.Zero(t, s.SeedCount())
	})
}
