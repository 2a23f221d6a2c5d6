package seeding

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/aftab0khan021/mgnrega/internal/domain"
	testingpkg "github.com/aftab0khan021/mgnrega/internal/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthsBack(t *testing.T) {
	tests := []struct {
		name      string
		anchor    Anchor
		offset    int
		wantYear  int
		wantMonth int
	}{
		{name: "anchor itself", anchor: Anchor{2025, 10}, offset: 0, wantYear: 2025, wantMonth: 10},
		{name: "same year", anchor: Anchor{2025, 10}, offset: 9, wantYear: 2025, wantMonth: 1},
		{name: "first rollover", anchor: Anchor{2025, 10}, offset: 10, wantYear: 2024, wantMonth: 12},
		{name: "end of window", anchor: Anchor{2025, 10}, offset: 11, wantYear: 2024, wantMonth: 11},
		{name: "january anchor", anchor: Anchor{2025, 1}, offset: 1, wantYear: 2024, wantMonth: 12},
		{name: "december anchor", anchor: Anchor{2025, 12}, offset: 11, wantYear: 2025, wantMonth: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			year, month := MonthsBack(tt.anchor, tt.offset)
			assert.Equal(t, tt.wantYear, year)
			assert.Equal(t, tt.wantMonth, month)
		})
	}
}

func newTestGenerator(seed int64) *Generator {
	n := 0
	return NewGenerator(GeneratorConfig{
		Rand: rand.New(rand.NewSource(seed)),
		Now:  func() time.Time { return time.Date(2025, 10, 20, 8, 30, 0, 0, time.UTC) },
		NewID: func() string {
			n++
			return fmt.Sprintf("rec-%d", n)
		},
	})
}

func TestGenerator_WindowPerDistrict(t *testing.T) {
	gen := newTestGenerator(1)
	districts := testingpkg.NewDistrictFixtures()

	records := gen.GenerateRecords(districts, Anchor{Year: 2025, Month: 10})
	require.Len(t, records, len(districts)*WindowMonths)

	periods := make(map[string]map[int]bool)
	for _, r := range records {
		if periods[r.DistrictCode] == nil {
			periods[r.DistrictCode] = make(map[int]bool)
		}
		assert.False(t, periods[r.DistrictCode][r.Period()], "duplicate period for %s", r.DistrictCode)
		periods[r.DistrictCode][r.Period()] = true
	}
	for _, d := range districts {
		assert.Len(t, periods[d.Code], WindowMonths, d.Code)
	}

	// First record of the first district is the anchor, twelfth is eleven months back
	assert.Equal(t, 2025, records[0].Year)
	assert.Equal(t, 10, records[0].Month)
	assert.Equal(t, 2024, records[11].Year)
	assert.Equal(t, 11, records[11].Month)
}

func TestGenerator_ValueRanges(t *testing.T) {
	gen := newTestGenerator(42)
	records := gen.GenerateRecords(testingpkg.NewDistrictFixtures(), Anchor{Year: 2025, Month: 10})

	for _, r := range records {
		require.NoError(t, r.CheckConsistency(), "record %s", r.ID)

		assert.GreaterOrEqual(t, r.TotalJobCards, 20000)
		assert.LessOrEqual(t, r.TotalJobCards, 100000)
		assert.GreaterOrEqual(t, r.ActiveJobCards, int(float64(r.TotalJobCards)*0.6)-1)
		assert.LessOrEqual(t, r.ActiveJobCards, int(float64(r.TotalJobCards)*0.8))
		assert.GreaterOrEqual(t, r.TotalWorkers, int(float64(r.TotalJobCards)*1.5)-1)
		assert.LessOrEqual(t, r.TotalWorkers, int(float64(r.TotalJobCards)*2.5))

		assert.GreaterOrEqual(t, r.PersonDaysGenerated, 100000)
		assert.LessOrEqual(t, r.PersonDaysGenerated, 500000)
		assert.Less(t, r.WomenPersonDays, r.PersonDaysGenerated)
		assert.Less(t, r.SCPersonDays, r.PersonDaysGenerated)
		assert.Less(t, r.STPersonDays, r.PersonDaysGenerated)

		assert.GreaterOrEqual(t, r.TotalBudgetAllocated, 5000000.0)
		assert.LessOrEqual(t, r.TotalBudgetAllocated, 50000000.0)
		assert.Less(t, r.TotalExpenditure, r.TotalBudgetAllocated)

		assert.GreaterOrEqual(t, r.AverageWagePerDay, 200.0)
		assert.LessOrEqual(t, r.AverageWagePerDay, 350.0)

		assert.GreaterOrEqual(t, r.TotalWorks, 200)
		assert.LessOrEqual(t, r.TotalWorks, 1000)
		assert.Equal(t, r.TotalWorks-r.CompletedWorks, r.OngoingWorks)

		assert.InDelta(t, float64(r.PersonDaysGenerated)/float64(r.ActiveJobCards), r.AverageDaysPerHousehold, 0.005)
	}
}

func TestGenerator_InjectedClockAndIDs(t *testing.T) {
	gen := newTestGenerator(7)
	d := testingpkg.NewDistrictFixtures()[0]

	records := gen.GenerateRecords([]domain.District{d}, Anchor{Year: 2025, Month: 10})

	assert.Equal(t, "rec-1", records[0].ID)
	assert.Equal(t, "rec-12", records[11].ID)
	for _, r := range records {
		assert.Equal(t, time.Date(2025, 10, 20, 8, 30, 0, 0, time.UTC), r.UpdatedAt)
		assert.Equal(t, d.StateName, r.StateName)
		assert.Equal(t, d.Name, r.DistrictName)
	}
}

func TestGenerator_DeterministicWithSeed(t *testing.T) {
	districts := testingpkg.NewDistrictFixtures()
	a := newTestGenerator(99).GenerateRecords(districts, Anchor{Year: 2025, Month: 10})
	b := newTestGenerator(99).GenerateRecords(districts, Anchor{Year: 2025, Month: 10})

	assert.Equal(t, a, b)
}

func TestGenerator_DefaultIDsAreUnique(t *testing.T) {
	gen := NewGenerator(GeneratorConfig{})
	records := gen.GenerateRecords(testingpkg.NewDistrictFixtures(), Anchor{Year: 2025, Month: 10})

	seen := make(map[string]bool)
	for _, r := range records {
		assert.Len(t, r.ID, 36)
		assert.False(t, seen[r.ID])
		seen[r.ID] = true
	}
}
