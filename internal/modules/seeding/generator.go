// Package seeding populates an empty store with the reference catalog and
// a trailing window of synthetic monthly performance records.
package seeding

import (
	"math/rand"
	"sync"
	"time"

	"github.com/aftab0khan021/mgnrega/internal/domain"
	"github.com/aftab0khan021/mgnrega/internal/utils"
	"github.com/google/uuid"
)

// WindowMonths is the number of trailing months generated per district
const WindowMonths = 12

// Anchor is the most recent (year, month) of the generated window
type Anchor struct {
	Year  int
	Month int
}

// MonthsBack returns the (year, month) that lies offset months before the anchor.
// Months are 1-based; going below 1 rolls into the previous year.
// offset must be in 0..11.
func MonthsBack(anchor Anchor, offset int) (year, month int) {
	year = anchor.Year
	month = anchor.Month - offset
	if month <= 0 {
		month += 12
		year--
	}
	return year, month
}

// GeneratorConfig configures a Generator. Zero values select the defaults.
type GeneratorConfig struct {
	Rand  *rand.Rand       // default: seeded from the clock
	Now   func() time.Time // default: time.Now
	NewID func() string    // default: uuid v4
}

// Generator produces randomized but bounded performance records.
// Safe for concurrent use.
type Generator struct {
	mu    sync.Mutex
	rng   *rand.Rand
	now   func() time.Time
	newID func() string
}

// NewGenerator creates a generator
func NewGenerator(cfg GeneratorConfig) *Generator {
	g := &Generator{rng: cfg.Rand, now: cfg.Now, newID: cfg.NewID}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if g.now == nil {
		g.now = time.Now
	}
	if g.newID == nil {
		g.newID = func() string { return uuid.New().String() }
	}
	return g
}

// GenerateRecords returns WindowMonths records per district, newest first within each district.
func (g *Generator) GenerateRecords(districts []domain.District, anchor Anchor) []domain.PerformanceRecord {
	g.mu.Lock()
	defer g.mu.Unlock()

	updatedAt := g.now().UTC()
	records := make([]domain.PerformanceRecord, 0, len(districts)*WindowMonths)
	for _, d := range districts {
		for offset := 0; offset < WindowMonths; offset++ {
			year, month := MonthsBack(anchor, offset)
			records = append(records, g.record(d, year, month, updatedAt))
		}
	}
	return records
}

func (g *Generator) record(d domain.District, year, month int, updatedAt time.Time) domain.PerformanceRecord {
	totalJobCards := g.intBetween(20000, 100000)
	activeJobCards := int(float64(totalJobCards) * g.between(0.6, 0.8))
	totalWorkers := int(float64(totalJobCards) * g.between(1.5, 2.5))
	activeWorkers := int(float64(activeJobCards) * g.between(1.5, 2.5))
	personDays := g.intBetween(100000, 500000)

	budget := g.between(5000000, 50000000)
	expenditure := budget * g.between(0.7, 0.95)

	totalWorks := g.intBetween(200, 1000)
	completed := int(float64(totalWorks) * g.between(0.6, 0.8))

	return domain.PerformanceRecord{
		UpdatedAt:               updatedAt,
		ID:                      g.newID(),
		StateCode:               d.StateCode,
		StateName:               d.StateName,
		DistrictCode:            d.Code,
		DistrictName:            d.Name,
		Month:                   month,
		Year:                    year,
		TotalJobCards:           totalJobCards,
		ActiveJobCards:          activeJobCards,
		TotalWorkers:            totalWorkers,
		ActiveWorkers:           activeWorkers,
		PersonDaysGenerated:     personDays,
		AverageDaysPerHousehold: utils.Round2(float64(personDays) / float64(activeJobCards)),
		WomenPersonDays:         int(float64(personDays) * g.between(0.45, 0.55)),
		SCPersonDays:            int(float64(personDays) * g.between(0.15, 0.25)),
		STPersonDays:            int(float64(personDays) * g.between(0.10, 0.20)),
		TotalBudgetAllocated:    utils.Round2(budget),
		TotalExpenditure:        utils.Round2(expenditure),
		WageExpenditure:         utils.Round2(expenditure * 0.6),
		MaterialExpenditure:     utils.Round2(expenditure * 0.4),
		AverageWagePerDay:       utils.Round2(g.between(200, 350)),
		TotalWorks:              totalWorks,
		CompletedWorks:          completed,
		OngoingWorks:            totalWorks - completed,
	}
}

// intBetween returns an int in [lo, hi]
func (g *Generator) intBetween(lo, hi int) int {
	return lo + g.rng.Intn(hi-lo+1)
}

// between returns a float in [lo, hi)
func (g *Generator) between(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}
