package testing

import (
	"fmt"
	"time"

	"github.com/aftab0khan021/mgnrega/internal/domain"
)

// NewStateFixtures returns a small state catalog for tests
func NewStateFixtures() []domain.State {
	return []domain.State{
		{Code: "GA", Name: "Goa", NameLocal: "गोवा"},
		{Code: "SK", Name: "Sikkim", NameLocal: "सिक्किम"},
		{Code: "UP", Name: "Uttar Pradesh", NameLocal: "उत्तर प्रदेश"},
	}
}

// NewDistrictFixtures returns districts matching NewStateFixtures.
// Sikkim has one district, the others two.
func NewDistrictFixtures() []domain.District {
	return []domain.District{
		{Code: "GA001", Name: "North Goa", NameLocal: "उत्तर गोवा", StateCode: "GA", StateName: "Goa"},
		{Code: "GA002", Name: "South Goa", NameLocal: "दक्षिण गोवा", StateCode: "GA", StateName: "Goa"},
		{Code: "SK001", Name: "Gangtok", NameLocal: "गंगटोक", StateCode: "SK", StateName: "Sikkim"},
		{Code: "UP001", Name: "Lucknow", NameLocal: "लखनऊ", StateCode: "UP", StateName: "Uttar Pradesh"},
		{Code: "UP002", Name: "Kanpur", NameLocal: "कानपुर", StateCode: "UP", StateName: "Uttar Pradesh"},
	}
}

// NewPerformanceFixture returns a consistent record for the given district and period.
// Values are derived from the period so records are distinguishable in assertions.
func NewPerformanceFixture(d domain.District, year, month int) domain.PerformanceRecord {
	base := year*100 + month
	totalWorks := 500 + month
	completed := 300 + month
	expenditure := float64(base) * 10

	return domain.PerformanceRecord{
		UpdatedAt:               time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC),
		ID:                      fmt.Sprintf("%s-%04d-%02d", d.Code, year, month),
		StateCode:               d.StateCode,
		StateName:               d.StateName,
		DistrictCode:            d.Code,
		DistrictName:            d.Name,
		Year:                    year,
		Month:                   month,
		TotalJobCards:           50000,
		ActiveJobCards:          35000,
		TotalWorkers:            100000,
		ActiveWorkers:           70000,
		PersonDaysGenerated:     base,
		AverageDaysPerHousehold: 5.79,
		WomenPersonDays:         base / 2,
		SCPersonDays:            base / 5,
		STPersonDays:            base / 7,
		TotalBudgetAllocated:    expenditure * 1.25,
		TotalExpenditure:        expenditure,
		WageExpenditure:         expenditure * 0.6,
		MaterialExpenditure:     expenditure * 0.4,
		AverageWagePerDay:       250.5,
		TotalWorks:              totalWorks,
		CompletedWorks:          completed,
		OngoingWorks:            totalWorks - completed,
	}
}

// NewPerformanceSeries returns n monthly records ending at (year, month), newest first.
func NewPerformanceSeries(d domain.District, year, month, n int) []domain.PerformanceRecord {
	records := make([]domain.PerformanceRecord, 0, n)
	for i := 0; i < n; i++ {
		records = append(records, NewPerformanceFixture(d, year, month))
		month--
		if month <= 0 {
			month += 12
			year--
		}
	}
	return records
}
