package performance

import (
	"fmt"
	"math"

	"github.com/aftab0khan021/mgnrega/internal/domain"
	"github.com/aftab0khan021/mgnrega/internal/utils"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary aggregates a window of monthly records for one district
type Summary struct {
	DistrictCode string `json:"district_code"`
	DistrictName string `json:"district_name"`
	StateCode    string `json:"state_code"`
	StateName    string `json:"state_name"`
	Months       int    `json:"months"`
	PeriodStart  string `json:"period_start"` // YYYY-MM, oldest month in the window
	PeriodEnd    string `json:"period_end"`   // YYYY-MM, newest month in the window

	TotalPersonDays       int     `json:"total_person_days"`
	MeanPersonDays        float64 `json:"mean_person_days"`
	StdDevPersonDays      float64 `json:"stddev_person_days"`
	PersonDaysTrend       float64 `json:"person_days_trend"` // least-squares slope, person-days per month
	AverageActiveWorkers  float64 `json:"average_active_workers"`
	AverageWagePerDay     float64 `json:"average_wage_per_day"`
	TotalBudgetAllocated  float64 `json:"total_budget_allocated"`
	TotalExpenditure      float64 `json:"total_expenditure"`
	BudgetUtilizationPct  float64 `json:"budget_utilization_pct"`
	WomenParticipationPct float64 `json:"women_participation_pct"`
	WorksCompletionPct    float64 `json:"works_completion_pct"`
	LatestCompletedWorks  int     `json:"latest_completed_works"`
	LatestOngoingWorks    int     `json:"latest_ongoing_works"`
}

// Summarize computes window totals, averages and ratios over records.
// Records may be in any order. An empty window returns a zero Summary with Months = 0.
func Summarize(records []domain.PerformanceRecord) Summary {
	if len(records) == 0 {
		return Summary{}
	}

	ordered := make([]domain.PerformanceRecord, len(records))
	copy(ordered, records)
	SortNewestFirst(ordered)

	newest := ordered[0]
	oldest := ordered[len(ordered)-1]

	n := len(ordered)
	personDays := make([]float64, n)
	periods := make([]float64, n)
	activeWorkers := make([]float64, n)
	wages := make([]float64, n)
	budgets := make([]float64, n)
	expenditures := make([]float64, n)

	var womenDays, totalWorks, completedWorks int
	totalPersonDays := 0
	for i, r := range ordered {
		personDays[i] = float64(r.PersonDaysGenerated)
		periods[i] = float64(r.Period())
		activeWorkers[i] = float64(r.ActiveWorkers)
		wages[i] = r.AverageWagePerDay
		budgets[i] = r.TotalBudgetAllocated
		expenditures[i] = r.TotalExpenditure

		totalPersonDays += r.PersonDaysGenerated
		womenDays += r.WomenPersonDays
		totalWorks += r.TotalWorks
		completedWorks += r.CompletedWorks
	}

	s := Summary{
		DistrictCode:         newest.DistrictCode,
		DistrictName:         newest.DistrictName,
		StateCode:            newest.StateCode,
		StateName:            newest.StateName,
		Months:               n,
		PeriodStart:          periodLabel(oldest),
		PeriodEnd:            periodLabel(newest),
		TotalPersonDays:      totalPersonDays,
		AverageActiveWorkers: utils.Round2(stat.Mean(activeWorkers, nil)),
		AverageWagePerDay:    utils.Round2(stat.Mean(wages, nil)),
		TotalBudgetAllocated: utils.Round2(floats.Sum(budgets)),
		TotalExpenditure:     utils.Round2(floats.Sum(expenditures)),
		LatestCompletedWorks: newest.CompletedWorks,
		LatestOngoingWorks:   newest.OngoingWorks,
	}

	mean, std := stat.MeanStdDev(personDays, nil)
	s.MeanPersonDays = utils.Round2(mean)
	// Sample std-dev and regression need at least two points
	if n > 1 {
		s.StdDevPersonDays = utils.Round2(std)
		if floats.Max(periods) > floats.Min(periods) {
			_, slope := stat.LinearRegression(periods, personDays, nil, false)
			if !math.IsNaN(slope) {
				s.PersonDaysTrend = utils.Round2(slope)
			}
		}
	}

	s.BudgetUtilizationPct = utils.Percent(s.TotalExpenditure, s.TotalBudgetAllocated)
	s.WomenParticipationPct = utils.Percent(float64(womenDays), float64(totalPersonDays))
	s.WorksCompletionPct = utils.Percent(float64(completedWorks), float64(totalWorks))

	return s
}

func periodLabel(r domain.PerformanceRecord) string {
	return fmt.Sprintf("%04d-%02d", r.Year, r.Month)
}
