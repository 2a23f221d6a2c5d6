// Package domain provides core domain models and types.
package domain

import "time"

// State is a state or union territory in the reference catalog.
// NameLocal holds the Hindi name.
type State struct {
	Code      string `json:"state_code" bson:"state_code"`
	Name      string `json:"state_name" bson:"state_name"`
	NameLocal string `json:"state_name_hi" bson:"state_name_hi"`
}

// District belongs to exactly one State.
// StateName is a copy of the state's name taken when the catalog was seeded;
// it is not kept in sync with later changes to the State.
type District struct {
	Code      string `json:"district_code" bson:"district_code"`
	Name      string `json:"district_name" bson:"district_name"`
	NameLocal string `json:"district_name_hi" bson:"district_name_hi"`
	StateCode string `json:"state_code" bson:"state_code"`
	StateName string `json:"state_name" bson:"state_name"`
}

// PerformanceRecord is one month of program statistics for a district.
// Logically keyed by (DistrictCode, Year, Month); the store does not enforce it.
type PerformanceRecord struct {
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
	ID           string    `json:"id" bson:"id"`
	StateCode    string    `json:"state_code" bson:"state_code"`
	StateName    string    `json:"state_name" bson:"state_name"`
	DistrictCode string    `json:"district_code" bson:"district_code"`
	DistrictName string    `json:"district_name" bson:"district_name"`
	Month        int       `json:"month" bson:"month"`
	Year         int       `json:"year" bson:"year"`

	// Workforce
	TotalJobCards  int `json:"total_job_cards" bson:"total_job_cards"`
	ActiveJobCards int `json:"active_job_cards" bson:"active_job_cards"`
	TotalWorkers   int `json:"total_workers" bson:"total_workers"`
	ActiveWorkers  int `json:"active_workers" bson:"active_workers"`

	// Labour output
	PersonDaysGenerated     int     `json:"person_days_generated" bson:"person_days_generated"`
	AverageDaysPerHousehold float64 `json:"average_days_per_household" bson:"average_days_per_household"`
	WomenPersonDays         int     `json:"women_person_days" bson:"women_person_days"`
	SCPersonDays            int     `json:"sc_person_days" bson:"sc_person_days"`
	STPersonDays            int     `json:"st_person_days" bson:"st_person_days"`

	// Financial
	TotalBudgetAllocated float64 `json:"total_budget_allocated" bson:"total_budget_allocated"`
	TotalExpenditure     float64 `json:"total_expenditure" bson:"total_expenditure"`
	WageExpenditure      float64 `json:"wage_expenditure" bson:"wage_expenditure"`
	MaterialExpenditure  float64 `json:"material_expenditure" bson:"material_expenditure"`
	AverageWagePerDay    float64 `json:"average_wage_per_day" bson:"average_wage_per_day"`

	// Works
	TotalWorks     int `json:"total_works" bson:"total_works"`
	CompletedWorks int `json:"completed_works" bson:"completed_works"`
	OngoingWorks   int `json:"ongoing_works" bson:"ongoing_works"`
}

// Period returns a single ordering key for (Year, Month).
// Larger values are more recent.
func (p *PerformanceRecord) Period() int {
	return p.Year*12 + (p.Month - 1)
}

// expenditureTolerance absorbs the two-decimal rounding applied to the
// wage and material shares independently.
const expenditureTolerance = 0.02

// CheckConsistency verifies the derived-field relationships consumers rely on.
// Returns nil when the record is consistent.
func (p *PerformanceRecord) CheckConsistency() error {
	if p.CompletedWorks > p.TotalWorks {
		return &ConsistencyError{Field: "completed_works", Reason: "exceeds total_works"}
	}
	if p.OngoingWorks != p.TotalWorks-p.CompletedWorks {
		return &ConsistencyError{Field: "ongoing_works", Reason: "does not equal total_works - completed_works"}
	}
	if p.ActiveJobCards > p.TotalJobCards {
		return &ConsistencyError{Field: "active_job_cards", Reason: "exceeds total_job_cards"}
	}
	diff := p.WageExpenditure + p.MaterialExpenditure - p.TotalExpenditure
	if diff > expenditureTolerance || diff < -expenditureTolerance {
		return &ConsistencyError{Field: "total_expenditure", Reason: "does not match wage + material expenditure"}
	}
	return nil
}

// TranslationEntry is one UI string key with its text per language code.
type TranslationEntry struct {
	Key          string            `json:"key"`
	Translations map[string]string `json:"translations"`
}
