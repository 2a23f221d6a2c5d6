// Package performance provides storage and aggregation of monthly district performance records.
package performance

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/aftab0khan021/mgnrega/internal/database"
	"github.com/aftab0khan021/mgnrega/internal/domain"
	"github.com/rs/zerolog"
)

// SQLiteRepository stores performance records in the performances table.
// updated_at is persisted as unix milliseconds.
type SQLiteRepository struct {
	db  *sql.DB
	log zerolog.Logger
}

// performanceColumns is the column list shared by inserts and selects.
// Order must match scanRecord() and insertArgs().
const performanceColumns = `id, state_code, state_name, district_code, district_name, month, year,
total_job_cards, active_job_cards, total_workers, active_workers,
person_days_generated, average_days_per_household, women_person_days, sc_person_days, st_person_days,
total_budget_allocated, total_expenditure, wage_expenditure, material_expenditure, average_wage_per_day,
total_works, completed_works, ongoing_works, updated_at`

const insertPerformanceSQL = `INSERT INTO performances (` + performanceColumns + `)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

// NewSQLiteRepository creates a performance store over an open SQLite connection
func NewSQLiteRepository(db *sql.DB, log zerolog.Logger) *SQLiteRepository {
	return &SQLiteRepository{
		db:  db,
		log: log.With().Str("repository", "performance").Logger(),
	}
}

// ListByDistrict returns the district's records ordered by year then month, newest first.
// A non-positive limit returns all of them. Returns domain.ErrNotFound when there are none;
// the district code itself is not checked against the catalog.
func (r *SQLiteRepository) ListByDistrict(ctx context.Context, districtCode string, limit int) ([]domain.PerformanceRecord, error) {
	query := "SELECT " + performanceColumns + " FROM performances WHERE district_code = ? ORDER BY year DESC, month DESC"
	args := []interface{}{districtCode}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, domain.StorageError("list performance", err)
	}
	defer rows.Close()

	var records []domain.PerformanceRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, domain.StorageError("scan performance", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.StorageError("list performance", err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("performance for district %q: %w", districtCode, domain.ErrNotFound)
	}
	return records, nil
}

// ReplaceAll deletes every record and inserts the given ones in one transaction
func (r *SQLiteRepository) ReplaceAll(ctx context.Context, records []domain.PerformanceRecord) error {
	err := database.WithTransaction(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM performances"); err != nil {
			return fmt.Errorf("failed to clear performances: %w", err)
		}

		stmt, err := tx.PrepareContext(ctx, insertPerformanceSQL)
		if err != nil {
			return fmt.Errorf("failed to prepare performance insert: %w", err)
		}
		defer stmt.Close()

		for i := range records {
			if _, err := stmt.ExecContext(ctx, insertArgs(&records[i])...); err != nil {
				return fmt.Errorf("failed to insert performance %s: %w", records[i].ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return domain.StorageError("replace performance", err)
	}

	r.log.Debug().Int("records", len(records)).Msg("Performance records replaced")
	return nil
}

// Count returns the number of stored records
func (r *SQLiteRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM performances").Scan(&n); err != nil {
		return 0, domain.StorageError("count performance", err)
	}
	return n, nil
}

func insertArgs(p *domain.PerformanceRecord) []interface{} {
	return []interface{}{
		p.ID, p.StateCode, p.StateName, p.DistrictCode, p.DistrictName, p.Month, p.Year,
		p.TotalJobCards, p.ActiveJobCards, p.TotalWorkers, p.ActiveWorkers,
		p.PersonDaysGenerated, p.AverageDaysPerHousehold, p.WomenPersonDays, p.SCPersonDays, p.STPersonDays,
		p.TotalBudgetAllocated, p.TotalExpenditure, p.WageExpenditure, p.MaterialExpenditure, p.AverageWagePerDay,
		p.TotalWorks, p.CompletedWorks, p.OngoingWorks, p.UpdatedAt.UnixMilli(),
	}
}

func scanRecord(rows *sql.Rows) (domain.PerformanceRecord, error) {
	var p domain.PerformanceRecord
	var updatedAt int64

	err := rows.Scan(
		&p.ID, &p.StateCode, &p.StateName, &p.DistrictCode, &p.DistrictName, &p.Month, &p.Year,
		&p.TotalJobCards, &p.ActiveJobCards, &p.TotalWorkers, &p.ActiveWorkers,
		&p.PersonDaysGenerated, &p.AverageDaysPerHousehold, &p.WomenPersonDays, &p.SCPersonDays, &p.STPersonDays,
		&p.TotalBudgetAllocated, &p.TotalExpenditure, &p.WageExpenditure, &p.MaterialExpenditure, &p.AverageWagePerDay,
		&p.TotalWorks, &p.CompletedWorks, &p.OngoingWorks, &updatedAt,
	)
	if err != nil {
		return p, err
	}

	p.UpdatedAt = time.UnixMilli(updatedAt).UTC()
	return p, nil
}
