// Package regions provides the state and district reference catalog and its stores.
package regions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/aftab0khan021/mgnrega/internal/database"
	"github.com/aftab0khan021/mgnrega/internal/domain"
	"github.com/rs/zerolog"
)

// SQLiteRepository stores the reference catalog in the states and districts tables.
// Listings follow insertion order (seq).
type SQLiteRepository struct {
	db  *sql.DB
	log zerolog.Logger
}

const stateColumns = `state_code, state_name, state_name_hi`

const districtColumns = `district_code, district_name, district_name_hi, state_code, state_name`

// NewSQLiteRepository creates a reference store over an open SQLite connection
func NewSQLiteRepository(db *sql.DB, log zerolog.Logger) *SQLiteRepository {
	return &SQLiteRepository{
		db:  db,
		log: log.With().Str("repository", "regions").Logger(),
	}
}

// ListStates returns every state in insertion order. An empty store yields an empty slice.
func (r *SQLiteRepository) ListStates(ctx context.Context) ([]domain.State, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+stateColumns+" FROM states ORDER BY seq")
	if err != nil {
		return nil, domain.StorageError("list states", err)
	}
	defer rows.Close()

	states := []domain.State{}
	for rows.Next() {
		var s domain.State
		if err := rows.Scan(&s.Code, &s.Name, &s.NameLocal); err != nil {
			return nil, domain.StorageError("scan state", err)
		}
		states = append(states, s)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.StorageError("list states", err)
	}

	return states, nil
}

// CountStates returns the number of stored states
func (r *SQLiteRepository) CountStates(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM states").Scan(&n); err != nil {
		return 0, domain.StorageError("count states", err)
	}
	return n, nil
}

// GetState returns the state with the given code, or domain.ErrNotFound
func (r *SQLiteRepository) GetState(ctx context.Context, code string) (*domain.State, error) {
	var s domain.State
	err := r.db.QueryRowContext(ctx, "SELECT "+stateColumns+" FROM states WHERE state_code = ?", code).
		Scan(&s.Code, &s.Name, &s.NameLocal)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("state %q: %w", code, domain.ErrNotFound)
	}
	if err != nil {
		return nil, domain.StorageError("get state", err)
	}
	return &s, nil
}

// ListDistricts returns the districts of a state in insertion order.
// Returns domain.ErrNotFound when none match, whether or not the state exists.
func (r *SQLiteRepository) ListDistricts(ctx context.Context, stateCode string) ([]domain.District, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+districtColumns+" FROM districts WHERE state_code = ? ORDER BY seq", stateCode)
	if err != nil {
		return nil, domain.StorageError("list districts", err)
	}
	defer rows.Close()

	var districts []domain.District
	for rows.Next() {
		var d domain.District
		if err := rows.Scan(&d.Code, &d.Name, &d.NameLocal, &d.StateCode, &d.StateName); err != nil {
			return nil, domain.StorageError("scan district", err)
		}
		districts = append(districts, d)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.StorageError("list districts", err)
	}

	if len(districts) == 0 {
		return nil, fmt.Errorf("districts for state %q: %w", stateCode, domain.ErrNotFound)
	}
	return districts, nil
}

// ReplaceCatalog deletes all states and districts and inserts the given ones in one transaction.
func (r *SQLiteRepository) ReplaceCatalog(ctx context.Context, states []domain.State, districts []domain.District) error {
	err := database.WithTransaction(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM states"); err != nil {
			return fmt.Errorf("failed to clear states: %w", err)
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM districts"); err != nil {
			return fmt.Errorf("failed to clear districts: %w", err)
		}

		stateStmt, err := tx.PrepareContext(ctx, "INSERT INTO states ("+stateColumns+") VALUES (?, ?, ?)")
		if err != nil {
			return fmt.Errorf("failed to prepare state insert: %w", err)
		}
		defer stateStmt.Close()

		for _, s := range states {
			if _, err := stateStmt.ExecContext(ctx, s.Code, s.Name, s.NameLocal); err != nil {
				return fmt.Errorf("failed to insert state %s: %w", s.Code, err)
			}
		}

		districtStmt, err := tx.PrepareContext(ctx, "INSERT INTO districts ("+districtColumns+") VALUES (?, ?, ?, ?, ?)")
		if err != nil {
			return fmt.Errorf("failed to prepare district insert: %w", err)
		}
		defer districtStmt.Close()

		for _, d := range districts {
			if _, err := districtStmt.ExecContext(ctx, d.Code, d.Name, d.NameLocal, d.StateCode, d.StateName); err != nil {
				return fmt.Errorf("failed to insert district %s: %w", d.Code, err)
			}
		}
		return nil
	})
	if err != nil {
		return domain.StorageError("replace catalog", err)
	}

	r.log.Debug().
		Int("states", len(states)).
		Int("districts", len(districts)).
		Msg("Reference catalog replaced")

	return nil
}

// Ping checks the connection
func (r *SQLiteRepository) Ping(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return domain.StorageError("ping", err)
	}
	return nil
}
