package domain

import "context"

// ReferenceStore holds the State and District catalog.
// Implemented by regions.SQLiteRepository and regions.MongoRepository.
type ReferenceStore interface {
	// ListStates returns all states in insertion order.
	ListStates(ctx context.Context) ([]State, error)

	// CountStates returns the number of stored states.
	CountStates(ctx context.Context) (int64, error)

	// GetState returns one state, or ErrNotFound.
	GetState(ctx context.Context, code string) (*State, error)

	// ListDistricts returns the districts of a state, or ErrNotFound when there are none.
	ListDistricts(ctx context.Context, stateCode string) ([]District, error)

	// ReplaceCatalog deletes every state and district and inserts the given ones.
	ReplaceCatalog(ctx context.Context, states []State, districts []District) error

	// Ping checks that the store is reachable.
	Ping(ctx context.Context) error
}

// PerformanceStore holds monthly performance records keyed by district.
// Implemented by performance.SQLiteRepository and performance.MongoRepository.
type PerformanceStore interface {
	// ListByDistrict returns records newest first, truncated to limit.
	// A non-positive limit returns every record. Returns ErrNotFound when there are none.
	ListByDistrict(ctx context.Context, districtCode string, limit int) ([]PerformanceRecord, error)

	// ReplaceAll deletes every record and inserts the given ones.
	ReplaceAll(ctx context.Context, records []PerformanceRecord) error

	// Count returns the number of stored records.
	Count(ctx context.Context) (int64, error)
}
