package testing

import (
	"context"
	"sort"
	"sync"

	"github.com/aftab0khan021/mgnrega/internal/domain"
)

// MockReferenceStore is an in-memory domain.ReferenceStore for testing
type MockReferenceStore struct {
	mu        sync.RWMutex
	states    []domain.State
	districts []domain.District
	err       error

	ReplaceCalls int
}

// NewMockReferenceStore creates an empty mock reference store
func NewMockReferenceStore() *MockReferenceStore {
	return &MockReferenceStore{}
}

// SetError makes every subsequent call fail with err (nil clears it)
func (m *MockReferenceStore) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Replacements returns how many times ReplaceCatalog ran
func (m *MockReferenceStore) Replacements() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.ReplaceCalls
}

func (m *MockReferenceStore) ListStates(ctx context.Context) ([]domain.State, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.err != nil {
		return nil, m.err
	}
	return append([]domain.State(nil), m.states...), nil
}

func (m *MockReferenceStore) CountStates(ctx context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.err != nil {
		return 0, m.err
	}
	return int64(len(m.states)), nil
}

func (m *MockReferenceStore) GetState(ctx context.Context, code string) (*domain.State, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.states {
		if m.states[i].Code == code {
			s := m.states[i]
			return &s, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *MockReferenceStore) ListDistricts(ctx context.Context, stateCode string) ([]domain.District, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.err != nil {
		return nil, m.err
	}
	var out []domain.District
	for _, d := range m.districts {
		if d.StateCode == stateCode {
			out = append(out, d)
		}
	}
	if len(out) == 0 {
		return nil, domain.ErrNotFound
	}
	return out, nil
}

func (m *MockReferenceStore) ReplaceCatalog(ctx context.Context, states []domain.State, districts []domain.District) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.ReplaceCalls++
	m.states = append([]domain.State(nil), states...)
	m.districts = append([]domain.District(nil), districts...)
	return nil
}

func (m *MockReferenceStore) Ping(ctx context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.err
}

// MockPerformanceStore is an in-memory domain.PerformanceStore for testing
type MockPerformanceStore struct {
	mu      sync.RWMutex
	records []domain.PerformanceRecord
	err     error
}

// NewMockPerformanceStore creates an empty mock performance store
func NewMockPerformanceStore() *MockPerformanceStore {
	return &MockPerformanceStore{}
}

// SetError makes every subsequent call fail with err (nil clears it)
func (m *MockPerformanceStore) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Records returns a copy of everything stored
func (m *MockPerformanceStore) Records() []domain.PerformanceRecord {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]domain.PerformanceRecord(nil), m.records...)
}

func (m *MockPerformanceStore) ListByDistrict(ctx context.Context, districtCode string, limit int) ([]domain.PerformanceRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.err != nil {
		return nil, m.err
	}
	var out []domain.PerformanceRecord
	for _, r := range m.records {
		if r.DistrictCode == districtCode {
			out = append(out, r)
		}
	}
	if len(out) == 0 {
		return nil, domain.ErrNotFound
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Period() > out[j].Period() })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *MockPerformanceStore) ReplaceAll(ctx context.Context, records []domain.PerformanceRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.records = append([]domain.PerformanceRecord(nil), records...)
	return nil
}

func (m *MockPerformanceStore) Count(ctx context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.err != nil {
		return 0, m.err
	}
	return int64(len(m.records)), nil
}
