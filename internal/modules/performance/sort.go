package performance

import (
	"sort"

	"github.com/aftab0khan021/mgnrega/internal/domain"
)

// SortNewestFirst orders records by (year, month) descending in place.
// Records for the same month keep their relative order.
func SortNewestFirst(records []domain.PerformanceRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Period() > records[j].Period()
	})
}
