package performance

import (
	"testing"

	"github.com/aftab0khan021/mgnrega/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestSortNewestFirst(t *testing.T) {
	tests := []struct {
		name  string
		input [][2]int // year, month
		want  [][2]int
	}{
		{
			name:  "across year boundary",
			input: [][2]int{{2024, 12}, {2025, 1}, {2024, 11}, {2025, 2}},
			want:  [][2]int{{2025, 2}, {2025, 1}, {2024, 12}, {2024, 11}},
		},
		{
			name:  "month ten sorts after month nine",
			input: [][2]int{{2025, 9}, {2025, 10}, {2025, 1}},
			want:  [][2]int{{2025, 10}, {2025, 9}, {2025, 1}},
		},
		{
			name:  "empty",
			input: nil,
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := make([]domain.PerformanceRecord, len(tt.input))
			for i, ym := range tt.input {
				records[i] = domain.PerformanceRecord{Year: ym[0], Month: ym[1]}
			}

			SortNewestFirst(records)

			var got [][2]int
			for _, r := range records {
				got = append(got, [2]int{r.Year, r.Month})
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSortNewestFirst_StableForSamePeriod(t *testing.T) {
	records := []domain.PerformanceRecord{
		{ID: "a", Year: 2025, Month: 5},
		{ID: "b", Year: 2025, Month: 6},
		{ID: "c", Year: 2025, Month: 5},
	}

	SortNewestFirst(records)

	assert.Equal(t, "b", records[0].ID)
	assert.Equal(t, "a", records[1].ID)
	assert.Equal(t, "c", records[2].ID)
}
