package formatting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeOHLC(t *testing.T) {
	raw := [][]float64{
		{100, 1, 2, 0.5, 1.5},
		{100, 1, 2, 0.5, 1.6},
		{200, 2, 3, 1, 2},
	}

	points := NormalizeOHLC(raw)
	require.Len(t, points, 2)
	assert.Equal(t, OHLCPoint{Time: 100, Open: 1, High: 2, Low: 0.5, Close: 1.5}, points[0])
	assert.Equal(t, int64(200), points[1].Time)
}

func TestNormalizeOHLC_EdgeCases(t *testing.T) {
	tests := []struct {
		name          string
		raw           [][]float64
		expectedTimes []int64
	}{
		{"nil", nil, []int64{}},
		{"empty", [][]float64{}, []int64{}},
		{"run of duplicates", [][]float64{{1, 0, 0, 0, 0}, {1, 0, 0, 0, 1}, {1, 0, 0, 0, 2}, {2, 0, 0, 0, 0}}, []int64{1, 2}},
		{"does not sort", [][]float64{{300, 0, 0, 0, 0}, {100, 0, 0, 0, 0}, {200, 0, 0, 0, 0}}, []int64{300, 100, 200}},
		{"non adjacent duplicates kept", [][]float64{{1, 0, 0, 0, 0}, {2, 0, 0, 0, 0}, {1, 0, 0, 0, 0}}, []int64{1, 2, 1}},
		{"short rows skipped", [][]float64{{1, 0, 0}, {2, 0, 0, 0, 0}, {}}, []int64{2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points := NormalizeOHLC(tt.raw)
			times := make([]int64, 0, len(points))
			for _, p := range points {
				times = append(times, p.Time)
			}
			assert.Equal(t, tt.expectedTimes, times)
		})
	}
}
