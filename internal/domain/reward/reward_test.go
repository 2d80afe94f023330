package reward

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculator_Points(t *testing.T) {
	calc := NewCalculator(10, 50)

	assert.Equal(t, 0, calc.Points(0))
	assert.Equal(t, 10, calc.Points(1))
	assert.Equal(t, 70, calc.Points(7))
}

func TestCalculator_CarbonSaved(t *testing.T) {
	calc := NewCalculator(10, 50)

	assert.Equal(t, 0, calc.CarbonSaved(0))
	assert.Equal(t, 150, calc.CarbonSaved(3))
}

func TestCalculator_Defaults(t *testing.T) {
	calc := NewCalculator(0, 0)

	assert.Equal(t, 10, calc.Points(1))
	assert.Equal(t, 50, calc.CarbonSaved(1))
}

func TestCalculator_Deterministic(t *testing.T) {
	calc := NewCalculator(7, 13)

	// Identical input must yield identical output on repeated calls.
	for i := 0; i < 3; i++ {
		assert.Equal(t, 35, calc.Points(5))
		assert.Equal(t, 65, calc.CarbonSaved(5))
	}
}

func TestDominantType(t *testing.T) {
	tests := []struct {
		name   string
		labels []string
		want   string
	}{
		{name: "empty", labels: nil, want: ""},
		{name: "single", labels: []string{"bottle"}, want: "bottle"},
		{name: "clear majority", labels: []string{"cup", "bottle", "bottle"}, want: "bottle"},
		{
			name:   "tie broken by first occurrence",
			labels: []string{"A", "B", "A", "B"},
			want:   "A",
		},
		{
			name:   "later label overtakes",
			labels: []string{"can", "cup", "cup"},
			want:   "cup",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DominantType(tt.labels))
		})
	}
}
