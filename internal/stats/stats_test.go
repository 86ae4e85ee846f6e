package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeGradeDegenerateScale(t *testing.T) {
	assert.Equal(t, 0.0, NormalizeGrade(7, 5, 5))
	assert.Equal(t, 0.0, NormalizeGrade(0, 0, 0))
	assert.Equal(t, 0.0, NormalizeGrade(-3, 10, 10))
}

func TestNormalizeGradeBounds(t *testing.T) {
	assert.Equal(t, 0.0, NormalizeGrade(2, 2, 10))
	assert.Equal(t, 100.0, NormalizeGrade(10, 2, 10))
	assert.Equal(t, 50.0, NormalizeGrade(6, 2, 10))
}

func TestNormalizeGradeNegativeMin(t *testing.T) {
	assert.Equal(t, 75.0, NormalizeGrade(5, -10, 10))
}

func TestPercentile(t *testing.T) {
	tests := []struct {
		name       string
		value      float64
		population []float64
		want       int
	}{
		{"empty population", 42, nil, 0},
		{"single member equal", 5, []float64{5}, 0},
		{"single member below", 5, []float64{1}, 100},
		{"single member above", 1, []float64{5}, 0},
		{"four of five below", 5, []float64{1, 2, 3, 4, 10}, 80},
		{"ties not counted", 5, []float64{5, 5, 5}, 0},
		{"two of three below", 75, []float64{60, 70, 80}, 67},
		{"half of population below", 70, []float64{60, 61, 62, 63, 71, 72, 73, 74}, 50},
		{"half percent boundary rounds up", 70, []float64{60, 71, 72, 73, 74, 75, 76, 77}, 13},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Percentile(tt.value, tt.population))
		})
	}
}

func TestMean(t *testing.T) {
	assert.Equal(t, 0.0, Mean(nil))
	assert.Equal(t, 70.0, Mean([]float64{60, 70, 80}))
	assert.InDelta(t, 66.666, Mean([]float64{60, 70, 70}), 0.001)
}

func TestRound1(t *testing.T) {
	assert.Equal(t, 83.3, Round1(83.333))
	assert.Equal(t, 50.0, Round1(50.0))
	assert.Equal(t, 66.7, Round1(66.666))
	assert.Equal(t, 0.1, Round1(0.05))
}
