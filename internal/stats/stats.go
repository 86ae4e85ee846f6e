// Package stats holds the pure grade arithmetic used by the progress
// metrics engine. Everything here is side-effect free and safe to call
// with degenerate inputs.
package stats

import "math"

// NormalizeGrade rescales a raw grade from its native [min,max] bounds onto
// the 0-100 scale. A degenerate scale (max == min) yields 0. No rounding is
// applied here; callers round for display.
func NormalizeGrade(grade, gradeMin, gradeMax float64) float64 {
	if gradeMax == gradeMin {
		return 0
	}
	return (grade - gradeMin) / (gradeMax - gradeMin) * 100
}

// Percentile returns the fraction-below percentile of value within the
// population, expressed 0-100. Members equal to value do not count as below.
// Rounding is half away from zero. An empty population yields 0.
func Percentile(value float64, population []float64) int {
	if len(population) == 0 {
		return 0
	}

	below := 0
	for _, v := range population {
		if v < value {
			below++
		}
	}

	return int(math.Round(float64(below) / float64(len(population)) * 100))
}

// Mean returns the arithmetic mean of values, or 0 for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sum := 0.0
	for _, v := range values {
		sum += v
	}

	return sum / float64(len(values))
}

// Round1 rounds to one decimal place, half away from zero.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
