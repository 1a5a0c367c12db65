package stats

import (
	"math"
	"sort"
)

// DetectOutliers returns the indices of y lying on or outside the Tukey fences built from the
// lowerPerc and upperPerc percentiles, widened by tukeyFactor times their range.
func DetectOutliers(y []float64, lowerPerc, upperPerc, tukeyFactor float64) []int {
	if len(y) == 0 {
		return nil
	}
	lowerPerc = math.Max(lowerPerc, 0.0)
	upperPerc = math.Min(upperPerc, 1.0)
	tukeyFactor = math.Max(tukeyFactor, 0.0)

	yCopy := make([]float64, len(y))
	copy(yCopy, y)
	sort.Float64s(yCopy)
	lowerIdx := int(math.Floor(float64(len(yCopy)) * lowerPerc))
	upperIdx := int(math.Ceil(float64(len(yCopy))*upperPerc)) - 1
	lowerIdx = min(max(lowerIdx, 0), len(yCopy)-1)
	upperIdx = min(max(upperIdx, lowerIdx), len(yCopy)-1)

	lower := yCopy[lowerIdx]
	upper := yCopy[upperIdx]
	innerRange := upper - lower
	if innerRange == 0 {
		return nil
	}
	lower -= innerRange * tukeyFactor
	upper += innerRange * tukeyFactor

	var outlierIdx []int
	for i := 0; i < len(y); i++ {
		if y[i] >= upper || y[i] <= lower {
			outlierIdx = append(outlierIdx, i)
		}
	}
	return outlierIdx
}
