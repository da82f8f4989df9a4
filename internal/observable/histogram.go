package observable

import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Histogram is a fixed-width speed histogram: bucket i covers
// [i*Width, (i+1)*Width).
type Histogram struct {
	Width   float64
	Counts  []float64
	Total   int
}

// NewHistogram buckets speeds into numBins buckets spanning [0, maxSpeed).
// Any speed at or beyond maxSpeed falls into the final bucket, matching the
// source simulator's open-ended top bin.
func NewHistogram(speeds []float64, numBins int, maxSpeed float64) Histogram {
	h := Histogram{
		Width:  maxSpeed / float64(numBins),
		Counts: make([]float64, numBins),
	}
	for _, v := range speeds {
		bin := int(v / h.Width)
		if bin >= numBins {
			bin = numBins - 1
		}
		if bin < 0 {
			bin = 0
		}
		h.Counts[bin]++
	}
	h.Total = len(speeds)
	return h
}

// maxwellBoltzmannPDF is the 3-D Maxwell-Boltzmann speed density at
// temperature T for particles of the given mass.
func maxwellBoltzmannPDF(v, mass, temperature float64) float64 {
	kT := BoltzmannConstant * temperature
	coeff := math.Sqrt(2/math.Pi) * math.Pow(mass/kT, 1.5)
	return coeff * v * v * math.Exp(-mass*v*v/(2*kT))
}

// expectedCounts returns the expected bucket occupancy under the
// Maxwell-Boltzmann distribution at temperature, evaluating the PDF at each
// bucket's midpoint and scaling by bucket width and sample count.
func (h Histogram) expectedCounts(mass, temperature float64) []float64 {
	expected := make([]float64, len(h.Counts))
	for i := range expected {
		mid := (float64(i) + 0.5) * h.Width
		expected[i] = maxwellBoltzmannPDF(mid, mass, temperature) * h.Width * float64(h.Total)
	}
	return expected
}

// ChiSquaredMB runs a chi-squared goodness-of-fit test of the histogram
// against the Maxwell-Boltzmann speed distribution at temperature, for
// particles of the given mass. Buckets with fewer than 5 expected counts are
// first merged into the following bucket (see mergeSmallBuckets); the
// statistic and p-value are then computed over the merged buckets, against
// a chi-squared distribution with one less degree of freedom than the
// number of merged buckets.
func (h Histogram) ChiSquaredMB(mass, temperature float64) (statistic, pValue float64) {
	expected := h.expectedCounts(mass, temperature)
	observed, expected := mergeSmallBuckets(h.Counts, expected)

	statistic = stat.ChiSquare(observed, expected)
	dof := float64(len(observed) - 1)
	if dof < 1 {
		return statistic, 1
	}
	dist := distuv.ChiSquared{K: dof}
	pValue = 1 - dist.CDF(statistic)
	return statistic, pValue
}

// mergeSmallBuckets folds any bucket with expected count below 5 into the
// next bucket, keeping observed/expected aligned. The last bucket has no
// next bucket, so the final merged bucket may still expect fewer than 5.
func mergeSmallBuckets(observed, expected []float64) ([]float64, []float64) {
	var mergedObs, mergedExp []float64
	var pendingObs, pendingExp float64
	hasPending := false

	for i := range expected {
		pendingObs += observed[i]
		pendingExp += expected[i]
		hasPending = true
		if pendingExp >= 5 || i == len(expected)-1 {
			mergedObs = append(mergedObs, pendingObs)
			mergedExp = append(mergedExp, pendingExp)
			pendingObs, pendingExp = 0, 0
			hasPending = false
		}
	}
	if hasPending {
		mergedObs = append(mergedObs, pendingObs)
		mergedExp = append(mergedExp, pendingExp)
	}
	return mergedObs, mergedExp
}
