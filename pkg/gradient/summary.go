package gradient

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Summary describes the distribution of gradient magnitudes across the field.
// Renderers use it to place transfer-function control points without scanning
// the raw data.
type Summary struct {
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64
	Median float64
	P95    float64
}

// MagnitudeSummary computes distribution statistics over every voxel's
// magnitude, boundary shell included.
func (f *Field) MagnitudeSummary() Summary {
	mags := f.magnitudes()
	sort.Float64s(mags)

	mean, std := stat.MeanStdDev(mags, nil)
	return Summary{
		Min:    mags[0],
		Max:    mags[len(mags)-1],
		Mean:   mean,
		StdDev: std,
		Median: stat.Quantile(0.5, stat.Empirical, mags, nil),
		P95:    stat.Quantile(0.95, stat.Empirical, mags, nil),
	}
}

// MagnitudeHistogram counts voxels into bins of equal width spanning
// [MinMagnitude, MaxMagnitude]. The bin count must be positive.
func (f *Field) MagnitudeHistogram(bins int) []float64 {
	if bins <= 0 {
		panic("gradient: histogram needs at least one bin")
	}

	mags := f.magnitudes()
	sort.Float64s(mags)

	lo := float64(f.minMagnitude)
	hi := float64(f.maxMagnitude)
	if hi == lo {
		// Degenerate flat field: every voxel lands in the first bin.
		counts := make([]float64, bins)
		counts[0] = float64(len(mags))
		return counts
	}

	dividers := make([]float64, bins+1)
	width := (hi - lo) / float64(bins)
	for i := range dividers {
		dividers[i] = lo + float64(i)*width
	}
	// stat.Histogram requires the top divider to exceed every sample, so
	// nudge it one ulp past the maximum magnitude.
	dividers[bins] = math.Nextafter(hi, math.Inf(1))

	return stat.Histogram(nil, dividers, mags, nil)
}

func (f *Field) magnitudes() []float64 {
	mags := make([]float64, len(f.data))
	for i, v := range f.data {
		mags[i] = float64(v.Magnitude)
	}
	return mags
}
