package gradient

import (
	"math"
	"testing"

	"github.com/DeepaliP98/VolVis-Project-individual/pkg/volume"
)

func TestMagnitudeSummary(t *testing.T) {
	// 5x5x5 ramp: 27 interior voxels share one magnitude, the 98 shell
	// voxels are zero.
	dims := volume.Dims{X: 5, Y: 5, Z: 5}
	f := New(volume.LinearRamp(dims, 1, 1.5, 2.5))

	mag := float64(Vec3{1, 1.5, 2.5}.Length())
	s := f.MagnitudeSummary()

	if s.Min != 0 {
		t.Errorf("Min = %v, want 0", s.Min)
	}
	if math.Abs(s.Max-mag) > 1e-6 {
		t.Errorf("Max = %v, want %v", s.Max, mag)
	}
	wantMean := mag * 27 / 125
	if math.Abs(s.Mean-wantMean) > 1e-6 {
		t.Errorf("Mean = %v, want %v", s.Mean, wantMean)
	}
	// Shell voxels outnumber interior ones, so the median is zero while
	// the 95th percentile sits on the interior magnitude.
	if s.Median != 0 {
		t.Errorf("Median = %v, want 0", s.Median)
	}
	if math.Abs(s.P95-mag) > 1e-6 {
		t.Errorf("P95 = %v, want %v", s.P95, mag)
	}
	if s.StdDev <= 0 {
		t.Errorf("StdDev = %v, want > 0", s.StdDev)
	}
}

func TestMagnitudeHistogram(t *testing.T) {
	dims := volume.Dims{X: 10, Y: 10, Z: 10}
	f := New(volume.SolidSphere(dims, 4))

	counts := f.MagnitudeHistogram(8)
	if len(counts) != 8 {
		t.Fatalf("got %d bins, want 8", len(counts))
	}

	total := 0.0
	for _, c := range counts {
		total += c
	}
	if total != float64(dims.Count()) {
		t.Errorf("histogram counts sum to %v, want %d", total, dims.Count())
	}

	// The boundary shell guarantees a populated lowest bin.
	if counts[0] == 0 {
		t.Error("lowest bin is empty despite the zero boundary shell")
	}
}

func TestMagnitudeHistogramFlatField(t *testing.T) {
	// A constant volume has zero gradient everywhere: min == max and all
	// voxels collapse into the first bin.
	f := New(volume.NewGrid(6, 6, 6))

	counts := f.MagnitudeHistogram(4)
	if counts[0] != float64(6*6*6) {
		t.Errorf("first bin = %v, want %d", counts[0], 6*6*6)
	}
	for i, c := range counts[1:] {
		if c != 0 {
			t.Errorf("bin %d = %v, want 0", i+1, c)
		}
	}
}

func TestMagnitudeHistogramBadBins(t *testing.T) {
	f := New(volume.NewGrid(4, 4, 4))
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for non-positive bin count")
		}
	}()
	f.MagnitudeHistogram(0)
}
