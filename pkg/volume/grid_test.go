package volume

import (
	"testing"
)

func TestGridRoundtrip(t *testing.T) {
	g := NewGrid(4, 3, 2)

	n := 0
	for z := 0; z < 2; z++ {
		for y := 0; y < 3; y++ {
			for x := 0; x < 4; x++ {
				g.Set(x, y, z, float32(n))
				n++
			}
		}
	}

	n = 0
	for z := 0; z < 2; z++ {
		for y := 0; y < 3; y++ {
			for x := 0; x < 4; x++ {
				if got := g.Voxel(x, y, z); got != float32(n) {
					t.Errorf("Voxel(%d,%d,%d) = %v, want %d", x, y, z, got, n)
				}
				n++
			}
		}
	}
}

func TestGridAt(t *testing.T) {
	g := NewGrid(3, 3, 3)
	g.Set(1, 2, 0, 7.5)

	if v, err := g.At(1, 2, 0); err != nil || v != 7.5 {
		t.Errorf("At(1,2,0) = %v, %v; want 7.5, nil", v, err)
	}

	bad := [][3]int{
		{-1, 0, 0}, {3, 0, 0},
		{0, -1, 0}, {0, 3, 0},
		{0, 0, -1}, {0, 0, 3},
	}
	for _, c := range bad {
		if _, err := g.At(c[0], c[1], c[2]); err == nil {
			t.Errorf("At(%d,%d,%d): expected out-of-range error", c[0], c[1], c[2])
		}
	}
}

func TestGridSetPanicsOutOfRange(t *testing.T) {
	g := NewGrid(3, 3, 3)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for out-of-range Set")
		}
	}()
	g.Set(0, 3, 0, 1)
}

func TestNewGridPanicsOnNegativeExtent(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for negative extent")
		}
	}()
	NewGrid(4, -1, 4)
}

func TestLinearRamp(t *testing.T) {
	dims := Dims{X: 4, Y: 4, Z: 4}
	g := LinearRamp(dims, 2, 3, 5)

	for z := 0; z < dims.Z; z++ {
		for y := 0; y < dims.Y; y++ {
			for x := 0; x < dims.X; x++ {
				want := 2*float32(x) + 3*float32(y) + 5*float32(z)
				if got := g.Voxel(x, y, z); got != want {
					t.Errorf("ramp(%d,%d,%d) = %v, want %v", x, y, z, got, want)
				}
			}
		}
	}
}

func TestSolidSphere(t *testing.T) {
	dims := Dims{X: 17, Y: 17, Z: 17}
	g := SolidSphere(dims, 6)

	center := g.Voxel(8, 8, 8)
	if center != 1.0 {
		t.Errorf("center density = %v, want 1", center)
	}
	if corner := g.Voxel(0, 0, 0); corner != 0 {
		t.Errorf("corner density = %v, want 0", corner)
	}

	// Density must fall off monotonically along an axis from the center.
	prev := center
	for x := 9; x < dims.X; x++ {
		cur := g.Voxel(x, 8, 8)
		if cur > prev {
			t.Errorf("density rises from %v to %v at x=%d", prev, cur, x)
		}
		prev = cur
	}
	if at := g.Voxel(14, 8, 8); at != 0 {
		t.Errorf("density at radius = %v, want 0", at)
	}
}
