package gradient

import (
	"fmt"
	"math"
)

// Mode selects the interpolation strategy for Sample. It is passed per call;
// the field itself carries no sampling state.
type Mode int

const (
	NearestNeighbour Mode = iota
	Linear
	// Cubic is accepted but resolves to Linear: gradient direction is
	// visually tolerant of lower-order reconstruction, so no true cubic
	// kernel is provided.
	Cubic
)

func (m Mode) String() string {
	switch m {
	case NearestNeighbour:
		return "nearest"
	case Linear:
		return "linear"
	case Cubic:
		return "cubic"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Sample returns the gradient at a real-valued coordinate using the given
// interpolation mode. Coordinates outside the sampled region yield the zero
// voxel; an unknown mode is a programmer error and panics.
func (f *Field) Sample(coord Vec3, mode Mode) Voxel {
	switch mode {
	case NearestNeighbour:
		return f.sampleNearest(coord)
	case Linear, Cubic:
		return f.sampleLinear(coord)
	default:
		panic(fmt.Sprintf("gradient: unknown interpolation mode %d", int(mode)))
	}
}

// sampleNearest rounds each component to the nearest voxel, ties rounding up.
// Voxel spacing is assumed to be 1 in all directions.
func (f *Field) sampleNearest(coord Vec3) Voxel {
	if coord.X < 0 || coord.X >= float32(f.dims.X) ||
		coord.Y < 0 || coord.Y >= float32(f.dims.Y) ||
		coord.Z < 0 || coord.Z >= float32(f.dims.Z) {
		return Voxel{}
	}
	return f.GetGradient(int(coord.X+0.5), int(coord.Y+0.5), int(coord.Z+0.5))
}

// sampleLinear is full trilinear reconstruction: a bilinear pass in the XY
// plane at the two bracketing Z planes, then one blend along Z.
//
// The margin check is deliberately one voxel stricter than a plain bounds
// check on every axis; callers rely on the symmetric dead zone at the edges.
func (f *Field) sampleLinear(coord Vec3) Voxel {
	if coord.X-1 < 0 || coord.X+1 >= float32(f.dims.X) ||
		coord.Y-1 < 0 || coord.Y+1 >= float32(f.dims.Y) ||
		coord.Z-1 < 0 || coord.Z+1 >= float32(f.dims.Z) {
		return Voxel{}
	}

	z0 := float32(math.Floor(float64(coord.Z)))
	z1 := float32(math.Ceil(float64(coord.Z)))

	b0 := f.bilinear(coord.X, coord.Y, int(z0))
	b1 := f.bilinear(coord.X, coord.Y, int(z1))

	return blend(b0, b1, coord.Z-z0)
}

// bilinear interpolates within the XY plane at integer z: blend the two rows
// along X first, then blend the row results along Y.
func (f *Field) bilinear(x, y float32, z int) Voxel {
	x0 := int(math.Floor(float64(x)))
	x1 := int(math.Ceil(float64(x)))
	y0 := int(math.Floor(float64(y)))
	y1 := int(math.Ceil(float64(y)))

	a := x - float32(x0)
	b := y - float32(y0)

	row0 := blend(f.GetGradient(x0, y0, z), f.GetGradient(x1, y0, z), a)
	row1 := blend(f.GetGradient(x0, y1, z), f.GetGradient(x1, y1, z), a)

	return blend(row0, row1, b)
}

// blend linearly interpolates the direction vectors and re-derives the
// magnitude from the result. At t=0 it returns g0, at t=1 it returns g1.
// Magnitude is never interpolated on its own; it always stays the length of
// the blended direction.
func blend(g0, g1 Voxel, t float32) Voxel {
	dir := g0.Dir.Add(g1.Dir.Sub(g0.Dir).Scale(t))
	return Voxel{Dir: dir, Magnitude: dir.Length()}
}
