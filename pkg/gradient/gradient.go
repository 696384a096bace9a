// Package gradient derives a per-voxel gradient field from a scalar volume
// via central differences and reconstructs gradients at arbitrary real-valued
// coordinates with selectable interpolation.
package gradient

import (
	"github.com/DeepaliP98/VolVis-Project-individual/pkg/volume"
)

// Voxel is one cell of the gradient field: a direction vector and its
// magnitude. Magnitude is always the length of Dir; it is computed once at
// construction (or re-derived after blending), never stored independently.
type Voxel struct {
	Dir       Vec3
	Magnitude float32
}

// Field holds one gradient voxel per cell of the source volume, plus the
// field-wide magnitude bounds. It is immutable after New and safe for
// concurrent reads.
type Field struct {
	dims volume.Dims
	data []Voxel

	minMagnitude float32
	maxMagnitude float32
}

// New computes the gradient field for the given volume in a single pass.
//
// Interior voxels get the central-difference gradient; the one-voxel boundary
// shell keeps the zero value, since a symmetric difference needs a neighbor
// on each side. The volume must be non-empty.
func New(v volume.ScalarVolume) *Field {
	dims := v.Dims()
	if dims.Count() == 0 {
		panic("gradient: volume has no voxels")
	}

	f := &Field{
		dims: dims,
		data: make([]Voxel, dims.Count()),
	}

	parallelRange(1, dims.Z-1, func(z int) {
		for y := 1; y < dims.Y-1; y++ {
			for x := 1; x < dims.X-1; x++ {
				gx := (v.Voxel(x+1, y, z) - v.Voxel(x-1, y, z)) / 2
				gy := (v.Voxel(x, y+1, z) - v.Voxel(x, y-1, z)) / 2
				gz := (v.Voxel(x, y, z+1) - v.Voxel(x, y, z-1)) / 2

				dir := Vec3{gx, gy, gz}
				f.data[x+dims.X*(y+dims.Y*z)] = Voxel{Dir: dir, Magnitude: dir.Length()}
			}
		}
	})

	// The reduction runs over every voxel, boundary shell included, so a
	// field with any flat region has minMagnitude == 0.
	f.minMagnitude = f.data[0].Magnitude
	f.maxMagnitude = f.data[0].Magnitude
	for i := 1; i < len(f.data); i++ {
		m := f.data[i].Magnitude
		if m < f.minMagnitude {
			f.minMagnitude = m
		}
		if m > f.maxMagnitude {
			f.maxMagnitude = m
		}
	}

	return f
}

// Dims returns the extents of the field.
func (f *Field) Dims() volume.Dims { return f.dims }

// MinMagnitude returns the smallest gradient magnitude in the field.
func (f *Field) MinMagnitude() float32 { return f.minMagnitude }

// MaxMagnitude returns the largest gradient magnitude in the field.
func (f *Field) MaxMagnitude() float32 { return f.maxMagnitude }

// GetGradient returns the stored voxel at integer coordinates. No bounds
// checking: every caller in this package validates coordinates first, and
// this method is the single place that maps (x,y,z) to the flat index.
func (f *Field) GetGradient(x, y, z int) Voxel {
	return f.data[x+f.dims.X*(y+f.dims.Y*z)]
}
