// Package volume provides the scalar volume that gradient derivation reads
// from: a dense 3D grid of intensity values with integer-coordinate lookup.
package volume

// Dims holds the integer extents of a volume along each axis.
type Dims struct {
	X, Y, Z int
}

// Count returns the total number of voxels.
func (d Dims) Count() int { return d.X * d.Y * d.Z }

// ScalarVolume is the read contract the gradient pass consumes. Voxel must be
// defined for all coordinates inside Dims; behavior outside is up to the
// implementation.
type ScalarVolume interface {
	Dims() Dims
	Voxel(x, y, z int) float32
}
