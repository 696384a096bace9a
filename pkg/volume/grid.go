package volume

import "fmt"

// Grid is a dense in-memory ScalarVolume. Values are stored in a flat slice
// with x varying fastest, then y, then z.
type Grid struct {
	dims Dims
	data []float32
}

// NewGrid allocates a zero-filled grid with the given extents.
func NewGrid(x, y, z int) *Grid {
	if x < 0 || y < 0 || z < 0 {
		panic(fmt.Sprintf("invalid grid extents: %dx%dx%d", x, y, z))
	}
	d := Dims{X: x, Y: y, Z: z}
	return &Grid{
		dims: d,
		data: make([]float32, d.Count()),
	}
}

func (g *Grid) Dims() Dims { return g.dims }

func (g *Grid) index(x, y, z int) int {
	return x + g.dims.X*(y+g.dims.Y*z)
}

// Voxel returns the value at integer coordinates without bounds checking.
// Callers must keep coordinates inside Dims.
func (g *Grid) Voxel(x, y, z int) float32 {
	return g.data[g.index(x, y, z)]
}

// At is the checked counterpart of Voxel.
func (g *Grid) At(x, y, z int) (float32, error) {
	if x < 0 || x >= g.dims.X {
		return 0.0, fmt.Errorf("x index out of range, must be between 0 and %d", g.dims.X-1)
	}
	if y < 0 || y >= g.dims.Y {
		return 0.0, fmt.Errorf("y index out of range, must be between 0 and %d", g.dims.Y-1)
	}
	if z < 0 || z >= g.dims.Z {
		return 0.0, fmt.Errorf("z index out of range, must be between 0 and %d", g.dims.Z-1)
	}
	return g.data[g.index(x, y, z)], nil
}

// Set stores a value at integer coordinates.
func (g *Grid) Set(x, y, z int, v float32) {
	if x < 0 || x >= g.dims.X {
		panic(fmt.Sprintf("invalid x-index: %d", x))
	}
	if y < 0 || y >= g.dims.Y {
		panic(fmt.Sprintf("invalid y-index: %d", y))
	}
	if z < 0 || z >= g.dims.Z {
		panic(fmt.Sprintf("invalid z-index: %d", z))
	}
	g.data[g.index(x, y, z)] = v
}
