package volume

import "math"

// LinearRamp builds a grid where each voxel holds gx*x + gy*y + gz*z. Its
// analytic gradient is constant, which makes it the standard input for
// checking the central-difference pass.
func LinearRamp(dims Dims, gx, gy, gz float32) *Grid {
	g := NewGrid(dims.X, dims.Y, dims.Z)
	for z := 0; z < dims.Z; z++ {
		for y := 0; y < dims.Y; y++ {
			for x := 0; x < dims.X; x++ {
				g.Set(x, y, z, gx*float32(x)+gy*float32(y)+gz*float32(z))
			}
		}
	}
	return g
}

// SolidSphere builds a grid holding a spherical density blob centered in the
// volume: full intensity at the center, falling off linearly to zero at the
// given radius. A useful demo input since its gradient points radially.
func SolidSphere(dims Dims, radius float32) *Grid {
	g := NewGrid(dims.X, dims.Y, dims.Z)
	cx := float32(dims.X-1) / 2
	cy := float32(dims.Y-1) / 2
	cz := float32(dims.Z-1) / 2
	for z := 0; z < dims.Z; z++ {
		for y := 0; y < dims.Y; y++ {
			for x := 0; x < dims.X; x++ {
				dx := float32(x) - cx
				dy := float32(y) - cy
				dz := float32(z) - cz
				dist := float32(math.Sqrt(float64(dx*dx + dy*dy + dz*dz)))
				if dist < radius {
					g.Set(x, y, z, 1.0-dist/radius)
				}
			}
		}
	}
	return g
}
