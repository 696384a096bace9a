package main

import (
	"image/color"
	"math"
)

// magnitudeColor maps a gradient magnitude onto a blue-cyan-green-yellow-red
// scientific ramp spanning [minVal, maxVal].
func magnitudeColor(val, minVal, maxVal float32) color.RGBA {
	val = min(max(val, minVal), maxVal-0.0001)
	d := maxVal - minVal
	if d <= 0 {
		val = 0.5
	} else {
		val = (val - minVal) / d
	}

	const m = float32(0.25)
	seg := float32(math.Floor(float64(val / m)))
	s := (val - seg*m) / m

	var r, g, b float32
	switch seg {
	case 0:
		r, g, b = 0.0, s, 1.0
	case 1:
		r, g, b = 0.0, 1.0, 1.0-s
	case 2:
		r, g, b = s, 1.0, 0.0
	case 3:
		r, g, b = 1.0, 1.0-s, 0.0
	}

	return color.RGBA{
		R: uint8(255 * r),
		G: uint8(255 * g),
		B: uint8(255 * b),
		A: 0xff,
	}
}
