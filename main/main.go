package main

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/DeepaliP98/VolVis-Project-individual/pkg/gradient"
	"github.com/DeepaliP98/VolVis-Project-individual/pkg/volume"
)

const (
	screenWidth  = 800
	screenHeight = 800
	volumeSize   = 64
	pixelScale   = 8 // screen pixels per voxel
	// Stop one voxel short so nearest-neighbour rounding at the right and
	// bottom edges stays inside the volume.
	viewSize = (volumeSize - 1) * pixelScale
)

type Game struct {
	field *gradient.Field
	slice int
	mode  gradient.Mode

	pixels []byte
	img    *ebiten.Image
	dirty  bool
}

func NewGame() *Game {
	vol := volume.SolidSphere(volume.Dims{X: volumeSize, Y: volumeSize, Z: volumeSize}, volumeSize/2.5)
	g := &Game{
		field:  gradient.New(vol),
		slice:  volumeSize / 2,
		mode:   gradient.Linear,
		pixels: make([]byte, viewSize*viewSize*4),
		img:    ebiten.NewImage(viewSize, viewSize),
		dirty:  true,
	}
	return g
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) && g.slice < volumeSize-1 {
		g.slice++
		g.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) && g.slice > 0 {
		g.slice--
		g.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		switch g.mode {
		case gradient.NearestNeighbour:
			g.mode = gradient.Linear
		default:
			g.mode = gradient.NearestNeighbour
		}
		g.dirty = true
	}
	return nil
}

// renderSlice samples the gradient field at sub-voxel resolution across the
// current Z slice and maps magnitude through the colormap.
func (g *Game) renderSlice() {
	minMag := g.field.MinMagnitude()
	maxMag := g.field.MaxMagnitude()
	z := float32(g.slice)

	for py := 0; py < viewSize; py++ {
		for px := 0; px < viewSize; px++ {
			coord := gradient.Vec3{
				X: float32(px) / pixelScale,
				Y: float32(py) / pixelScale,
				Z: z,
			}
			v := g.field.Sample(coord, g.mode)
			c := magnitudeColor(v.Magnitude, minMag, maxMag)

			i := (py*viewSize + px) * 4
			g.pixels[i] = c.R
			g.pixels[i+1] = c.G
			g.pixels[i+2] = c.B
			g.pixels[i+3] = c.A
		}
	}
	g.img.WritePixels(g.pixels)
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.dirty {
		g.renderSlice()
		g.dirty = false
	}

	op := &ebiten.DrawImageOptions{}
	screen.DrawImage(g.img, op)

	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"GradientVis - slice %d/%d  mode: %s\nmagnitude: [%0.4f, %0.4f]\nFPS: %0.2f\nup/down: slice  M: mode",
		g.slice, volumeSize-1, g.mode,
		g.field.MinMagnitude(), g.field.MaxMagnitude(),
		ebiten.ActualFPS()))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (w, h int) {
	return viewSize, viewSize
}

func main() {
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("GradientVis")

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
