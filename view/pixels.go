// Package view presents generations in a window. The window itself needs
// the ebiten build tag; pixel conversion is shared with the headless build.
package view

import (
	"image/color"

	"github.com/sheikhrachel/go-torus-life/model"
)

var (
	AliveColor color.Color = color.White
	DeadColor  color.Color = color.Black
)

// FillRGBA converts cells into RGBA pixels in buf, which must hold 4 bytes per cell.
func FillRGBA(buf []byte, cells []model.Cell, alive, dead color.Color) {
	rOn, gOn, bOn, aOn := alive.RGBA()
	rOff, gOff, bOff, aOff := dead.RGBA()
	for i, c := range cells {
		base := i * 4
		if c == model.Alive {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// Frame is the last generation handed to the window, copied out of the
// loop's grid so the window never reads a buffer the loop may recycle.
type Frame struct {
	Generation int
	Living     int
	Size       int
	Pixels     []byte
}

// Present implements sim.Presenter by rasterizing g into the frame.
func (f *Frame) Present(generation int, g *model.Grid) error {
	n := g.Size() * g.Size() * 4
	if len(f.Pixels) != n {
		f.Pixels = make([]byte, n)
	}
	FillRGBA(f.Pixels, g.Cells(), AliveColor, DeadColor)
	f.Generation = generation
	f.Living = g.CountLivingCells()
	f.Size = g.Size()
	return nil
}
