package hub75

import (
	"image/color"

	"tinygo.org/x/drivers"
)

// Display satisfies tinygo.org/x/drivers.Displayer so that code written
// against the wider driver ecosystem's display interface can target a
// HUB75 panel interchangeably with any other drivers.Displayer.
var _ drivers.Displayer = (*Display)(nil)

// SetPixel adapts the pixel API to drivers.Displayer's signature: it
// encodes the pixel into the drawing buffer without publishing.
func (d *Display) SetPixel(x, y int16, c color.RGBA) {
	d.PixelXY(int(x), int(y), RGB{R: c.R, G: c.G, B: c.B})
}

// Display flips to the buffer just drawn and blocks until the new
// drawing buffer is no longer under DMA read, satisfying
// drivers.Displayer.Display.
func (d *Display) Display() error {
	d.PixelPublish(true)
	return nil
}

// Size returns the panel's pixel dimensions.
func (d *Display) Size() (x, y int16) {
	return int16(d.geo.Width), int16(d.geo.Height)
}
