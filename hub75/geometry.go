package hub75

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Depth is the BCM color depth: 8 bitplanes per channel, fixed by the
// wire format.
const Depth = 8

// Geometry describes a panel's physical layout. Only the combinations
// listed in SupportedGeometries are valid; everything else — including
// the three scan modes the original driver marks non-functional
// (32x16/4-scan, 32x32/8-scan, 64x32/8-scan) — is rejected by Validate.
type Geometry struct {
	Width          int
	Height         int
	RowsInParallel int // P: rows driven in parallel per scan, always 2 for supported panels
	HasE           bool
}

// SupportedGeometries enumerates the four valid panel configurations.
var SupportedGeometries = [...]Geometry{
	{Width: 32, Height: 16, RowsInParallel: 2, HasE: false}, // 32x16, 8-scan
	{Width: 32, Height: 32, RowsInParallel: 2, HasE: false}, // 32x32, 16-scan
	{Width: 64, Height: 32, RowsInParallel: 2, HasE: false}, // 64x32, 16-scan
	{Width: 64, Height: 64, RowsInParallel: 2, HasE: true},  // 64x64, 32-scan
}

// Validate reports whether g is one of SupportedGeometries.
func (g Geometry) Validate() error {
	if slices.Contains(SupportedGeometries[:], g) {
		return nil
	}
	return fmt.Errorf("%w: unsupported geometry %dx%d (parallel=%d, e=%v)",
		ErrInvalidConfig, g.Width, g.Height, g.RowsInParallel, g.HasE)
}

// Rows returns R, the number of half-rows refreshed per frame: H/P.
func (g Geometry) Rows() int {
	return g.Height / g.RowsInParallel
}

// PixelsPerLatch returns L, the number of pixel clocks per row: W.
func (g Geometry) PixelsPerLatch() int {
	return g.Width
}

// RowAddressBits returns how many address lines (A..D, plus E if used)
// are needed to address all rows.
func (g Geometry) RowAddressBits() int {
	if g.HasE {
		return 5
	}
	return 4
}
