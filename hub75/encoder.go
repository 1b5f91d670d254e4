package hub75

// topColorBits and botColorBits are the lane bits driven by color; used to mask
// out and preserve the opposite half's bits when only one half of a word
// is known.
const (
	topColorBits = Word(1<<bitR1 | 1<<bitG1 | 1<<bitB1)
	botColorBits = Word(1<<bitR2 | 1<<bitG2 | 1<<bitB2)
)

// Encoder builds the 16-bit control word for a given column, half-row,
// and bitplane.
type Encoder struct {
	geo           Geometry
	gamma         GammaTable
	brightness    *BrightnessState
	transitionBit int
}

// NewEncoder returns an Encoder for geo, applying gamma and reading the
// cutoff from brightness.
func NewEncoder(geo Geometry, gamma GammaTable, brightness *BrightnessState) *Encoder {
	return &Encoder{geo: geo, gamma: gamma, brightness: brightness}
}

// SetTransitionBit records t, the LSB-MSB transition bit chosen by the
// descriptor planner. It must be set before encoding.
func (e *Encoder) SetTransitionBit(t int) {
	e.transitionBit = t
}

// controlBits computes the row-address, LAT, and OE bits for (x, halfRow,
// plane), independent of color.
func (e *Encoder) controlBits(x, halfRow, plane int) Word {
	rows := e.geo.Rows()
	addr := halfRow
	if plane == 0 {
		// LSB plane displays the *previous* row's address.
		addr = ((halfRow-1)%rows + rows) % rows
	}

	var v Word
	if addr&0x1 != 0 {
		v |= 1 << bitA
	}
	if addr&0x2 != 0 {
		v |= 1 << bitB
	}
	if addr&0x4 != 0 {
		v |= 1 << bitC
	}
	if addr&0x8 != 0 {
		v |= 1 << bitD
	}
	if e.geo.HasE && addr&0x10 != 0 {
		v |= 1 << bitE
	}

	l := e.geo.PixelsPerLatch()
	if x == 0 || x == l-1 {
		v |= 1 << bitOE // blank row transitions and the latch column
	}
	if x == l-1 {
		v |= 1 << bitLAT
	}

	cutoff := e.brightness.Cutoff()
	t := e.transitionBit
	switch {
	case plane == 0 || plane > t:
		if x >= cutoff {
			v |= 1 << bitOE
		}
	case plane > 0 && plane <= t:
		fractional := cutoff >> (t - plane + 1)
		if x >= fractional {
			v |= 1 << bitOE
		}
	}
	return v
}

// inRange reports whether (x, y) addresses a real pixel on this geometry.
func (e *Encoder) inRange(x, y int) bool {
	return x >= 0 && y >= 0 && x < e.geo.Width && y < e.geo.Height
}

// EncodeSinglePixel implements the pixel API's single-point update: it
// rewrites every bitplane word at column x, row y, preserving whatever
// the opposite half's color bits already were.
func (e *Encoder) EncodeSinglePixel(buf *Bitplane, x, y int, c RGB) {
	if !e.inRange(x, y) {
		return
	}
	c = e.gamma.Correct(c)
	rows := e.geo.Rows()
	topHalf := y < rows
	halfRow := y
	if !topHalf {
		halfRow = y - rows
	}
	storeCol := x ^ 1

	for plane := 0; plane < Depth; plane++ {
		v := e.controlBits(x, halfRow, plane)
		mask := Word(1) << uint(plane)
		existing := buf.Get(halfRow, plane, storeCol)
		if topHalf {
			if c.R&uint8(mask) != 0 {
				v |= 1 << bitR1
			}
			if c.G&uint8(mask) != 0 {
				v |= 1 << bitG1
			}
			if c.B&uint8(mask) != 0 {
				v |= 1 << bitB1
			}
			v |= existing & botColorBits
		} else {
			if c.R&uint8(mask) != 0 {
				v |= 1 << bitR2
			}
			if c.G&uint8(mask) != 0 {
				v |= 1 << bitG2
			}
			if c.B&uint8(mask) != 0 {
				v |= 1 << bitB2
			}
			v |= existing & topColorBits
		}
		buf.Set(halfRow, plane, storeCol, v)
	}
}

// EncodeFill rewrites every word in buf from scratch with c on both
// halves; no preservation read is needed.
func (e *Encoder) EncodeFill(buf *Bitplane, c RGB) {
	c = e.gamma.Correct(c)
	l := e.geo.PixelsPerLatch()
	for halfRow := 0; halfRow < e.geo.Rows(); halfRow++ {
		for plane := 0; plane < Depth; plane++ {
			mask := Word(1) << uint(plane)
			for x := 0; x < l; x++ {
				v := e.controlBits(x, halfRow, plane)
				if c.R&uint8(mask) != 0 {
					v |= 1<<bitR1 | 1<<bitR2
				}
				if c.G&uint8(mask) != 0 {
					v |= 1<<bitG1 | 1<<bitG2
				}
				if c.B&uint8(mask) != 0 {
					v |= 1<<bitB1 | 1<<bitB2
				}
				buf.Set(halfRow, plane, x^1, v)
			}
		}
	}
}

// EncodeFrame rewrites every word in buf from the staging frame, reading
// the top half from row halfRow and the bottom half from halfRow+Rows().
func (e *Encoder) EncodeFrame(buf *Bitplane, frame *RGBFrame) {
	l := e.geo.PixelsPerLatch()
	rows := e.geo.Rows()
	for halfRow := 0; halfRow < rows; halfRow++ {
		for plane := 0; plane < Depth; plane++ {
			mask := Word(1) << uint(plane)
			for x := 0; x < l; x++ {
				v := e.controlBits(x, halfRow, plane)
				top := e.gamma.Correct(frame.At(x, halfRow))
				bot := e.gamma.Correct(frame.At(x, halfRow+rows))
				if top.R&uint8(mask) != 0 {
					v |= 1 << bitR1
				}
				if top.G&uint8(mask) != 0 {
					v |= 1 << bitG1
				}
				if top.B&uint8(mask) != 0 {
					v |= 1 << bitB1
				}
				if bot.R&uint8(mask) != 0 {
					v |= 1 << bitR2
				}
				if bot.G&uint8(mask) != 0 {
					v |= 1 << bitG2
				}
				if bot.B&uint8(mask) != 0 {
					v |= 1 << bitB2
				}
				buf.Set(halfRow, plane, x^1, v)
			}
		}
	}
}
