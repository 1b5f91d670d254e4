package hub75

// RGB is a linear 8-bit-per-channel color, as accepted by every public
// drawing operation. Gamma correction, if enabled, is applied internally
// before any bit test.
type RGB struct {
	R, G, B uint8
}

// RGBFrame is the frame-API staging surface: a plain [H][W] array of RGB
// owned entirely by the caller. The core reads it only during
// FramePublish; FrameXY, FrameFill and FrameClear write it on the
// caller's behalf.
type RGBFrame struct {
	w, h int
	px   []RGB
}

// NewRGBFrame allocates a staging frame sized for geo.
func NewRGBFrame(geo Geometry) *RGBFrame {
	return &RGBFrame{w: geo.Width, h: geo.Height, px: make([]RGB, geo.Width*geo.Height)}
}

// Width and Height report the frame's dimensions.
func (f *RGBFrame) Width() int  { return f.w }
func (f *RGBFrame) Height() int { return f.h }

// At returns the color stored at (x, y). Out-of-range coordinates return
// the zero RGB.
func (f *RGBFrame) At(x, y int) RGB {
	if x < 0 || y < 0 || x >= f.w || y >= f.h {
		return RGB{}
	}
	return f.px[y*f.w+x]
}

// Set stores c at (x, y). Out-of-range coordinates are silently ignored.
func (f *RGBFrame) Set(x, y int, c RGB) {
	if x < 0 || y < 0 || x >= f.w || y >= f.h {
		return
	}
	f.px[y*f.w+x] = c
}

// Fill sets every pixel to c.
func (f *RGBFrame) Fill(c RGB) {
	for i := range f.px {
		f.px[i] = c
	}
}

// Clear zeroes the frame (equivalent to Fill(RGB{})).
func (f *RGBFrame) Clear() {
	for i := range f.px {
		f.px[i] = RGB{}
	}
}
