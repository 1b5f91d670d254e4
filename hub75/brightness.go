package hub75

// BrightnessState holds the global brightness percentage and its derived
// column cutoff used by the OE-gating logic.
type BrightnessState struct {
	percent int
	cutoff  int
	width   int
	gamma   GammaTable
}

// newBrightnessState creates state for a panel of the given width, with
// the given gamma table applied to the derived cutoff.
func newBrightnessState(width int, gamma GammaTable) *BrightnessState {
	b := &BrightnessState{width: width, gamma: gamma}
	b.SetPercent(75) // default brightness is 75%.
	return b
}

// SetPercent clamps percent to [0,100], recomputes the cutoff, and
// returns the previously set percentage.
func (b *BrightnessState) SetPercent(percent int) int {
	previous := b.percent
	if percent < 0 {
		percent = 0
	} else if percent > 100 {
		percent = 100
	}
	b.percent = percent

	// cutoff = round(W*percent/100), computed in integers scaled by 1000
	// so the half-up rounding happens after the division by 100.
	rawCutoff := ((1000*b.width*percent)/100 + 500) / 1000
	switch {
	case percent >= 100:
		// Bypass gamma correction at the top boundary so cutoff is always
		// exactly width when percent is 100, never clipped short by the
		// 8-bit PWM table's rounding.
		b.cutoff = b.width
	case percent <= 0:
		b.cutoff = 0
	default:
		b.cutoff = b.gamma.correctedBrightnessValue(b.width, rawCutoff)
	}
	return previous
}

// Percent returns the currently set brightness percentage.
func (b *BrightnessState) Percent() int {
	return b.percent
}

// Cutoff returns the column index at which brightness-gated OE kicks in.
func (b *BrightnessState) Cutoff() int {
	return b.cutoff
}
