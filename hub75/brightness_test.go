package hub75

import "testing"

func TestBrightnessClampAndPrevious(t *testing.T) {
	b := newBrightnessState(64, NewGammaTable(GammaOff))
	if got := b.Percent(); got != 75 {
		t.Fatalf("default Percent() = %d, want 75", got)
	}

	prev := b.SetPercent(50)
	if prev != 75 {
		t.Errorf("SetPercent(50) returned previous=%d, want 75", prev)
	}
	if b.Percent() != 50 {
		t.Errorf("Percent() = %d, want 50", b.Percent())
	}

	b.SetPercent(500)
	if b.Percent() != 100 {
		t.Errorf("SetPercent(500) clamped to %d, want 100", b.Percent())
	}

	b.SetPercent(-10)
	if b.Percent() != 0 {
		t.Errorf("SetPercent(-10) clamped to %d, want 0", b.Percent())
	}
}

func TestBrightnessCutoffBoundaries(t *testing.T) {
	width := 64
	for _, mode := range []GammaMode{GammaOff, GammaStrict, GammaModified} {
		b := newBrightnessState(width, NewGammaTable(mode))

		b.SetPercent(100)
		if b.Cutoff() != width {
			t.Errorf("mode=%d: Cutoff() at 100%% = %d, want %d", mode, b.Cutoff(), width)
		}

		b.SetPercent(0)
		if b.Cutoff() != 0 {
			t.Errorf("mode=%d: Cutoff() at 0%% = %d, want 0", mode, b.Cutoff())
		}
	}
}

func TestBrightnessCutoffMonotonic(t *testing.T) {
	b := newBrightnessState(64, NewGammaTable(GammaOff))
	prev := -1
	for p := 0; p <= 100; p++ {
		b.SetPercent(p)
		if b.Cutoff() < prev {
			t.Fatalf("Cutoff() decreased at percent=%d: %d < %d", p, b.Cutoff(), prev)
		}
		prev = b.Cutoff()
	}
}
