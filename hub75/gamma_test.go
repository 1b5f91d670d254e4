package hub75

import "testing"

func TestGammaOffIsIdentity(t *testing.T) {
	tab := NewGammaTable(GammaOff)
	for i := 0; i < 256; i++ {
		if got := tab.PWM(uint8(i)); got != uint8(i) {
			t.Fatalf("PWM(%d) = %d, want %d", i, got, i)
		}
	}
}

func TestGammaMonotonic(t *testing.T) {
	for _, mode := range []GammaMode{GammaStrict, GammaModified} {
		tab := NewGammaTable(mode)
		prev := tab.PWM(0)
		for i := 1; i < 256; i++ {
			v := tab.PWM(uint8(i))
			if v < prev {
				t.Fatalf("mode %d: PWM(%d)=%d < PWM(%d)=%d, not monotonic", mode, i, v, i-1, prev)
			}
			prev = v
		}
	}
}

func TestGammaModifiedFloorsAtOne(t *testing.T) {
	tab := NewGammaTable(GammaModified)
	for i := 1; i < 40; i++ {
		if got := tab.PWM(uint8(i)); got == 0 {
			t.Errorf("PWM(%d) = 0, modified mode must floor nonzero input at 1", i)
		}
	}
	if got := tab.PWM(0); got != 0 {
		t.Errorf("PWM(0) = %d, want 0", got)
	}
}

func TestGammaStrictCanReachZero(t *testing.T) {
	tab := NewGammaTable(GammaStrict)
	if got := tab.PWM(1); got != 0 {
		t.Errorf("PWM(1) = %d, want 0 for strict mode at the low end", got)
	}
}

func TestGammaCorrectAppliesAllChannels(t *testing.T) {
	tab := NewGammaTable(GammaOff)
	c := tab.Correct(RGB{R: 10, G: 20, B: 30})
	if c != (RGB{R: 10, G: 20, B: 30}) {
		t.Errorf("Correct() = %+v, want unchanged under GammaOff", c)
	}
}
