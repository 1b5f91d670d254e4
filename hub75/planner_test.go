package hub75

import "testing"

func TestDescriptorsPerRowShrinksWithT(t *testing.T) {
	prev := descriptorsPerRow(0)
	for t2 := 1; t2 < Depth; t2++ {
		k := descriptorsPerRow(t2)
		if k > prev {
			t.Fatalf("descriptorsPerRow(%d)=%d > descriptorsPerRow(%d)=%d, want non-increasing as t grows", t2, k, t2-1, prev)
		}
		prev = k
	}
	if descriptorsPerRow(Depth-1) != 1 {
		t.Errorf("descriptorsPerRow(Depth-1) = %d, want 1 (no high planes to repeat)", descriptorsPerRow(Depth-1))
	}
}

func TestPlanSucceedsWithGenerousBudget(t *testing.T) {
	cfg := PlannerConfig{
		Geometry:       Geometry{Width: 64, Height: 32, RowsInParallel: 2, HasE: false},
		ClockHz:        20_000_000,
		MinRefreshHz:   100,
		ReserveBytes:   0,
		DescriptorSize: 40,
	}
	plan, err := Plan(cfg, 1<<24, 1<<24)
	if err != nil {
		t.Fatalf("Plan() = %v, want ok", err)
	}
	if plan.RefreshHz() < float64(cfg.MinRefreshHz) {
		t.Errorf("RefreshHz() = %.1f, want >= %d", plan.RefreshHz(), cfg.MinRefreshHz)
	}
	if plan.RAMRequired() > 1<<24 {
		t.Errorf("RAMRequired() = %d, exceeds budget", plan.RAMRequired())
	}
}

func TestPlanFailsOutOfMemory(t *testing.T) {
	cfg := PlannerConfig{
		Geometry:       Geometry{Width: 64, Height: 64, RowsInParallel: 2, HasE: true},
		ClockHz:        13_333_333,
		MinRefreshHz:   1,
		DescriptorSize: 40,
	}
	_, err := Plan(cfg, 8, 8) // far too little DMA memory for any t
	if err == nil {
		t.Fatal("Plan() = nil error, want ErrOutOfMemory")
	}
}

func TestPlanFailsRefreshUnachievable(t *testing.T) {
	cfg := PlannerConfig{
		Geometry:       Geometry{Width: 64, Height: 64, RowsInParallel: 2, HasE: true},
		ClockHz:        13_333_333,
		MinRefreshHz:   1_000_000, // unreasonably high
		DescriptorSize: 40,
	}
	_, err := Plan(cfg, 1<<24, 1<<24)
	if err == nil {
		t.Fatal("Plan() = nil error, want ErrRefreshUnachievable")
	}
}

func TestPlanRespectsReserveBytes(t *testing.T) {
	geo := Geometry{Width: 64, Height: 32, RowsInParallel: 2, HasE: false}
	base := PlannerConfig{Geometry: geo, ClockHz: 20_000_000, MinRefreshHz: 1, DescriptorSize: 40}

	withoutReserve, err := Plan(base, 1<<16, 1<<16)
	if err != nil {
		t.Fatalf("Plan() without reserve: %v", err)
	}

	reserved := base
	reserved.ReserveBytes = 1 << 15
	withReserve, err := Plan(reserved, 1<<16, 1<<16)
	if err != nil {
		t.Fatalf("Plan() with reserve: %v", err)
	}
	if withReserve.TransitionBit() < withoutReserve.TransitionBit() {
		t.Errorf("reserving memory should never lower the chosen transition bit: got %d < %d",
			withReserve.TransitionBit(), withoutReserve.TransitionBit())
	}
}
