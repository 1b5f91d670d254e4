package hub75

import "fmt"

// PlannerConfig bundles the inputs to the descriptor planner's budget
// search: the panel geometry, the pixel clock, the minimum acceptable
// refresh rate, and the DMA memory reserve and per-descriptor size the
// caller's allocator uses.
type PlannerConfig struct {
	Geometry       Geometry
	ClockHz        uint32
	MinRefreshHz   uint32
	ReserveBytes   uint32
	DescriptorSize uint32
}

// PlanResult is the outcome of a successful budget search: the chosen
// LSB-MSB transition bit and the derived descriptor count and refresh
// rate it buys.
type PlanResult struct {
	transitionBit     int
	descriptorsPerRow int
	refreshHz         float64
	ramRequired       uint32
}

// TransitionBit returns t, the chosen LSB-MSB transition bit.
func (p PlanResult) TransitionBit() int { return p.transitionBit }

// DescriptorsPerRow returns K(t), the per-row descriptor count.
func (p PlanResult) DescriptorsPerRow() int { return p.descriptorsPerRow }

// RefreshHz returns the refresh rate this plan achieves.
func (p PlanResult) RefreshHz() float64 { return p.refreshHz }

// RAMRequired returns the DMA-capable memory this plan's descriptor
// rings occupy, across both buffers.
func (p PlanResult) RAMRequired() uint32 { return p.ramRequired }

// descriptorsPerRow computes K(t) = 1 + sum_{i=t+1..D-1} 2^(i-t-1).
func descriptorsPerRow(t int) int {
	k := 1
	for i := t + 1; i < Depth; i++ {
		k += 1 << uint(i-t-1)
	}
	return k
}

// Plan runs the LSB-MSB transition-bit budget search: starting at t=0,
// it increments t until both the descriptor rings fit the DMA memory
// budget and the resulting refresh rate meets cfg.MinRefreshHz.
// largestFreeBlock and totalFree describe the allocator's current
// DMA-capable memory.
func Plan(cfg PlannerConfig, largestFreeBlock, totalFree uint32) (PlanResult, error) {
	geo := cfg.Geometry
	rows := uint32(geo.Rows())
	l := float64(geo.PixelsPerLatch())

	available := totalFree
	if cfg.ReserveBytes < available {
		available -= cfg.ReserveBytes
	} else {
		available = 0
	}
	memBudget := largestFreeBlock
	if available < memBudget {
		memBudget = available
	}

	nsPerLatch := l * (1e12 / float64(cfg.ClockHz)) / 1e3

	var lastErr error
	for t := 0; t < Depth; t++ {
		k := descriptorsPerRow(t)
		ramRequired := uint32(k) * rows * 2 * cfg.DescriptorSize

		nsPerRow := float64(Depth) * nsPerLatch
		for i := t + 1; i < Depth; i++ {
			reps := float64(uint(1) << uint(i-t-1))
			nsPerRow += reps * float64(Depth-i) * nsPerLatch
		}
		refreshHz := 1e9 / (nsPerRow * float64(rows))

		memOK := ramRequired <= memBudget
		refreshOK := refreshHz >= float64(cfg.MinRefreshHz)
		if memOK && refreshOK {
			return PlanResult{
				transitionBit:     t,
				descriptorsPerRow: k,
				refreshHz:         refreshHz,
				ramRequired:       ramRequired,
			}, nil
		}
		if !memOK {
			lastErr = fmt.Errorf("%w: t=%d needs %d bytes, budget is %d", ErrOutOfMemory, t, ramRequired, memBudget)
		} else {
			lastErr = fmt.Errorf("%w: t=%d achieves %.1f Hz, want >= %d Hz", ErrRefreshUnachievable, t, refreshHz, cfg.MinRefreshHz)
		}
	}
	return PlanResult{}, lastErr
}
