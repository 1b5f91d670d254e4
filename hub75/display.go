package hub75

import (
	"fmt"
	"sync/atomic"
)

// descriptorSizeBytes estimates one Descriptor's footprint in the
// planner's RAM budget: a slice header (ptr+len+cap, 24 bytes on a
// 64-bit target), a Next pointer (8 bytes), and EndOfList rounded up to
// word alignment (8 bytes).
const descriptorSizeBytes = 40

// flipSemaphore is the single binary "buffer released" semaphore shared
// between the producer and the stream engine's completion callback. It
// mirrors how a timer or SPI interrupt handler releases a waiting task:
// a channel send from the callback, a blocking or non-blocking receive
// from the producer. waiters tracks whether a blocking acquire is
// currently in flight, so Close can refuse to tear down the engine out
// from under a pending acquire.
type flipSemaphore struct {
	ch      chan struct{}
	waiters int32
}

func newFlipSemaphore() *flipSemaphore {
	return &flipSemaphore{ch: make(chan struct{}, 1)}
}

// release is called from the stream engine's end-of-list callback; it
// never blocks.
func (s *flipSemaphore) release() {
	select {
	case s.ch <- struct{}{}:
	default:
	}
}

func (s *flipSemaphore) acquire() {
	atomic.AddInt32(&s.waiters, 1)
	<-s.ch
	atomic.AddInt32(&s.waiters, -1)
}

func (s *flipSemaphore) tryAcquire() bool {
	select {
	case <-s.ch:
		return true
	default:
		return false
	}
}

func (s *flipSemaphore) hasWaiter() bool {
	return atomic.LoadInt32(&s.waiters) > 0
}

// Display is the handle encapsulating all driver state: geometry,
// buffers, descriptor rings, brightness, and the stream engine. State
// lives in a handle rather than package globals so more than one panel
// can be open at once.
type Display struct {
	cfg        Config
	geo        Geometry
	gamma      GammaTable
	brightness *BrightnessState
	encoder    *Encoder
	buffers    [2]*Bitplane
	rings      [2]*DescriptorRing
	plan       PlanResult
	engine     StreamEngine
	flip       *flipSemaphore
	current    int
	closed     bool
}

// Open validates geometry, sets default brightness, allocates two
// bitplane buffers, runs the descriptor planner, allocates and builds
// two descriptor rings, creates the flip semaphore, registers the
// completion callback, and starts the stream engine. Any failure
// unwinds prior acquisitions; there is nothing to explicitly free on
// the host (buffers are ordinary Go slices collected by the GC), so
// unwinding here means simply not touching the engine.
func Open(cfg Config) (*Display, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.Allocator == nil {
		cfg.Allocator = sliceAllocator{budgetBytes: 1 << 24}
	}

	geo := cfg.Geometry
	gamma := NewGammaTable(cfg.GammaMode)
	brightness := newBrightnessState(geo.PixelsPerLatch(), gamma)
	encoder := NewEncoder(geo, gamma, brightness)

	var buffers [2]*Bitplane
	for i := range buffers {
		b, err := newBitplane(geo, cfg.Allocator)
		if err != nil {
			return nil, fmt.Errorf("%w: bitplane buffer %d: %v", ErrOutOfMemory, i, err)
		}
		buffers[i] = b
	}

	total, largest := cfg.Allocator.FreeBytes()
	plan, err := Plan(PlannerConfig{
		Geometry:       geo,
		ClockHz:        cfg.ClockFreq.Hz(),
		MinRefreshHz:   cfg.MinRefreshHz,
		ReserveBytes:   cfg.ReserveBytes,
		DescriptorSize: descriptorSizeBytes,
	}, uint32(largest), uint32(total))
	if err != nil {
		return nil, err
	}
	encoder.SetTransitionBit(plan.TransitionBit())

	var rings [2]*DescriptorRing
	for i := range rings {
		rings[i] = newDescriptorRing(buffers[i], geo.Rows(), plan.TransitionBit())
	}

	// Force brightness to 0 while filling both buffers black, then
	// restore it, so nothing but a blank frame is ever streamed before
	// the first real publish.
	savedPercent := brightness.Percent()
	brightness.SetPercent(0)
	for i := range buffers {
		encoder.EncodeFill(buffers[i], RGB{})
	}
	brightness.SetPercent(savedPercent)

	flip := newFlipSemaphore()

	d := &Display{
		cfg:        cfg,
		geo:        geo,
		gamma:      gamma,
		brightness: brightness,
		encoder:    encoder,
		buffers:    buffers,
		rings:      rings,
		plan:       plan,
		engine:     cfg.Engine,
		flip:       flip,
		current:    0,
	}

	d.engine.SetShiftCompleteCallback(flip.release)
	if err := d.engine.Setup(StreamEngineConfig{ClockHz: cfg.ClockFreq.Hz(), Pins: cfg.Pins}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrHardwareFail, err)
	}
	for i := range rings {
		rings[i].link(d.engine)
	}
	d.engine.FlipTo(0)

	cfg.logf("hub75: opened %dx%d, t=%d, %d descriptors/buffer, %.1f Hz", geo.Width, geo.Height, plan.TransitionBit(), rings[0].Len(), plan.RefreshHz())
	return d, nil
}

// Close stops the stream engine and drops the handle's bitplane buffers
// and descriptor rings. It
// panics if a publish is currently blocked on the flip semaphore:
// callers must not shut down while a waiter is pending.
func (d *Display) Close() {
	if d.closed {
		return
	}
	if d.flip.hasWaiter() {
		panic(errShutdownWithWaiter)
	}
	d.engine.Stop()
	d.closed = true
	d.buffers = [2]*Bitplane{}
	d.rings = [2]*DescriptorRing{}
}

// SetBrightness sets the display brightness percentage, clamped to
// [0,100], and returns the previously set value.
func (d *Display) SetBrightness(percent int) int {
	return d.brightness.SetPercent(percent)
}

// Brightness returns the currently set brightness percentage.
func (d *Display) Brightness() int {
	return d.brightness.Percent()
}

// Plan returns the descriptor planner's chosen layout for this display.
func (d *Display) Plan() PlanResult {
	return d.plan
}
