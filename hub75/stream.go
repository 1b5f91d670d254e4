package hub75

import "github.com/phkehl/esp32-leddisplay/internal/ring"

// Descriptor is one DMA descriptor: a contiguous slice of bitplane
// words, a pointer to the next descriptor in the ring, and whether
// traversing it should fire the stream engine's completion callback.
type Descriptor struct {
	Data      []Word
	Next      *Descriptor
	EndOfList bool
}

// StreamEngineConfig carries what a concrete StreamEngine needs at
// setup: the pixel clock and the GPIO lane assignment. The completion
// callback it must fire on every end-of-list is registered separately
// through SetShiftCompleteCallback.
type StreamEngineConfig struct {
	ClockHz uint32
	Pins    GPIOMap
}

// StreamEngine is the external collaborator that actually drives the
// sixteen output lanes. The core treats it as abstract; hub75pio.Engine
// is the concrete RP2040 implementation.
type StreamEngine interface {
	Setup(cfg StreamEngineConfig) error
	LinkDescriptor(d *Descriptor)
	FlipTo(bufferID int)
	Stop()
	SetShiftCompleteCallback(fn func())
}

// DescriptorRing is one buffer's ring of DMA descriptors: R*K(t)
// descriptors, each pointing into the corresponding Bitplane, linked
// into a single cycle. It is backed by a ring.Slab so the ring — not
// its individual descriptors — is the unit of allocation.
type DescriptorRing struct {
	slab *ring.Slab[Descriptor]
}

// newDescriptorRing builds the ring for buf for transition bit t:
// descriptor 0 of every row covers all D bitplanes; for each plane
// i > t, 2^(i-t-1) further descriptors each cover the suffix [i, D).
func newDescriptorRing(buf *Bitplane, rows, t int) *DescriptorRing {
	k := descriptorsPerRow(t)
	slab := ring.NewSlab[Descriptor](rows * k)

	idx := 0
	for row := 0; row < rows; row++ {
		d := slab.Item(idx)
		d.Data = buf.RowWords(row)
		idx++
		for plane := t + 1; plane < Depth; plane++ {
			reps := 1 << uint(plane-t-1)
			for rep := 0; rep < reps; rep++ {
				d := slab.Item(idx)
				d.Data = buf.PlaneSuffix(row, plane)
				idx++
			}
		}
	}

	slab.LinkCircular()
	n := slab.Len()
	for i := 0; i < n; i++ {
		slab.Item(i).Next = slab.Item(slab.NextIndex(i))
	}
	slab.Item(n - 1).EndOfList = true

	return &DescriptorRing{slab: slab}
}

// First returns the ring's head descriptor.
func (r *DescriptorRing) First() *Descriptor {
	return r.slab.Item(0)
}

// Len returns the total descriptor count, R*K(t).
func (r *DescriptorRing) Len() int {
	return r.slab.Len()
}

// link walks the ring and hands every descriptor to engine in order.
func (r *DescriptorRing) link(engine StreamEngine) {
	n := r.slab.Len()
	for i := 0; i < n; i++ {
		engine.LinkDescriptor(r.slab.Item(i))
	}
}
