package hub75

import "testing"

func TestDescriptorRingLinksIntoOneCycle(t *testing.T) {
	geo := Geometry{Width: 32, Height: 16, RowsInParallel: 2, HasE: false}
	buf, err := newBitplane(geo, sliceAllocator{budgetBytes: 1 << 20})
	if err != nil {
		t.Fatalf("newBitplane: %v", err)
	}
	const transitionBit = 3
	r := newDescriptorRing(buf, geo.Rows(), transitionBit)

	want := geo.Rows() * descriptorsPerRow(transitionBit)
	if r.Len() != want {
		t.Fatalf("Len() = %d, want %d", r.Len(), want)
	}

	endOfListCount := 0
	d := r.First()
	for i := 0; i < r.Len(); i++ {
		if d.EndOfList {
			endOfListCount++
		}
		if d.Data == nil {
			t.Fatalf("descriptor %d has nil Data", i)
		}
		d = d.Next
	}
	if endOfListCount != 1 {
		t.Errorf("found %d end-of-list descriptors, want exactly 1", endOfListCount)
	}
	if d != r.First() {
		t.Errorf("ring does not close back to its head after Len() steps")
	}
}

func TestDescriptorRingCoversEveryPlaneByWeight(t *testing.T) {
	geo := Geometry{Width: 32, Height: 16, RowsInParallel: 2, HasE: false}
	buf, err := newBitplane(geo, sliceAllocator{budgetBytes: 1 << 20})
	if err != nil {
		t.Fatalf("newBitplane: %v", err)
	}
	const transitionBit = 2
	r := newDescriptorRing(buf, geo.Rows(), transitionBit)

	// Walk one row's worth of descriptors (K(t) of them) and count how
	// many times each plane index appears in a descriptor's covered
	// range; plane i should appear 2^(i-t) times for i>t, once for i<=t.
	k := descriptorsPerRow(transitionBit)
	counts := make([]int, Depth)
	d := r.First()
	for i := 0; i < k; i++ {
		fromPlane := (Depth - len(d.Data)/geo.PixelsPerLatch())
		for p := fromPlane; p < Depth; p++ {
			counts[p]++
		}
		d = d.Next
	}
	for p := 0; p <= transitionBit; p++ {
		if counts[p] != 1 {
			t.Errorf("plane %d (<=t) visited %d times, want 1", p, counts[p])
		}
	}
	for p := transitionBit + 1; p < Depth; p++ {
		want := 1 << uint(p-transitionBit)
		if counts[p] != want {
			t.Errorf("plane %d (>t) visited %d times, want %d", p, counts[p], want)
		}
	}
}
