package hub75

import "testing"

func TestBitplaneGetSetRoundTrip(t *testing.T) {
	geo := Geometry{Width: 32, Height: 16, RowsInParallel: 2}
	buf, err := newBitplane(geo, sliceAllocator{budgetBytes: 1 << 20})
	if err != nil {
		t.Fatalf("newBitplane: %v", err)
	}
	buf.Set(3, 5, 7, Word(0xBEEF))
	if got := buf.Get(3, 5, 7); got != Word(0xBEEF) {
		t.Errorf("Get(3,5,7) = %#x, want 0xbeef", got)
	}
	if got := buf.Get(3, 5, 6); got != 0 {
		t.Errorf("Get(3,5,6) = %#x, want 0 (unwritten neighbor)", got)
	}
}

func TestPlaneSuffixLength(t *testing.T) {
	geo := Geometry{Width: 32, Height: 16, RowsInParallel: 2}
	buf, err := newBitplane(geo, sliceAllocator{budgetBytes: 1 << 20})
	if err != nil {
		t.Fatalf("newBitplane: %v", err)
	}
	l := geo.PixelsPerLatch()
	for _, from := range []int{0, 3, Depth - 1} {
		suffix := buf.PlaneSuffix(0, from)
		want := (Depth - from) * l
		if len(suffix) != want {
			t.Errorf("PlaneSuffix(0,%d) len = %d, want %d", from, len(suffix), want)
		}
	}
}

func TestSliceAllocatorAllocatesFreshMemory(t *testing.T) {
	a := sliceAllocator{budgetBytes: 1024}
	total, largest := a.FreeBytes()
	if total != 1024 || largest != 1024 {
		t.Errorf("FreeBytes() = (%d,%d), want (1024,1024)", total, largest)
	}
	words, err := a.Alloc(16)
	if err != nil || len(words) != 16 {
		t.Errorf("Alloc(16) = (%v,%v), want 16 zeroed words", words, err)
	}
}
