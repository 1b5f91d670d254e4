package hub75

import "testing"

func TestOpenRejectsInvalidConfig(t *testing.T) {
	engine := &fakeEngine{}
	cfg := testConfig(Geometry{Width: 7, Height: 7, RowsInParallel: 2}, engine)
	if _, err := Open(cfg); err == nil {
		t.Fatal("Open() with bad geometry = nil error, want ErrInvalidConfig")
	}
}

func TestOpenLinksBothRingsAndStarts(t *testing.T) {
	engine := &fakeEngine{}
	cfg := testConfig(Geometry{Width: 32, Height: 16, RowsInParallel: 2}, engine)
	d, err := Open(cfg)
	if err != nil {
		t.Fatalf("Open() = %v, want ok", err)
	}
	defer d.Close()

	wantPerRing := d.plan.DescriptorsPerRow() * d.geo.Rows()
	if len(engine.linked) != 2*wantPerRing {
		t.Errorf("linked %d descriptors, want %d", len(engine.linked), 2*wantPerRing)
	}
	if len(engine.flips) != 1 || engine.flips[0] != 0 {
		t.Errorf("flips = %v, want initial flip to buffer 0", engine.flips)
	}
}

func TestCloseStopsEngine(t *testing.T) {
	engine := &fakeEngine{}
	cfg := testConfig(Geometry{Width: 32, Height: 16, RowsInParallel: 2}, engine)
	d, err := Open(cfg)
	if err != nil {
		t.Fatalf("Open() = %v", err)
	}
	d.Close()
	if !engine.stopped {
		t.Error("Close() did not stop the stream engine")
	}
}

func TestClosePanicsWithPendingWaiter(t *testing.T) {
	engine := &fakeEngine{}
	cfg := testConfig(Geometry{Width: 32, Height: 16, RowsInParallel: 2}, engine)
	d, err := Open(cfg)
	if err != nil {
		t.Fatalf("Open() = %v", err)
	}

	// Simulate a publish that is blocked on the semaphore (no release
	// queued) by marking a waiter directly.
	d.flip.waiters = 1

	defer func() {
		if recover() == nil {
			t.Error("Close() with a pending waiter did not panic")
		}
	}()
	d.Close()
}

func TestPixelPublishBlockingAcquiresSemaphore(t *testing.T) {
	engine := &fakeEngine{}
	cfg := testConfig(Geometry{Width: 32, Height: 16, RowsInParallel: 2}, engine)
	d, err := Open(cfg)
	if err != nil {
		t.Fatalf("Open() = %v", err)
	}
	defer d.Close()

	startCurrent := d.current
	d.PixelFill(RGB{R: 255})
	d.PixelPublish(true) // fakeEngine's FlipTo fires the callback synchronously

	if d.current == startCurrent {
		t.Error("PixelPublish did not advance the drawing buffer index")
	}
	if len(engine.flips) != 2 { // one at Open, one from PixelPublish
		t.Errorf("flips = %v, want 2 entries", engine.flips)
	}
}

func TestPixelFillIsIdempotent(t *testing.T) {
	engine := &fakeEngine{}
	geo := Geometry{Width: 32, Height: 16, RowsInParallel: 2}
	cfg := testConfig(geo, engine)
	d, err := Open(cfg)
	if err != nil {
		t.Fatalf("Open() = %v", err)
	}
	defer d.Close()

	buf := d.buffers[d.current]
	d.encoder.EncodeFill(buf, RGB{R: 10, G: 20, B: 30})
	snapshot := make([][]Word, geo.Rows())
	for row := range snapshot {
		snapshot[row] = append([]Word(nil), buf.RowWords(row)...)
	}

	d.encoder.EncodeFill(buf, RGB{R: 10, G: 20, B: 30})
	for row := range snapshot {
		got := buf.RowWords(row)
		for i, w := range snapshot[row] {
			if got[i] != w {
				t.Fatalf("row=%d index=%d: fill is not idempotent, %v != %v", row, i, got[i], w)
			}
		}
	}
}
