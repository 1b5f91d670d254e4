package hub75

import "testing"

func TestRGBFrameBoundsChecked(t *testing.T) {
	geo := Geometry{Width: 32, Height: 16, RowsInParallel: 2}
	f := NewRGBFrame(geo)
	f.Set(-1, 0, RGB{R: 1})
	f.Set(0, -1, RGB{R: 1})
	f.Set(geo.Width, 0, RGB{R: 1})
	f.Set(0, geo.Height, RGB{R: 1})
	if f.At(-1, 0) != (RGB{}) || f.At(0, -1) != (RGB{}) {
		t.Error("out-of-range Set mutated the frame")
	}

	f.Set(3, 3, RGB{R: 9, G: 8, B: 7})
	if got := f.At(3, 3); got != (RGB{R: 9, G: 8, B: 7}) {
		t.Errorf("At(3,3) = %+v, want {9 8 7}", got)
	}
}

func TestRGBFrameFillAndClear(t *testing.T) {
	geo := Geometry{Width: 32, Height: 16, RowsInParallel: 2}
	f := NewRGBFrame(geo)
	f.Fill(RGB{R: 5, G: 6, B: 7})
	for y := 0; y < geo.Height; y++ {
		for x := 0; x < geo.Width; x++ {
			if got := f.At(x, y); got != (RGB{R: 5, G: 6, B: 7}) {
				t.Fatalf("At(%d,%d) = %+v after Fill, want {5 6 7}", x, y, got)
			}
		}
	}
	f.Clear()
	for y := 0; y < geo.Height; y++ {
		for x := 0; x < geo.Width; x++ {
			if got := f.At(x, y); got != (RGB{}) {
				t.Fatalf("At(%d,%d) = %+v after Clear, want zero", x, y, got)
			}
		}
	}
}

func TestFramePublishRoundTrip(t *testing.T) {
	engine := &fakeEngine{}
	geo := Geometry{Width: 32, Height: 16, RowsInParallel: 2}
	cfg := testConfig(geo, engine)
	d, err := Open(cfg)
	if err != nil {
		t.Fatalf("Open() = %v", err)
	}
	defer d.Close()

	f := NewRGBFrame(geo)
	d.FrameXY(f, 0, 0, RGB{R: 128})

	drawingBefore := d.current
	d.FramePublish(f)
	if d.current == drawingBefore {
		t.Error("FramePublish did not advance the drawing buffer index")
	}

	encoded := d.buffers[drawingBefore]
	w := encoded.Get(0, Depth-1, 0^1)
	if w&(1<<bitR1) == 0 {
		t.Errorf("plane 7 word for (0,0) missing R1 bit for a 128 red pixel")
	}
	if w&(1<<bitG1) != 0 || w&(1<<bitB1) != 0 {
		t.Errorf("plane 7 word for (0,0) has unexpected G1/B1 bits set: %016b", w)
	}
}

func TestFramePublishIsBlockingAtEntry(t *testing.T) {
	engine := &fakeEngine{}
	geo := Geometry{Width: 32, Height: 16, RowsInParallel: 2}
	cfg := testConfig(geo, engine)
	d, err := Open(cfg)
	if err != nil {
		t.Fatalf("Open() = %v", err)
	}
	defer d.Close()

	if d.flip.hasWaiter() {
		t.Fatal("fresh Display already has a flip waiter")
	}
	f := NewRGBFrame(geo)
	d.FramePublish(f) // must acquire the semaphore without deadlocking
}
