package hub75

// fakeEngine is a hub75.StreamEngine test double: it records every
// linked descriptor and flip request, and fires the completion callback
// synchronously on FlipTo since there is no real DMA hardware in a host
// test build to catch up asynchronously.
type fakeEngine struct {
	setupCfg  StreamEngineConfig
	setupErr  error
	linked    []*Descriptor
	flips     []int
	stopped   bool
	callback  func()
}

func (f *fakeEngine) Setup(cfg StreamEngineConfig) error {
	f.setupCfg = cfg
	return f.setupErr
}

func (f *fakeEngine) LinkDescriptor(d *Descriptor) {
	f.linked = append(f.linked, d)
}

func (f *fakeEngine) FlipTo(bufferID int) {
	f.flips = append(f.flips, bufferID)
	if f.callback != nil {
		f.callback()
	}
}

func (f *fakeEngine) Stop() {
	f.stopped = true
}

func (f *fakeEngine) SetShiftCompleteCallback(fn func()) {
	f.callback = fn
}

func testPins() GPIOMap {
	return GPIOMap{
		R1: 0, G1: 1, B1: 2,
		R2: 3, G2: 4, B2: 5,
		LAT: 6, OE: 7,
		A: 8, B: 9, C: 10, D: 11, E: 12,
		Clock: 13,
	}
}

func testConfig(geo Geometry, engine StreamEngine) Config {
	return Config{
		Geometry:     geo,
		ClockFreq:    Clock20MHz,
		MinRefreshHz: 1,
		GammaMode:    GammaOff,
		Pins:         testPins(),
		Engine:       engine,
	}
}
