package hub75

import "fmt"

// ClockFreq is one of the four pixel-clock frequencies the planner may
// budget against.
type ClockFreq uint32

const (
	Clock13MHz ClockFreq = 13_333_333
	Clock16MHz ClockFreq = 16_000_000
	Clock20MHz ClockFreq = 20_000_000
	Clock26MHz ClockFreq = 26_666_667
)

// Hz returns the frequency in hertz.
func (c ClockFreq) Hz() uint32 { return uint32(c) }

func (c ClockFreq) valid() bool {
	switch c {
	case Clock13MHz, Clock16MHz, Clock20MHz, Clock26MHz:
		return true
	}
	return false
}

// unassignedPin marks a lane with no GPIO assigned.
const unassignedPin = -1

// GPIOMap is the pin assignment for the thirteen parallel lanes plus the
// pixel clock. A concrete StreamEngine backend validates it before
// configuring hardware.
type GPIOMap struct {
	R1, G1, B1 int
	R2, G2, B2 int
	LAT, OE    int
	A, B, C, D int
	E          int // only meaningful when the geometry's HasE is set
	Clock      int
}

// Validate checks that every lane required by hasE has a distinct,
// non-negative pin assignment.
func (m GPIOMap) Validate(hasE bool) error {
	required := []int{m.R1, m.G1, m.B1, m.R2, m.G2, m.B2, m.LAT, m.OE, m.A, m.B, m.C, m.D, m.Clock}
	if hasE {
		required = append(required, m.E)
	}
	seen := make(map[int]bool, len(required))
	for _, pin := range required {
		if pin < 0 { // unassignedPin or any other negative value
			return fmt.Errorf("%w: GPIOMap has an unassigned required lane", ErrInvalidConfig)
		}
		if seen[pin] {
			return fmt.Errorf("%w: GPIOMap assigns pin %d to more than one lane", ErrInvalidConfig, pin)
		}
		seen[pin] = true
	}
	return nil
}

// Logger is the optional sink for diagnostic messages; nil (the zero
// value of Config.Logger) means silent, matching embedded targets that
// avoid pulling in a logging dependency.
type Logger interface {
	Printf(format string, args ...any)
}

// Config is the public option surface passed to Open.
type Config struct {
	Geometry     Geometry
	ClockFreq    ClockFreq
	MinRefreshHz uint32
	ReserveBytes uint32
	GammaMode    GammaMode
	Pins         GPIOMap

	// Engine is the concrete stream engine backend. It must be non-nil;
	// hub75pio.New returns one for RP2040 targets.
	Engine StreamEngine

	// Allocator supplies DMA-capable memory for bitplane buffers and
	// descriptor rings. Defaults to a plain slice allocator with a
	// generous fixed budget when nil, suitable for host builds and
	// tests.
	Allocator BufferAllocator

	// Logger receives diagnostic messages; nil means silent.
	Logger Logger
}

func (c *Config) validate() error {
	if err := c.Geometry.Validate(); err != nil {
		return err
	}
	if !c.ClockFreq.valid() {
		return fmt.Errorf("%w: unsupported pixel clock %d Hz", ErrInvalidConfig, c.ClockFreq)
	}
	if c.MinRefreshHz == 0 {
		return fmt.Errorf("%w: MinRefreshHz must be > 0", ErrInvalidConfig)
	}
	if c.Engine == nil {
		return fmt.Errorf("%w: Config.Engine must not be nil", ErrInvalidConfig)
	}
	return c.Pins.Validate(c.Geometry.HasE)
}

func (c *Config) logf(format string, args ...any) {
	if c.Logger != nil {
		c.Logger.Printf(format, args...)
	}
}
