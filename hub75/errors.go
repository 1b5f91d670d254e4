package hub75

import "errors"

// Sentinel errors returned by Open. Runtime drawing calls never fail:
// out-of-range coordinates are silently ignored and publish blocks
// rather than returning a timeout.
var (
	// ErrOutOfMemory means the bitplane buffers or descriptor rings
	// could not be allocated from DMA-capable memory.
	ErrOutOfMemory = errors.New("hub75: out of memory")

	// ErrRefreshUnachievable means no LSB-MSB transition bit satisfies
	// the configured minimum refresh rate within the memory budget.
	ErrRefreshUnachievable = errors.New("hub75: refresh rate unachievable")

	// ErrHardwareFail means the StreamEngine's Setup returned an error.
	ErrHardwareFail = errors.New("hub75: hardware setup failed")

	// ErrInvalidConfig means the geometry/frequency combination is not
	// one of the supported panel configurations.
	ErrInvalidConfig = errors.New("hub75: invalid configuration")

	errShutdownWithWaiter = errors.New("hub75: shutdown called with a publish blocked on the flip semaphore")
)
