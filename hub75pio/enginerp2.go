//go:build rp2040

// Package hub75pio implements hub75.StreamEngine on RP2040 hardware: a
// PIO state machine shifts out one 16-bit word per pixel clock over the
// panel's thirteen parallel lanes, side-set by the pixel clock pin
// itself, while Engine.Run walks the currently armed descriptor ring and
// feeds it.
package hub75pio

import (
	"machine"
	"unsafe"

	"github.com/phkehl/esp32-leddisplay/hub75"
	pio "github.com/phkehl/esp32-leddisplay/rp2-pio"
)

// busWidth is the number of parallel data lanes the PIO program drives:
// R1,G1,B1,R2,G2,B2,LAT,OE,A,B,C,D,E (on-wire layout, bits 0-12).
const busWidth = 13

// shiftBits is the full word width shifted per pixel clock; the three
// reserved high bits (13-15) are shifted out unused.
const shiftBits = 16

// Engine is a hub75.StreamEngine backed by one RP2040 PIO state machine,
// adapted from piolib's ParallelGeneric (out pins + side-set clock, fed
// via the TX FIFO) to walk a caller-supplied descriptor ring instead of
// a single flat buffer.
type Engine struct {
	sm      pio.StateMachine
	progOff uint8
	dma     *dmaChannel
	dreq    uint32

	callback func()

	heads        [2]*hub75.Descriptor
	ringIdx      int
	awaitingHead bool

	current *hub75.Descriptor
	armed   int
	target  int
	running bool
}

// New returns an Engine driven by sm. The caller selects and claims the
// state machine the way piolib's constructors do (NewParallelGeneric,
// NewHub75).
func New(sm pio.StateMachine) *Engine {
	return &Engine{sm: sm, awaitingHead: true}
}

// Setup configures the PIO program, pin directions, and clock divider
// for cfg (hub75.StreamEngine). It mirrors parallel_generic.go's
// NewParallelGeneric almost exactly, generalized to a 16-bit shift width
// and the panel's GPIOMap; cfg.Pins lanes from R1 through E (in
// on-wire bit order) are required to occupy busWidth consecutive GPIOs
// starting at R1, the layout a HUB75 adapter board wires for parallel
// PIO output.
func (e *Engine) Setup(cfg hub75.StreamEngineConfig) error {
	e.sm.TryClaim()
	Pio := e.sm.PIO()

	whole, frac, err := pio.ClkDivFromFrequency(cfg.ClockHz, machine.CPUFrequency())
	if err != nil {
		return err
	}

	const sideSetBitCount = 1
	const programOrigin = -1
	program := [3]uint16{
		pio.EncodeOut(pio.SrcDestPins, shiftBits) | pio.EncodeSideSet(sideSetBitCount, 0), // 0: out pins, 16  side 0
		pio.EncodeNOP() | pio.EncodeSideSet(sideSetBitCount, 1),                           // 1: nop          side 1 (clock high)
		pio.EncodeNOP() | pio.EncodeSideSet(sideSetBitCount, 0),                           // 2: nop          side 0 (clock low)
	}
	progOffset, err := Pio.AddProgram(program[:], programOrigin)
	if err != nil {
		return err
	}
	e.progOff = progOffset

	dataBase := machine.Pin(cfg.Pins.R1)
	clock := machine.Pin(cfg.Pins.Clock)

	pinCfg := machine.PinConfig{Mode: Pio.PinMode()}
	pinMask := uint32(1) << uint(clock)
	for i := 0; i < busWidth; i++ {
		p := dataBase + machine.Pin(i)
		pinMask |= 1 << uint(p)
		p.Configure(pinCfg)
	}
	clock.Configure(pinCfg)

	scfg := pio.DefaultStateMachineConfig()
	scfg.SetWrap(progOffset, progOffset+uint8(len(program))-1)
	scfg.SetSidesetParams(sideSetBitCount, false, false)
	scfg.SetOutPins(dataBase, busWidth)
	scfg.SetOutShift(true, true, shiftBits)
	scfg.SetSidesetPins(clock)
	scfg.SetClkDivIntFrac(whole, frac)
	scfg.SetFIFOJoin(pio.FifoJoinTx)

	e.sm.SetPinsMasked(0, pinMask)
	e.sm.SetPindirsMasked(pinMask, pinMask)
	e.sm.Init(progOffset, scfg)
	e.sm.SetEnabled(true)

	e.dma = getDMAChannel(engineDMAChannel)
	e.dreq = txDREQ(Pio.BlockIndex(), e.sm.StateMachineIndex())
	return nil
}

// LinkDescriptor records d as part of the ring currently being built.
// The core links R*K(t) descriptors per buffer, ring 0 fully before
// ring 1 (DescriptorRing.link, called per ring from hub75.Open); Engine recovers each ring's
// head by watching for the descriptor marked EndOfList.
func (e *Engine) LinkDescriptor(d *hub75.Descriptor) {
	if e.awaitingHead {
		e.heads[e.ringIdx] = d
		e.awaitingHead = false
	}
	if d.EndOfList {
		e.ringIdx++
		e.awaitingHead = true
	}
}

// FlipTo arms a switch to bufferID's ring at the next end-of-list
// boundary.
func (e *Engine) FlipTo(bufferID int) {
	e.target = bufferID
}

// SetShiftCompleteCallback registers the completion callback fired once
// per ring traversal, at end-of-list.
func (e *Engine) SetShiftCompleteCallback(fn func()) {
	e.callback = fn
}

// Stop halts Run's loop at its next descriptor boundary and aborts any
// DMA transfer still in flight, so a later Setup never races a drain
// still working through the FIFOs.
func (e *Engine) Stop() {
	e.running = false
	if e.dma != nil {
		e.dma.abort()
	}
}

// Run streams the currently armed ring forever, DMAing every
// descriptor's words into the TX FIFO and switching rings at
// end-of-list boundaries. Callers run it in its own goroutine; within
// the loop itself there is no CPU-side shifting at all, push16 blocks
// only until its chained DMA transfer completes.
func (e *Engine) Run() {
	e.running = true
	e.current = e.heads[e.armed]
	txReg := (*uint32)(unsafe.Pointer(e.sm.TxReg()))
	for e.running {
		e.dma.push16(txReg, e.current.Data, e.dreq)
		if e.current.EndOfList {
			e.armed = e.target
			if e.callback != nil {
				e.callback()
			}
			e.current = e.heads[e.armed]
			continue
		}
		e.current = e.current.Next
	}
}
