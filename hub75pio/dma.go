//go:build rp2040

package hub75pio

import (
	"device/rp"
	"runtime"
	"runtime/volatile"
	"unsafe"

	"github.com/phkehl/esp32-leddisplay/hub75"
)

// dmaChannel drives one descriptor's words into a PIO state machine's TX
// FIFO over DMA instead of a CPU-polled TxPut loop, adapted from
// piolib's SPI/I2S push32/pull32 (rp2-pio/piolib/dma.go) down to the
// 16-bit transfer size a hub75.Word needs.
type dmaChannel struct {
	hw      *dmaChannelHW
	channel uint8
}

// One DMA channel register block. See rp.DMA_Type.
type dmaChannelHW struct {
	READ_ADDR   volatile.Register32
	WRITE_ADDR  volatile.Register32
	TRANS_COUNT volatile.Register32
	CTRL_TRIG   volatile.Register32
	_           [12]volatile.Register32 // aliases
}

// DMA channels usable on the RP2040.
var dmaChannels = (*[12]dmaChannelHW)(unsafe.Pointer(rp.DMA))

// engineDMAChannel is the one channel an Engine uses for its whole
// lifetime; unlike piolib's SPI/I2S drivers there is only ever one
// hub75pio.Engine active, so static assignment needs no sibling
// constants to stay distinct from.
const engineDMAChannel = 0

func getDMAChannel(channel uint8) *dmaChannel {
	return &dmaChannel{hw: &dmaChannels[channel], channel: channel}
}

// txDREQ returns the DREQ number pacing DMA writes into the TX FIFO of
// state machine smIndex on PIO block blockIndex. Each PIO block owns
// eight consecutive DREQ numbers, four for TX and four for RX, in
// block order (PIO0 TX0-3 = 0x0-0x3, PIO0 RX0-3 = 0x4-0x7, PIO1
// TX0-3 = 0x8-0xb, ...).
func txDREQ(blockIndex, smIndex uint8) uint32 {
	return uint32(blockIndex)*8 + uint32(smIndex)
}

type dmaTxSize uint32

const (
	dmaTxSize8 dmaTxSize = iota
	dmaTxSize16
	dmaTxSize32
)

type dmaChannelConfig struct {
	CTRL uint32
}

const timeoutRetries = 1 << 20

// push16 writes words into the memory location at dst (a state
// machine's TXF register), pacing itself on dreq, and blocks until the
// transfer completes.
func (ch *dmaChannel) push16(dst *uint32, words []hub75.Word, dreq uint32) {
	hw := ch.hw
	srcPtr := uint32(uintptr(unsafe.Pointer(&words[0])))
	dstPtr := uint32(uintptr(unsafe.Pointer(dst)))
	hw.READ_ADDR.Set(srcPtr)
	hw.WRITE_ADDR.Set(dstPtr)
	hw.TRANS_COUNT.Set(uint32(len(words)))

	var cc dmaChannelConfig
	cc.CTRL = hw.CTRL_TRIG.Get()
	cc.setTREQ_SEL(dreq)
	cc.setTransferDataSize(dmaTxSize16)
	cc.setChainTo(uint32(ch.channel))
	cc.setReadIncrement(true)
	cc.setWriteIncrement(false)
	cc.setEnable(true)
	hw.CTRL_TRIG.Set(cc.CTRL)

	retries := timeoutRetries
	for ch.busy() && retries > 0 {
		runtime.Gosched()
		retries--
	}
	if retries == 0 {
		println("hub75pio: DMA push16 timeout")
	}
}

func (ch *dmaChannel) busy() bool {
	return ch.hw.CTRL_TRIG.Get()&rp.DMA_CH0_CTRL_TRIG_BUSY != 0
}

// abort aborts the current transfer and blocks until in-flight
// transfers have been flushed. Called from Stop so a second Setup call
// never races a transfer still draining through the FIFOs.
func (ch *dmaChannel) abort() {
	chMask := uint32(1 << ch.channel)
	rp.DMA.CHAN_ABORT.Set(chMask)
	retries := timeoutRetries
	for rp.DMA.CHAN_ABORT.Get()&chMask != 0 && retries > 0 {
		runtime.Gosched()
		retries--
	}
	if retries == 0 {
		println("hub75pio: DMA abort timeout")
	}
}

func (cc *dmaChannelConfig) setTREQ_SEL(dreq uint32) {
	cc.CTRL = (cc.CTRL & ^uint32(rp.DMA_CH0_CTRL_TRIG_TREQ_SEL_Msk)) | (dreq << rp.DMA_CH0_CTRL_TRIG_TREQ_SEL_Pos)
}

func (cc *dmaChannelConfig) setChainTo(chainTo uint32) {
	cc.CTRL = (cc.CTRL & ^uint32(rp.DMA_CH0_CTRL_TRIG_CHAIN_TO_Msk)) | (chainTo << rp.DMA_CH0_CTRL_TRIG_CHAIN_TO_Pos)
}

func (cc *dmaChannelConfig) setTransferDataSize(size dmaTxSize) {
	cc.CTRL = (cc.CTRL & ^uint32(rp.DMA_CH0_CTRL_TRIG_DATA_SIZE_Msk)) | (uint32(size) << rp.DMA_CH0_CTRL_TRIG_DATA_SIZE_Pos)
}

func (cc *dmaChannelConfig) setReadIncrement(incr bool) {
	setBitPos(&cc.CTRL, rp.DMA_CH0_CTRL_TRIG_INCR_READ_Pos, incr)
}

func (cc *dmaChannelConfig) setWriteIncrement(incr bool) {
	setBitPos(&cc.CTRL, rp.DMA_CH0_CTRL_TRIG_INCR_WRITE_Pos, incr)
}

func (cc *dmaChannelConfig) setEnable(enable bool) {
	setBitPos(&cc.CTRL, rp.DMA_CH0_CTRL_TRIG_EN_Pos, enable)
}

func setBitPos(cc *uint32, pos uint32, bit bool) {
	if bit {
		*cc = *cc | (1 << pos)
	} else {
		*cc = *cc &^ (1 << pos)
	}
}
