package hub75

// PixelXY encodes one pixel directly into the current drawing buffer,
// preserving the opposite half's bits. Out of range coordinates are
// silently ignored.
func (d *Display) PixelXY(x, y int, c RGB) {
	d.encoder.EncodeSinglePixel(d.buffers[d.current], x, y, c)
}

// PixelFill encodes every word of the current drawing buffer with c,
// both halves alike.
func (d *Display) PixelFill(c RGB) {
	d.encoder.EncodeFill(d.buffers[d.current], c)
}

// PixelPublish flips to the buffer just drawn and advances the drawing
// buffer index. If block is true it then waits for the flip semaphore,
// guaranteeing the new drawing buffer is no longer under DMA read before
// returning.
func (d *Display) PixelPublish(block bool) {
	d.engine.FlipTo(d.current)
	d.current = 1 - d.current
	if block {
		d.flip.acquire()
	}
}
