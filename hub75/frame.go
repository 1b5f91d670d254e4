package hub75

// FrameXY writes one pixel into the caller-owned staging frame f.
// Out-of-range coordinates are silently ignored by RGBFrame.Set.
func (d *Display) FrameXY(f *RGBFrame, x, y int, c RGB) {
	f.Set(x, y, c)
}

// FrameFill byte-fills f with c.
func (d *Display) FrameFill(f *RGBFrame, c RGB) {
	f.Fill(c)
}

// FrameClear zeroes f.
func (d *Display) FrameClear(f *RGBFrame) {
	f.Clear()
}

// FramePublish acquires the flip semaphore first so it writes into an
// idle buffer, encodes f into the now-exclusive drawing buffer, then
// issues a non-blocking flip and returns without re-acquiring.
func (d *Display) FramePublish(f *RGBFrame) {
	d.flip.acquire()
	d.encoder.EncodeFrame(d.buffers[d.current], f)
	d.engine.FlipTo(d.current)
	d.current = 1 - d.current
}
