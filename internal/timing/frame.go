package timing

// Frame holds one frame's start and end timestamps. A frame whose end
// was never recorded is "in flight": FrameTime reports 0, which is a
// defined state, not an error.
type Frame struct {
	start Timestamp
	end   Timestamp
}

// NewFrame returns a frame started now with no end recorded.
func NewFrame() Frame {
	return Frame{start: Now(), end: Empty()}
}

// EmptyFrame returns a frame with neither boundary recorded.
func EmptyFrame() Frame {
	return Frame{}
}

// Begin resets the start boundary to now.
func (f *Frame) Begin() {
	f.start = Now()
}

// End records the end boundary.
func (f *Frame) End() {
	f.end = Now()
}

// FrameTime returns the start-to-end duration in seconds, 0 while the
// frame is still in flight.
func (f Frame) FrameTime() float32 {
	return f.start.Delta(f.end)
}

// DeltaTime returns seconds elapsed since the frame started. This is
// the per-frame simulation step consumed by update.
func (f Frame) DeltaTime() float32 {
	return f.start.Elapsed()
}
