package timing

import "github.com/chewxy/math32"

// HistoryLen is the capacity of both the frame buffer and the rate
// buffer. Once full, the oldest entry is evicted on every push.
const HistoryLen = 128

// ring is a fixed-capacity FIFO. Push and eviction are O(1).
type ring[T any] struct {
	buf   []T
	head  int
	count int
}

func newRing[T any](capacity int) ring[T] {
	return ring[T]{buf: make([]T, capacity)}
}

func (r *ring[T]) push(v T) {
	if r.count < len(r.buf) {
		r.buf[(r.head+r.count)%len(r.buf)] = v
		r.count++
		return
	}
	// Full: overwrite the oldest slot and advance.
	r.buf[r.head] = v
	r.head = (r.head + 1) % len(r.buf)
}

func (r *ring[T]) len() int {
	return r.count
}

// at indexes from oldest (0) to newest (len-1).
func (r *ring[T]) at(i int) T {
	return r.buf[(r.head+i)%len(r.buf)]
}

// History keeps the most recent completed frames and the instantaneous
// frame rates derived from them. Single-writer: the frame loop pushes,
// the title display reads from the same goroutine.
type History struct {
	frames ring[Frame]
	rates  ring[float32]
}

func NewHistory() *History {
	return &History{
		frames: newRing[Frame](HistoryLen),
		rates:  newRing[float32](HistoryLen),
	}
}

// Push appends a completed frame, evicting the oldest once capacity is
// exceeded, then records the instantaneous rate over the updated window.
func (h *History) Push(f Frame) {
	h.frames.push(f)
	h.rates.push(h.FrameRate())
}

// Len returns the number of frames currently held.
func (h *History) Len() int {
	return h.frames.len()
}

// Last returns the most recently pushed frame, or false if none.
func (h *History) Last() (Frame, bool) {
	if h.frames.len() == 0 {
		return Frame{}, false
	}
	return h.frames.at(h.frames.len() - 1), true
}

// LastDelta returns DeltaTime of the most recently completed frame,
// 0 when the history is empty. This is the one-frame-lagged pacing
// step used by the simulation update.
func (h *History) LastDelta() float32 {
	last, ok := h.Last()
	if !ok {
		return 0
	}
	return last.DeltaTime()
}

// FrameRate returns frames per second over the buffered window:
// count divided by the duration sum rounded to two decimal places,
// which smooths the readout at the cost of +Inf when the window sums
// under 5ms. An empty history yields NaN; callers guard display.
func (h *History) FrameRate() float32 {
	var sum float32
	for i := 0; i < h.frames.len(); i++ {
		sum += h.frames.at(i).FrameTime()
	}
	return float32(h.frames.len()) / (math32.Round(sum*100) / 100)
}

// AverageFrameRate returns the arithmetic mean of the buffered
// instantaneous rates. NaN while the buffer is empty.
func (h *History) AverageFrameRate() float32 {
	var sum float32
	for i := 0; i < h.rates.len(); i++ {
		sum += h.rates.at(i)
	}
	return sum / float32(h.rates.len())
}
