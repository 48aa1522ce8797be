package timing

import (
	"math"
	"testing"
	"time"
)

func TestHistoryEvictsOldestFirst(t *testing.T) {
	h := NewHistory()
	durations := make([]time.Duration, 200)
	for i := range durations {
		durations[i] = time.Duration(i+1) * time.Millisecond
		h.Push(frameOf(durations[i]))
	}

	if h.Len() != HistoryLen {
		t.Fatalf("Len() = %d, want %d", h.Len(), HistoryLen)
	}

	// The surviving window must be the last 128 pushes, oldest first.
	for i := 0; i < HistoryLen; i++ {
		want := float32(durations[200-HistoryLen+i].Seconds())
		if got := h.frames.at(i).FrameTime(); got != want {
			t.Fatalf("frame %d: FrameTime() = %v, want %v", i, got, want)
		}
	}
}

func TestHistoryLastReturnsNewest(t *testing.T) {
	h := NewHistory()
	if _, ok := h.Last(); ok {
		t.Fatal("Last() on empty history should report false")
	}
	h.Push(frameOf(10 * time.Millisecond))
	h.Push(frameOf(20 * time.Millisecond))
	last, ok := h.Last()
	if !ok {
		t.Fatal("Last() should report true after pushes")
	}
	if got := last.FrameTime(); got != 0.02 {
		t.Errorf("Last().FrameTime() = %v, want 0.02", got)
	}
}

func TestLastDeltaOnEmptyHistoryIsZero(t *testing.T) {
	h := NewHistory()
	if got := h.LastDelta(); got != 0 {
		t.Errorf("LastDelta() = %v, want 0", got)
	}
}

func TestFrameRateUsesRoundedDurationSum(t *testing.T) {
	h := NewHistory()
	// 64 frames of 20ms: sum = 1.28s, rounds to 1.28, rate = 50.
	for i := 0; i < 64; i++ {
		h.frames.push(frameOf(20 * time.Millisecond))
	}
	if got := h.FrameRate(); math.Abs(float64(got)-50) > 1e-4 {
		t.Errorf("FrameRate() = %v, want 50", got)
	}

	// 3 frames of 1ms: sum = 0.003s, rounds to 0.00, rate = +Inf.
	// The warm-up window is the caller's problem by contract.
	h2 := NewHistory()
	for i := 0; i < 3; i++ {
		h2.frames.push(frameOf(time.Millisecond))
	}
	if got := h2.FrameRate(); !math.IsInf(float64(got), 1) {
		t.Errorf("FrameRate() over sub-centisecond sum = %v, want +Inf", got)
	}
}

func TestFrameRateOfEmptyHistoryIsNaN(t *testing.T) {
	h := NewHistory()
	if got := h.FrameRate(); !math.IsNaN(float64(got)) {
		t.Errorf("FrameRate() = %v, want NaN", got)
	}
	if got := h.AverageFrameRate(); !math.IsNaN(float64(got)) {
		t.Errorf("AverageFrameRate() = %v, want NaN", got)
	}
}

func TestAverageFrameRateIsArithmeticMean(t *testing.T) {
	h := NewHistory()
	for i := 0; i < 10; i++ {
		h.rates.push(60)
	}
	for i := 0; i < 5; i++ {
		h.rates.push(30)
	}
	if got := h.AverageFrameRate(); got != 50 {
		t.Errorf("AverageFrameRate() = %v, want 50", got)
	}
}

func TestRateBufferIsBounded(t *testing.T) {
	h := NewHistory()
	for i := 0; i < 300; i++ {
		h.rates.push(float32(i))
	}
	if h.rates.len() != HistoryLen {
		t.Fatalf("rate buffer length = %d, want %d", h.rates.len(), HistoryLen)
	}
	if got := h.rates.at(0); got != float32(300-HistoryLen) {
		t.Errorf("oldest rate = %v, want %v", got, float32(300-HistoryLen))
	}
}
