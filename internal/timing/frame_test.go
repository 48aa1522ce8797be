package timing

import (
	"testing"
	"time"
)

// frameOf builds a completed frame with a fabricated duration, so rate
// math can be tested deterministically.
func frameOf(d time.Duration) Frame {
	base := time.Now()
	return Frame{
		start: Timestamp{at: base},
		end:   Timestamp{at: base.Add(d)},
	}
}

func TestInFlightFrameTimeIsZero(t *testing.T) {
	f := NewFrame()
	if got := f.FrameTime(); got != 0 {
		t.Errorf("FrameTime() with empty end = %v, want 0", got)
	}
}

func TestEmptyFrameReportsZeroes(t *testing.T) {
	f := EmptyFrame()
	if got := f.FrameTime(); got != 0 {
		t.Errorf("FrameTime() = %v, want 0", got)
	}
	if got := f.DeltaTime(); got != 0 {
		t.Errorf("DeltaTime() = %v, want 0", got)
	}
}

func TestFrameTimeMatchesFabricatedDuration(t *testing.T) {
	f := frameOf(16 * time.Millisecond)
	if got := f.FrameTime(); got != 0.016 {
		t.Errorf("FrameTime() = %v, want 0.016", got)
	}
}

func TestBeginEndProducepositiveFrameTime(t *testing.T) {
	var f Frame
	f.Begin()
	time.Sleep(2 * time.Millisecond)
	f.End()
	if got := f.FrameTime(); got <= 0 {
		t.Errorf("FrameTime() = %v, want > 0", got)
	}
}

func TestDeltaTimeGrowsWhileInFlight(t *testing.T) {
	f := NewFrame()
	first := f.DeltaTime()
	time.Sleep(2 * time.Millisecond)
	second := f.DeltaTime()
	if second <= first {
		t.Errorf("DeltaTime() did not grow: %v then %v", first, second)
	}
}
