package timing

import "time"

// Timestamp is a monotonic point in time, or an empty sentinel meaning
// "not yet recorded". The zero value is empty.
type Timestamp struct {
	at time.Time
}

// Now captures the current monotonic instant.
func Now() Timestamp {
	return Timestamp{at: time.Now()}
}

// Empty returns the sentinel timestamp with no time captured.
func Empty() Timestamp {
	return Timestamp{}
}

// IsEmpty reports whether no time was captured.
func (ts Timestamp) IsEmpty() bool {
	return ts.at.IsZero()
}

// Elapsed returns seconds since capture, or 0 for an empty timestamp.
func (ts Timestamp) Elapsed() float32 {
	if ts.IsEmpty() {
		return 0
	}
	return float32(time.Since(ts.at).Seconds())
}

// Delta returns other's age subtracted from this timestamp's age, i.e.
// the signed seconds from ts to other. Returns 0 if either is empty.
func (ts Timestamp) Delta(other Timestamp) float32 {
	if ts.IsEmpty() || other.IsEmpty() {
		return 0
	}
	// elapsed(ts) - elapsed(other) collapses to other - ts, with no
	// clock read, so the result is exact.
	return float32(other.at.Sub(ts.at).Seconds())
}
