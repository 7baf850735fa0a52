package level

const secondMs = 1000.0

// Timer turns frame timestamps into whole-second ticks. The first call after
// a reset only anchors the reference time, so pauses never count.
type Timer struct {
	anchor   float64
	anchored bool
}

// Reset forgets the reference timestamp
func (t *Timer) Reset() {
	t.anchored = false
}

// Tick reports whether a full second has elapsed since the last tick.
// On a tick the reference moves to nowMs.
func (t *Timer) Tick(nowMs float64) bool {
	if !t.anchored {
		t.anchor = nowMs
		t.anchored = true
		return false
	}
	if nowMs-t.anchor >= secondMs {
		t.anchor = nowMs
		return true
	}
	return false
}
