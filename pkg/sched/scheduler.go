// Package sched is a cooperative, single-threaded task scheduler. Nothing runs
// on its own goroutine: the owner calls Pump once per display frame and every
// due callback runs inside that call.
package sched

// Handle identifies a scheduled callback. The zero Handle is never issued.
type Handle uint64

// Func receives the pump timestamp in milliseconds
type Func func(nowMs float64)

type task struct {
	id    Handle
	due   float64
	every float64 // zero for one-shot timers and frames
	seq   uint64
	fn    Func
	dead  bool
}

// Scheduler runs frame callbacks and timers from Pump
type Scheduler struct {
	now    float64
	nextID Handle
	seq    uint64
	timers []*task
	frames []*task
	byID   map[Handle]*task
}

// New creates an empty scheduler whose clock starts at zero
func New() *Scheduler {
	return &Scheduler{byID: make(map[Handle]*task)}
}

// Now returns the timestamp of the last pump
func (s *Scheduler) Now() float64 {
	return s.now
}

// RequestFrame runs fn once, on the next Pump
func (s *Scheduler) RequestFrame(fn Func) Handle {
	t := s.newTask(fn)
	s.frames = append(s.frames, t)
	return t.id
}

// After runs fn once, on the first Pump at least delayMs from now
func (s *Scheduler) After(delayMs float64, fn Func) Handle {
	t := s.newTask(fn)
	t.due = s.now + delayMs
	s.timers = append(s.timers, t)
	return t.id
}

// Every runs fn every intervalMs until cancelled. A late pump fires the
// timer once rather than replaying every missed interval.
func (s *Scheduler) Every(intervalMs float64, fn Func) Handle {
	t := s.newTask(fn)
	t.due = s.now + intervalMs
	t.every = intervalMs
	s.timers = append(s.timers, t)
	return t.id
}

// Cancel stops a pending callback. Unknown or finished handles are ignored.
func (s *Scheduler) Cancel(h Handle) {
	t, ok := s.byID[h]
	if !ok {
		return
	}
	t.dead = true
	delete(s.byID, h)
}

// Active reports whether h is still scheduled
func (s *Scheduler) Active(h Handle) bool {
	_, ok := s.byID[h]
	return ok
}

// Pending returns the number of live callbacks
func (s *Scheduler) Pending() int {
	return len(s.byID)
}

// Pump advances the clock to nowMs, runs every due timer in due order and
// then the frame callbacks requested before this pump. Frames requested from
// inside a callback run on the next pump.
func (s *Scheduler) Pump(nowMs float64) {
	if nowMs > s.now {
		s.now = nowMs
	}

	for {
		t := s.nextDue()
		if t == nil {
			break
		}
		if t.every > 0 {
			t.due += t.every
			if t.due <= s.now {
				t.due = s.now + t.every
			}
		} else {
			s.finish(t)
		}
		t.fn(s.now)
	}
	s.compactTimers()

	frames := s.frames
	s.frames = nil
	for _, t := range frames {
		if t.dead {
			continue
		}
		s.finish(t)
		t.fn(s.now)
	}
}

func (s *Scheduler) newTask(fn Func) *task {
	s.nextID++
	s.seq++
	t := &task{id: s.nextID, seq: s.seq, fn: fn}
	s.byID[t.id] = t
	return t
}

func (s *Scheduler) finish(t *task) {
	t.dead = true
	delete(s.byID, t.id)
}

// nextDue picks the earliest live timer that is due, ties broken by creation order
func (s *Scheduler) nextDue() *task {
	var best *task
	for _, t := range s.timers {
		if t.dead || t.due > s.now {
			continue
		}
		if best == nil || t.due < best.due || (t.due == best.due && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

func (s *Scheduler) compactTimers() {
	live := s.timers[:0]
	for _, t := range s.timers {
		if !t.dead {
			live = append(live, t)
		}
	}
	s.timers = live
}
