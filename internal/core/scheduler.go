package core

// Scheduler runs fire-and-forget callbacks after a number of ticks.
//
// Every callback is bound to the generation that was current when it was
// scheduled. Invalidate starts a new generation; callbacks from older
// generations are dropped instead of firing, so a timer left over from a
// previous level can never act on the next one.
type Scheduler struct {
	now        uint64
	generation uint64
	pending    []scheduled
}

type scheduled struct {
	due        uint64
	generation uint64
	fn         func()
}

// Now returns the number of ticks advanced so far.
func (s *Scheduler) Now() uint64 {
	return s.now
}

// Generation returns the current generation token.
func (s *Scheduler) Generation() uint64 {
	return s.generation
}

// Invalidate cancels every pending callback by starting a new generation.
// It returns the new generation token.
func (s *Scheduler) Invalidate() uint64 {
	s.generation++
	s.pending = s.pending[:0]
	return s.generation
}

// After schedules fn to run once, delay ticks from now, in the current generation.
// A zero delay fires on the next Advance.
func (s *Scheduler) After(delay uint64, fn func()) {
	s.pending = append(s.pending, scheduled{
		due:        s.now + delay,
		generation: s.generation,
		fn:         fn,
	})
}

// Pending returns the number of callbacks still waiting in the current generation.
func (s *Scheduler) Pending() int {
	n := 0
	for _, p := range s.pending {
		if p.generation == s.generation {
			n++
		}
	}
	return n
}

// Advance moves time forward one tick and runs due callbacks in schedule order.
// A callback may schedule more work or invalidate the scheduler; work it
// invalidates is not run.
func (s *Scheduler) Advance() {
	s.now++

	due := s.collectDue()
	for _, p := range due {
		if p.generation != s.generation {
			continue
		}
		p.fn()
	}
}

// collectDue removes and returns callbacks whose time has come.
func (s *Scheduler) collectDue() []scheduled {
	var due []scheduled
	kept := s.pending[:0]
	for _, p := range s.pending {
		switch {
		case p.generation != s.generation:
			// stale, drop
		case p.due <= s.now:
			due = append(due, p)
		default:
			kept = append(kept, p)
		}
	}
	s.pending = kept
	return due
}
