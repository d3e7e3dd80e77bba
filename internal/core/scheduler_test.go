package core

import "testing"

func TestSchedulerFiresAfterDelay(t *testing.T) {
	var s Scheduler
	fired := 0
	s.After(3, func() { fired++ })

	for i := 0; i < 2; i++ {
		s.Advance()
	}
	if fired != 0 {
		t.Fatalf("fired after 2 ticks, expected to wait 3")
	}

	s.Advance()
	if fired != 1 {
		t.Fatalf("fired = %d after 3 ticks, expected 1", fired)
	}

	for i := 0; i < 5; i++ {
		s.Advance()
	}
	if fired != 1 {
		t.Errorf("callback fired %d times, expected exactly once", fired)
	}
}

func TestSchedulerInvalidateDropsStaleCallbacks(t *testing.T) {
	var s Scheduler
	stale := false
	s.After(2, func() { stale = true })

	s.Advance()
	s.Invalidate()

	fresh := false
	s.After(2, func() { fresh = true })

	for i := 0; i < 4; i++ {
		s.Advance()
	}
	if stale {
		t.Error("callback from an old generation fired")
	}
	if !fresh {
		t.Error("callback from the current generation did not fire")
	}
}

func TestSchedulerCallbackInvalidatesSiblings(t *testing.T) {
	var s Scheduler
	var order []string
	s.After(1, func() {
		order = append(order, "first")
		s.Invalidate()
	})
	s.After(1, func() { order = append(order, "second") })

	s.Advance()

	if len(order) != 1 || order[0] != "first" {
		t.Errorf("order = %v, expected only [first]", order)
	}
	if s.Pending() != 0 {
		t.Errorf("Pending() = %d, expected 0", s.Pending())
	}
}

func TestSchedulerNestedScheduling(t *testing.T) {
	var s Scheduler
	count := 0
	var again func()
	again = func() {
		count++
		if count < 3 {
			s.After(1, again)
		}
	}
	s.After(1, again)

	for i := 0; i < 10; i++ {
		s.Advance()
	}
	if count != 3 {
		t.Errorf("count = %d, expected 3", count)
	}
}

func TestTicksFor(t *testing.T) {
	cfg := RuntimeConfig{TickRate: 60}
	if got := cfg.TicksFor(2); got != 120 {
		t.Errorf("TicksFor(2) = %d, expected 120", got)
	}
	if got := cfg.TicksFor(0); got != 0 {
		t.Errorf("TicksFor(0) = %d, expected 0", got)
	}
	if got := (RuntimeConfig{}).TicksFor(1); got != 60 {
		t.Errorf("TicksFor with zero rate = %d, expected 60", got)
	}
}
