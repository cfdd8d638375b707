package navigation

import (
	"slices"
	"time"
)

// ManualScheduler is a Scheduler driven by hand, with a virtual clock. It is
// meant for tests and for hosts that pump their own loop.
type ManualScheduler struct {
	now   time.Duration
	seq   int
	tasks []task
}

type task struct {
	at  time.Duration
	seq int
	fn  func()
}

func (s *ManualScheduler) Defer(fn func()) {
	s.After(0, fn)
}

func (s *ManualScheduler) After(d time.Duration, fn func()) {
	s.seq++
	s.tasks = append(s.tasks, task{at: s.now + max(d, 0), seq: s.seq, fn: fn})
}

// Pending returns the number of scheduled functions not yet run.
func (s *ManualScheduler) Pending() int {
	return len(s.tasks)
}

// Tick runs the functions that are due now and were scheduled before the
// call. Functions they schedule wait for the next Tick.
func (s *ManualScheduler) Tick() int {
	due := s.dueAt(s.now)
	for _, t := range due {
		t.fn()
	}
	return len(due)
}

// Drain ticks until nothing is due at the current time.
func (s *ManualScheduler) Drain() {
	for s.Tick() > 0 {
	}
}

// Advance moves the clock forward by d, running every function that becomes
// due on the way in time order.
func (s *ManualScheduler) Advance(d time.Duration) {
	target := s.now + d
	for {
		i := s.next(target)
		if i < 0 {
			break
		}
		t := s.tasks[i]
		s.tasks = slices.Delete(s.tasks, i, i+1)
		s.now = t.at
		t.fn()
	}
	s.now = target
}

// Now returns the virtual time elapsed since the scheduler was created.
func (s *ManualScheduler) Now() time.Duration {
	return s.now
}

func (s *ManualScheduler) dueAt(at time.Duration) []task {
	var due, rest []task
	for _, t := range s.tasks {
		if t.at <= at {
			due = append(due, t)
		} else {
			rest = append(rest, t)
		}
	}
	s.tasks = rest
	slices.SortStableFunc(due, compareTasks)
	return due
}

func (s *ManualScheduler) next(limit time.Duration) int {
	best := -1
	for i, t := range s.tasks {
		if t.at > limit {
			continue
		}
		if best < 0 || compareTasks(t, s.tasks[best]) < 0 {
			best = i
		}
	}
	return best
}

func compareTasks(a, b task) int {
	if a.at != b.at {
		if a.at < b.at {
			return -1
		}
		return 1
	}
	return a.seq - b.seq
}
