package core

import "time"

// Governor caps a loop to a fixed number of ticks per second by sleeping
// for whatever is left of each tick's time budget. The first budget starts
// when the governor is created.
type Governor struct {
	interval time.Duration
	next     time.Time

	// now and sleep are swapped out in tests.
	now   func() time.Time
	sleep func(time.Duration)
}

// NewGovernor creates a governor for the given tick rate.
// Non-positive rates fall back to 10 ticks per second.
func NewGovernor(ticksPerSecond int) *Governor {
	return newGovernor(ticksPerSecond, time.Now, time.Sleep)
}

func newGovernor(ticksPerSecond int, now func() time.Time, sleep func(time.Duration)) *Governor {
	if ticksPerSecond <= 0 {
		ticksPerSecond = 10
	}
	return &Governor{
		interval: time.Second / time.Duration(ticksPerSecond),
		next:     now(),
		now:      now,
		sleep:    sleep,
	}
}

// Interval returns the duration of a single tick.
func (g *Governor) Interval() time.Duration {
	return g.interval
}

// Tick blocks until the current tick's budget has elapsed.
// A loop that falls behind by more than one tick does not try to catch up.
func (g *Governor) Tick() {
	now := g.now()
	g.next = g.next.Add(g.interval)

	wait := g.next.Sub(now)
	if wait <= 0 {
		if -wait > g.interval {
			g.next = now
		}
		return
	}
	g.sleep(wait)
}
