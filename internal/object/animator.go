package object

import "time"

// Animator cycles entity frames at a fixed interval, independent of how
// often the game updates.
type Animator struct {
	Interval time.Duration
	last     time.Time
}

// NewAnimator creates an animator whose first tick is one interval after now.
func NewAnimator(interval time.Duration, now time.Time) *Animator {
	return &Animator{Interval: interval, last: now}
}

// Reset restarts the timer at now.
func (a *Animator) Reset(now time.Time) {
	a.last = now
}

// Shift moves the timer forward by d, used to skip time spent paused.
func (a *Animator) Shift(d time.Duration) {
	a.last = a.last.Add(d)
}

// Tick reports whether a frame change is due at now, consuming it if so.
func (a *Animator) Tick(now time.Time) bool {
	if now.Sub(a.last) < a.Interval {
		return false
	}
	a.last = now
	return true
}

// Advance moves e to its next frame when the interval has elapsed.
// Dead entities are left alone.
func (a *Animator) Advance(e *Entity, now time.Time) bool {
	if e == nil || !e.Alive || !a.Tick(now) {
		return false
	}
	e.NextFrame()
	return true
}

// AdvanceAll moves every live entity in es to its next frame on a shared tick.
func (a *Animator) AdvanceAll(es []*Entity, now time.Time) bool {
	if !a.Tick(now) {
		return false
	}
	for _, e := range es {
		if e.Alive {
			e.NextFrame()
		}
	}
	return true
}
