// Package sched runs delayed callbacks on the game's simulated clock.
// Timers belong to an owner so that everything scheduled on behalf of an
// entity can be cancelled when the entity goes away.
package sched

import (
	"sort"
	"time"
)

// Handle identifies a scheduled callback.
type Handle uint64

type timer struct {
	id    Handle
	owner any
	due   time.Duration
	fn    func()
}

// Clock is a manually advanced timer queue. It is not safe for concurrent
// use; the game loop owns it.
type Clock struct {
	now    time.Duration
	nextID Handle
	timers []*timer
}

// New creates a clock at time zero.
func New() *Clock {
	return &Clock{}
}

// Now returns the simulated time.
func (c *Clock) Now() time.Duration {
	return c.now
}

// After schedules fn to run once d has elapsed. owner may be nil.
func (c *Clock) After(owner any, d time.Duration, fn func()) Handle {
	c.nextID++
	c.timers = append(c.timers, &timer{id: c.nextID, owner: owner, due: c.now + d, fn: fn})
	return c.nextID
}

// Cancel removes a pending callback. It reports whether one was removed.
func (c *Clock) Cancel(h Handle) bool {
	for i, t := range c.timers {
		if t.id == h {
			c.timers = append(c.timers[:i], c.timers[i+1:]...)
			return true
		}
	}
	return false
}

// CancelOwner removes every pending callback of owner and returns how many.
func (c *Clock) CancelOwner(owner any) int {
	kept := c.timers[:0]
	removed := 0
	for _, t := range c.timers {
		if owner != nil && t.owner == owner {
			removed++
			continue
		}
		kept = append(kept, t)
	}
	clear(c.timers[len(kept):])
	c.timers = kept
	return removed
}

// Pending returns the number of scheduled callbacks.
func (c *Clock) Pending() int {
	return len(c.timers)
}

// Advance moves the clock forward and runs every callback that became due,
// earliest first. Callbacks scheduled during Advance run on a later call.
// It returns the number of callbacks run.
func (c *Clock) Advance(dt time.Duration) int {
	c.now += dt

	var due []*timer
	kept := c.timers[:0]
	for _, t := range c.timers {
		if t.due <= c.now {
			due = append(due, t)
			continue
		}
		kept = append(kept, t)
	}
	clear(c.timers[len(kept):])
	c.timers = kept

	sort.SliceStable(due, func(i, j int) bool {
		if due[i].due != due[j].due {
			return due[i].due < due[j].due
		}
		return due[i].id < due[j].id
	})
	for _, t := range due {
		t.fn()
	}
	return len(due)
}

// Reset drops every pending callback and rewinds to zero.
func (c *Clock) Reset() {
	c.now = 0
	c.timers = nil
}
