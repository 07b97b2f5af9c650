package timer

import (
	"sync"
	"time"
)

// fakeClock is a manually-advanced Clock used by tests so delayed
// effects fire deterministically without real sleeping.
type fakeClock struct {
	mu      sync.Mutex
	now     time.Time
	waiters []fakeWaiter
}

type fakeWaiter struct {
	fireAt time.Time
	ch     chan time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Unix(0, 0)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) After(d time.Duration) <-chan time.Time {
	ch := make(chan time.Time, 1)
	c.mu.Lock()
	fireAt := c.now.Add(d)
	c.waiters = append(c.waiters, fakeWaiter{fireAt: fireAt, ch: ch})
	c.mu.Unlock()
	return ch
}

// Advance moves the fake clock forward by d, firing any waiter whose
// deadline has now passed.
func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	now := c.now
	var remaining []fakeWaiter
	for _, w := range c.waiters {
		if !w.fireAt.After(now) {
			w.ch <- now
		} else {
			remaining = append(remaining, w)
		}
	}
	c.waiters = remaining
	c.mu.Unlock()
}
