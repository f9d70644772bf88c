package service

import (
	"sync"
	"time"
)

// fakeClock returns fixed time and hands out controllable timer channels.
type fakeClock struct {
	mu      sync.Mutex
	now     time.Time
	waiters []fakeWaiter
}

type fakeWaiter struct {
	d  time.Duration
	ch chan time.Time
}

func newFakeClock(now time.Time) *fakeClock {
	return &fakeClock{now: now}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) After(d time.Duration) <-chan time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	ch := make(chan time.Time, 1)
	c.waiters = append(c.waiters, fakeWaiter{d: d, ch: ch})
	return ch
}

func (c *fakeClock) waiterCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.waiters)
}

// fire releases the i-th timer handed out so far.
func (c *fakeClock) fire(i int) {
	c.mu.Lock()
	w := c.waiters[i]
	c.mu.Unlock()
	w.ch <- c.Now()
}

func (c *fakeClock) waiterDuration(i int) time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.waiters[i].d
}
