// Package metrics holds the in-memory counters reported by the bot.
package metrics

import "sync"

// Counter is a monotonically increasing counter. It never decreases and
// is safe for use from concurrent handler goroutines.
type Counter struct {
	mu    sync.Mutex
	value int64
}

func NewCounter() *Counter {
	return &Counter{}
}

func (c *Counter) Inc() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value++
}

func (c *Counter) Value() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}
