package metrics

import (
	"sync"
	"testing"
)

func TestCounter_StartsAtZero(t *testing.T) {
	c := NewCounter()
	if got := c.Value(); got != 0 {
		t.Errorf("new counter value = %d, want 0", got)
	}
}

func TestCounter_Inc(t *testing.T) {
	c := NewCounter()
	c.Inc()
	c.Inc()
	c.Inc()
	if got := c.Value(); got != 3 {
		t.Errorf("counter value = %d, want 3", got)
	}
}

func TestCounter_ConcurrentInc(t *testing.T) {
	c := NewCounter()

	var wg sync.WaitGroup
	const workers = 100
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Inc()
		}()
	}
	wg.Wait()

	if got := c.Value(); got != workers {
		t.Errorf("counter value = %d, want %d", got, workers)
	}
}
