package counter

import "sync"

// Counter is a handle to a private integer cell. The cell can only be
// changed through Increment and Decrement, and there is no way to read it
// without also changing it.
type Counter struct {
	mu    sync.Mutex
	count int64
}

// New creates a counter whose cell starts at zero. Every call returns an
// independent cell.
func New() *Counter {
	return &Counter{}
}

// Increment adds one to the cell and returns the new value
func (c *Counter) Increment() int64 {
	return c.add(1)
}

// Decrement subtracts one from the cell and returns the new value.
// The value may go negative.
func (c *Counter) Decrement() int64 {
	return c.add(-1)
}

// add wraps on int64 overflow like any other Go integer arithmetic.
func (c *Counter) add(delta int64) int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.count += delta
	return c.count
}
