package hdrhistogram

import "go.uber.org/atomic"

// atomicCounts64 is the lock-free counts store backing the "Atomic-counts"
// concurrency variant of §5: increment/add are relaxed atomic
// read-modify-write operations, get is an atomic load, and clear is a
// per-slot atomic store. Recording is safe across any number of
// concurrent writers; queries and iteration may observe a tearing
// between the sum of bins and the total counter, which HasOverflowed is
// designed to detect.
type atomicCounts64 struct {
	bins []atomic.Uint64
	sum  atomic.Uint64
}

func newAtomicCounts64(n int) *atomicCounts64 {
	return &atomicCounts64{bins: make([]atomic.Uint64, n)}
}

func (c *atomicCounts64) get(i int) uint64 { return c.bins[i].Load() }

func (c *atomicCounts64) increment(i int) error { return c.add(i, 1) }

func (c *atomicCounts64) add(i int, delta uint64) error {
	c.bins[i].Add(delta)
	return nil
}

func (c *atomicCounts64) set(i int, v uint64) { c.bins[i].Store(v) }

func (c *atomicCounts64) clear() {
	for i := range c.bins {
		c.bins[i].Store(0)
	}
	c.sum.Store(0)
}

func (c *atomicCounts64) len() int { return len(c.bins) }

func (c *atomicCounts64) total() uint64         { return c.sum.Load() }
func (c *atomicCounts64) addTotal(delta uint64) { c.sum.Add(delta) }
func (c *atomicCounts64) setTotal(v uint64)     { c.sum.Store(v) }
