package hdrhistogram

import (
	"io"
	"sync"
)

// Synchronized wraps a Histogram with a mutex, making every operation
// safe to call concurrently from multiple goroutines at the cost of
// serializing them. Composition across two Synchronized values (Add,
// Subtract) acquires locks in ascending order of the wrapped histograms'
// identity, so two goroutines racing to merge h1 into h2 and h2 into h1
// can never deadlock.
type Synchronized struct {
	mu sync.Mutex
	h  *Histogram
}

// NewSynchronized wraps h for concurrent use. h should not be accessed
// directly afterward.
func NewSynchronized(h *Histogram) *Synchronized {
	return &Synchronized{h: h}
}

func (s *Synchronized) Identity() int64 {
	return s.h.Identity()
}

// lockPair locks a and b in ascending identity order and returns an
// unlock function for both.
func lockPair(a, b *Synchronized) func() {
	if a.h.identity == b.h.identity {
		a.mu.Lock()
		return a.mu.Unlock
	}
	first, second := a, b
	if second.h.identity < first.h.identity {
		first, second = second, first
	}
	first.mu.Lock()
	second.mu.Lock()
	return func() {
		second.mu.Unlock()
		first.mu.Unlock()
	}
}

func (s *Synchronized) Record(v int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.h.Record(v)
}

func (s *Synchronized) RecordValues(v, n int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.h.RecordValues(v, n)
}

func (s *Synchronized) RecordCorrectedValue(v, expectedInterval int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.h.RecordCorrectedValue(v, expectedInterval)
}

func (s *Synchronized) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.h.Reset()
}

func (s *Synchronized) Add(other *Synchronized) error {
	unlock := lockPair(s, other)
	defer unlock()
	return s.h.Add(other.h)
}

func (s *Synchronized) Subtract(other *Synchronized) error {
	unlock := lockPair(s, other)
	defer unlock()
	return s.h.Subtract(other.h)
}

// Copy returns an independent, unsynchronized snapshot of the wrapped
// histogram's current contents.
func (s *Synchronized) Copy() (*Histogram, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.h.Copy()
}

func (s *Synchronized) Encode(w io.Writer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.h.Encode(w)
}

func (s *Synchronized) EncodeCompressed(w io.Writer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.h.EncodeCompressed(w)
}

// ValueAtPercentile takes the lock for a point-in-time read, consistent
// with this type's read-locks-too policy: queries observe a histogram
// that isn't being mutated mid-computation by another goroutine.
func (s *Synchronized) ValueAtPercentile(p float64) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return float64(s.h.ValueAtPercentile(p))
}

func (s *Synchronized) TotalCount() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.h.TotalCount()
}
