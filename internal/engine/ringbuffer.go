package engine

import (
	"sync"
	"time"
)

// DefaultHistory is the number of cycle samples kept when no capacity is set.
const DefaultHistory = 120

// RingBuffer is a fixed-capacity circular buffer safe for concurrent use.
// Once full, each Add overwrites the oldest entry.
type RingBuffer[T any] struct {
	mu    sync.RWMutex
	items []T
	next  int
	size  int
}

// NewRingBuffer creates a RingBuffer. A non-positive capacity falls back to
// DefaultHistory.
func NewRingBuffer[T any](capacity int) *RingBuffer[T] {
	if capacity <= 0 {
		capacity = DefaultHistory
	}
	return &RingBuffer[T]{items: make([]T, capacity)}
}

func (r *RingBuffer[T]) Add(item T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[r.next] = item
	r.next = (r.next + 1) % len(r.items)
	if r.size < len(r.items) {
		r.size++
	}
}

func (r *RingBuffer[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.size
}

func (r *RingBuffer[T]) Cap() int {
	return len(r.items)
}

// All returns a fresh slice of the items, oldest first.
func (r *RingBuffer[T]) All() []T {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]T, r.size)
	start := (r.next - r.size + len(r.items)) % len(r.items)
	for i := range out {
		out[i] = r.items[(start+i)%len(r.items)]
	}
	return out
}

// Last returns the newest item.
func (r *RingBuffer[T]) Last() (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var zero T
	if r.size == 0 {
		return zero, false
	}
	return r.items[(r.next-1+len(r.items))%len(r.items)], true
}

// Reset drops every item and keeps the capacity.
func (r *RingBuffer[T]) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	var zero T
	for i := range r.items {
		r.items[i] = zero
	}
	r.next = 0
	r.size = 0
}

// Durations extracts the cycle durations from samples, oldest first.
func Durations(samples []CycleSample) []time.Duration {
	out := make([]time.Duration, len(samples))
	for i, s := range samples {
		out[i] = s.Duration
	}
	return out
}
