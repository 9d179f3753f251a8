package engine

import (
	"testing"
	"time"
)

func TestRingBufferAdd(t *testing.T) {
	rb := NewRingBuffer[CycleSample](5)
	for i := 0; i < 3; i++ {
		rb.Add(CycleSample{At: time.Now(), Duration: time.Duration(i) * time.Millisecond})
	}
	if rb.Len() != 3 {
		t.Errorf("expected len 3, got %d", rb.Len())
	}
	if rb.Cap() != 5 {
		t.Errorf("expected cap 5, got %d", rb.Cap())
	}
}

func TestRingBufferWrap(t *testing.T) {
	rb := NewRingBuffer[CycleSample](3)
	for i := 0; i < 5; i++ {
		rb.Add(CycleSample{Failed: i})
	}
	if rb.Len() != 3 {
		t.Errorf("expected len 3, got %d", rb.Len())
	}
	items := rb.All()
	if items[0].Failed != 2 {
		t.Errorf("expected oldest item Failed=2, got %d", items[0].Failed)
	}
	if items[2].Failed != 4 {
		t.Errorf("expected newest item Failed=4, got %d", items[2].Failed)
	}
}

func TestRingBufferPartialOrder(t *testing.T) {
	rb := NewRingBuffer[int](4)
	rb.Add(1)
	rb.Add(2)
	items := rb.All()
	if len(items) != 2 || items[0] != 1 || items[1] != 2 {
		t.Errorf("expected [1 2], got %v", items)
	}
}

func TestRingBufferEmpty(t *testing.T) {
	rb := NewRingBuffer[CycleSample](10)
	if rb.Len() != 0 {
		t.Error("new ring buffer should be empty")
	}
	if len(rb.All()) != 0 {
		t.Error("All() on empty buffer should return empty slice")
	}
	if _, ok := rb.Last(); ok {
		t.Error("Last() on empty buffer should report false")
	}
}

func TestRingBufferDefaultCapacity(t *testing.T) {
	rb := NewRingBuffer[int](0)
	if rb.Cap() != DefaultHistory {
		t.Errorf("expected default capacity %d, got %d", DefaultHistory, rb.Cap())
	}
}

func TestRingBufferLast(t *testing.T) {
	rb := NewRingBuffer[CycleSample](5)
	rb.Add(CycleSample{Failed: 1})
	rb.Add(CycleSample{Failed: 2})
	rb.Add(CycleSample{Failed: 3})
	last, ok := rb.Last()
	if !ok {
		t.Fatal("Last() should return true for non-empty buffer")
	}
	if last.Failed != 3 {
		t.Errorf("expected Failed=3, got %d", last.Failed)
	}
}

func TestRingBufferReset(t *testing.T) {
	rb := NewRingBuffer[int](3)
	rb.Add(1)
	rb.Add(2)
	rb.Reset()
	if rb.Len() != 0 {
		t.Errorf("expected empty buffer after Reset, got len %d", rb.Len())
	}
	rb.Add(9)
	if last, _ := rb.Last(); last != 9 {
		t.Errorf("expected 9 after Reset+Add, got %d", last)
	}
}

func TestDurations(t *testing.T) {
	d := Durations([]CycleSample{{Duration: time.Second}, {Duration: 2 * time.Second}})
	if len(d) != 2 || d[1] != 2*time.Second {
		t.Errorf("unexpected durations %v", d)
	}
}
