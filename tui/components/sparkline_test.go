package components

import (
	"testing"
	"time"

	"github.com/tonhe/poewatch/internal/engine"
)

func TestSparkline(t *testing.T) {
	data := []float64{0, 25, 50, 75, 100, 50, 25, 0}
	result := Sparkline(data, 8)
	if len([]rune(result)) != 8 {
		t.Errorf("expected 8 chars, got %d", len([]rune(result)))
	}
	runes := []rune(result)
	if runes[0] != blocks[0] || runes[4] != blocks[len(blocks)-1] {
		t.Errorf("expected min/max blocks at ends of range, got %q", result)
	}
}

func TestSparklineEmpty(t *testing.T) {
	result := Sparkline(nil, 8)
	if result != "        " {
		t.Errorf("expected 8 spaces for empty data, got %q", result)
	}
}

func TestSparklineSingleValue(t *testing.T) {
	result := Sparkline([]float64{50}, 4)
	if len([]rune(result)) != 4 {
		t.Errorf("expected 4 chars, got %d", len([]rune(result)))
	}
}

func TestSparklineTruncatesOldest(t *testing.T) {
	result := Sparkline([]float64{100, 1, 2, 3}, 3)
	if len([]rune(result)) != 3 {
		t.Errorf("expected 3 chars, got %d", len([]rune(result)))
	}
}

func TestLatencySeries(t *testing.T) {
	s := LatencySeries([]engine.CycleSample{
		{Duration: 250 * time.Millisecond},
		{Duration: 2 * time.Second},
	})
	if len(s) != 2 || s[0] != 250 || s[1] != 2000 {
		t.Errorf("unexpected series %v", s)
	}
}

func TestFormatLatency(t *testing.T) {
	tests := []struct {
		ms       float64
		expected string
	}{
		{0, "0ms"},
		{850, "850ms"},
		{1500, "1.5s"},
		{90_000, "1.5m"},
	}
	for _, tt := range tests {
		if got := FormatLatency(tt.ms); got != tt.expected {
			t.Errorf("FormatLatency(%f) = %q, want %q", tt.ms, got, tt.expected)
		}
	}
}
