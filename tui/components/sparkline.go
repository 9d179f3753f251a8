package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/tonhe/poewatch/internal/engine"
)

var blocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline renders the newest width values as block characters, right
// aligned.
func Sparkline(data []float64, width int) string {
	if len(data) == 0 {
		return strings.Repeat(" ", width)
	}
	if len(data) > width {
		data = data[len(data)-width:]
	}
	lo, hi := data[0], data[0]
	for _, v := range data {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", width-len(data)))
	spread := hi - lo
	for _, v := range data {
		if spread == 0 {
			sb.WriteRune(blocks[3])
			continue
		}
		idx := int((v - lo) / spread * float64(len(blocks)-1))
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		sb.WriteRune(blocks[idx])
	}
	return sb.String()
}

// LatencySeries converts cycle samples into millisecond values for plotting.
func LatencySeries(samples []engine.CycleSample) []float64 {
	out := make([]float64, len(samples))
	for i, d := range engine.Durations(samples) {
		out[i] = float64(d) / float64(time.Millisecond)
	}
	return out
}

// FormatLatency renders a millisecond value compactly: "850ms", "1.2s".
func FormatLatency(ms float64) string {
	switch {
	case ms <= 0:
		return "0ms"
	case ms >= 60_000:
		return fmt.Sprintf("%.1fm", ms/60_000)
	case ms >= 1_000:
		return fmt.Sprintf("%.1fs", ms/1_000)
	default:
		return fmt.Sprintf("%.0fms", ms)
	}
}
