package components

import (
	"fmt"
	"math"
	"strings"
)

// chartBlocks go from empty (index 0) to a full block (index 8).
var chartBlocks = []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

const chartLabelWidth = 8

// RenderChart renders a block-character bar chart of data, oldest on the
// left. width and height include the Y-axis labels and the title row.
// label formats the Y-axis values; nil falls back to FormatLatency.
func RenderChart(data []float64, width, height int, title string, label func(float64) string) string {
	if width < 10 {
		width = 10
	}
	if height < 4 {
		height = 4
	}
	if label == nil {
		label = FormatLatency
	}

	chartWidth := width - chartLabelWidth
	chartHeight := height - 1

	lines := []string{centerText(title, width)}

	if len(data) == 0 {
		blank := strings.Repeat(" ", width)
		for i := 0; i < chartHeight; i++ {
			lines = append(lines, blank)
		}
		return strings.Join(lines, "\n")
	}

	if len(data) > chartWidth {
		data = data[len(data)-chartWidth:]
	}

	minVal, maxVal := 0.0, data[0]
	for _, v := range data {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal == minVal {
		maxVal = minVal + 1
	}
	spread := maxVal - minVal
	padding := strings.Repeat(" ", chartWidth-len(data))

	for row := chartHeight - 1; row >= 0; row-- {
		cellBottom := minVal + spread*float64(row)/float64(chartHeight)
		cellTop := minVal + spread*float64(row+1)/float64(chartHeight)

		axis := fmt.Sprintf("%7s ", label(cellTop))
		if len(axis) > chartLabelWidth {
			axis = axis[len(axis)-chartLabelWidth:]
		}

		var sb strings.Builder
		sb.WriteString(axis)
		sb.WriteString(padding)
		for _, v := range data {
			switch {
			case v <= cellBottom:
				sb.WriteRune(' ')
			case v >= cellTop:
				sb.WriteRune(chartBlocks[8])
			default:
				idx := int(math.Round((v - cellBottom) / (cellTop - cellBottom) * 8))
				sb.WriteRune(chartBlocks[max(0, min(idx, 8))])
			}
		}
		lines = append(lines, sb.String())
	}

	return strings.Join(lines, "\n")
}

// centerText centers s within the given width, padding with spaces.
func centerText(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	pad := (width - len(s)) / 2
	return strings.Repeat(" ", pad) + s + strings.Repeat(" ", width-len(s)-pad)
}
