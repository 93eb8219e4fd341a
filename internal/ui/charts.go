package ui

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/QinisoNst/water-q/internal/stats"
)

// LineChart plots values in row order as a connected line, x = sample index.
func LineChart(values []float64, width, height int, caption string) string {
	if len(values) == 0 {
		return Dim.Render("no values to plot")
	}
	if width < 20 {
		width = 20
	}
	if height < 4 {
		height = 4
	}
	return asciigraph.Plot(values,
		asciigraph.Width(width),
		asciigraph.Height(height),
		asciigraph.Caption(caption),
	)
}

// HistogramChart renders bins as horizontal bars scaled to barWidth cells,
// one line per bin with its range and count.
func HistogramChart(bins []stats.Bin, barWidth int) string {
	if len(bins) == 0 {
		return Dim.Render("no values to plot")
	}
	if barWidth < 10 {
		barWidth = 10
	}
	max := 0
	for _, b := range bins {
		if b.Count > max {
			max = b.Count
		}
	}
	if max == 0 {
		max = 1
	}

	var sb strings.Builder
	for i, b := range bins {
		filled := b.Count * barWidth / max
		if b.Count > 0 && filled == 0 {
			filled = 1
		}
		bar := BarFilled.Render(strings.Repeat("█", filled)) +
			BarEmpty.Render(strings.Repeat("░", barWidth-filled))
		sb.WriteString(fmt.Sprintf("%s %s %s",
			Dim.Render(fmt.Sprintf("%10.2f ─ %-10.2f", b.Lo, b.Hi)),
			bar,
			fmt.Sprintf("%d", b.Count)))
		if i < len(bins)-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// SplitBar renders a two-segment percentage bar for the potability split.
func SplitBar(notPotable, potable, width int) string {
	total := notPotable + potable
	if total == 0 {
		return Dim.Render("no samples")
	}
	if width < 10 {
		width = 10
	}
	left := notPotable * width / total
	right := width - left
	return BarFilled.Render(strings.Repeat("█", left)) +
		BarAlt.Render(strings.Repeat("█", right))
}

// Percent formats part/total as "12.3%".
func Percent(part, total int) string {
	if total == 0 {
		return "0.0%"
	}
	return fmt.Sprintf("%.1f%%", 100*float64(part)/float64(total))
}
