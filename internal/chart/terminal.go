package chart

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
)

const terminalLabelWidth = 24

var (
	termTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("8"))
	termLabelStyle  = lipgloss.NewStyle().Width(terminalLabelWidth).Align(lipgloss.Right)
	termValueStyle  = lipgloss.NewStyle().Faint(true)
	termSourceStyle = lipgloss.NewStyle().Italic(true).Faint(true)
)

// Terminal draws a descriptor as a horizontal bar chart for a terminal of the
// given width, largest bar first, followed by the exact percentages.
func Terminal(d Descriptor, width int) (string, error) {
	if len(d.Bars) == 0 {
		return "", fmt.Errorf("drawing chart %q: %w", d.ID, ErrEmptyDataset)
	}
	if width < terminalLabelWidth+20 {
		width = terminalLabelWidth + 20
	}

	bars := d.DrawOrder()
	data := make([]barchart.BarData, len(bars))
	for i, b := range bars {
		data[i] = barchart.BarData{
			Label: truncate(b.Label, terminalLabelWidth),
			Values: []barchart.BarValue{{
				Name:  b.Label,
				Value: b.Value,
				Style: lipgloss.NewStyle().Foreground(lipgloss.Color(b.Color)),
			}},
		}
	}

	// One row per bar plus a blank row between bars.
	height := 2*len(bars) - 1
	bc := barchart.New(width, height,
		barchart.WithDataSet(data),
		barchart.WithHorizontalBars(),
		barchart.WithBarGap(1),
	)
	bc.Draw()

	var sb strings.Builder
	if d.Title != "" {
		sb.WriteString(termTitleStyle.Render(d.Title))
		sb.WriteString("\n\n")
	}
	sb.WriteString(bc.View())
	sb.WriteString("\n\n")
	for _, b := range bars {
		sb.WriteString(termLabelStyle.Render(truncate(b.Label, terminalLabelWidth)))
		sb.WriteString("  ")
		sb.WriteString(termValueStyle.Render(num(b.Value) + "%"))
		sb.WriteString("\n")
	}
	if d.Source != "" {
		sb.WriteString("\n")
		sb.WriteString(termSourceStyle.Render(d.Source))
		sb.WriteString("\n")
	}
	return sb.String(), nil
}
