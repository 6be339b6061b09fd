package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan  = lipgloss.Color("36")  // Teal - used cells
	colorGray  = lipgloss.Color("245") // Gray - labels
	colorDim   = lipgloss.Color("240") // Dim gray - free cells
	colorWhite = lipgloss.Color("255") // Bright white - values
)

// =============================================================================
// Styles
// =============================================================================

var (
	styleKey   = lipgloss.NewStyle().Foreground(colorGray).Width(12)
	styleValue = lipgloss.NewStyle().Foreground(colorWhite)
	styleUsed  = lipgloss.NewStyle().Foreground(colorCyan)
	styleFree  = lipgloss.NewStyle().Foreground(colorDim)
	styleFrame = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorDim)
)

// printKeyValue prints a labeled value.
func printKeyValue(w io.Writer, key string, value any) {
	fmt.Fprintln(w, styleKey.Render(key)+" "+styleValue.Render(fmt.Sprint(value)))
}

// styleGrid colors a rendered grid, one run of equal cells at a time, and
// optionally frames it.
func styleGrid(rendered string, framed bool) string {
	lines := strings.Split(strings.TrimSuffix(rendered, "\n"), "\n")
	for i, line := range lines {
		var sb strings.Builder
		for start := 0; start < len(line); {
			end := start
			for end < len(line) && line[end] == line[start] {
				end++
			}
			run := line[start:end]
			if line[start] == '#' {
				sb.WriteString(styleUsed.Render(run))
			} else {
				sb.WriteString(styleFree.Render(run))
			}
			start = end
		}
		lines[i] = sb.String()
	}
	out := strings.Join(lines, "\n")
	if framed {
		out = styleFrame.Render(out)
	}
	return out + "\n"
}
