package ui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// stars renders five stars with floor(rating) filled.
func stars(rating float64, ascii bool) string {
	filled := int(math.Floor(rating))
	filled = min(max(filled, 0), 5)
	on, off := "★", "☆"
	if ascii {
		on, off = "*", "."
	}
	return strings.Repeat(on, filled) + strings.Repeat(off, 5-filled)
}

// chips joins tags as bracketed chips, wrapping at width.
func chips(tags []string, style lipgloss.Style, width int) string {
	var lines []string
	var line string
	for _, t := range tags {
		chip := "[" + t + "]"
		if line != "" && lipgloss.Width(line)+1+lipgloss.Width(chip) > width {
			lines = append(lines, line)
			line = ""
		}
		if line != "" {
			line += " "
		}
		line += chip
	}
	if line != "" {
		lines = append(lines, line)
	}
	for i, l := range lines {
		lines[i] = style.Render(l)
	}
	return strings.Join(lines, "\n")
}

// bar draws a horizontal bar of value relative to total, width cells long.
func bar(value, total float64, width int) string {
	if width <= 0 {
		return ""
	}
	n := 0
	if total > 0 {
		n = int(math.Round(value / total * float64(width)))
	}
	n = min(max(n, 0), width)
	return strings.Repeat("█", n) + strings.Repeat("░", width-n)
}

// choiceRow renders options inline with the active one highlighted.
func choiceRow(options []string, active string, normal, selected lipgloss.Style) string {
	parts := make([]string, len(options))
	for i, o := range options {
		if o == active {
			parts[i] = selected.Render(" " + o + " ")
		} else {
			parts[i] = normal.Render(" " + o + " ")
		}
	}
	return strings.Join(parts, " ")
}

// truncate shortens s to width cells with an ellipsis.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	r := []rune(s)
	if width == 1 {
		return "…"
	}
	for len(r) > 0 && lipgloss.Width(string(r))+1 > width {
		r = r[:len(r)-1]
	}
	return string(r) + "…"
}
