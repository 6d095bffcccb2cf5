package ui

import (
	"strings"
	"unicode/utf8"
)

// FormatColumns lays words out column-major in as many columns as fit in
// width. Each column is as wide as the longest word plus two spaces. A
// non-positive width yields a single column.
func FormatColumns(words []string, width int) string {
	if len(words) == 0 {
		return ""
	}

	longest := 0
	for _, w := range words {
		if n := utf8.RuneCountInString(w); n > longest {
			longest = n
		}
	}
	colWidth := longest + 2

	cols := 1
	if width > 0 {
		cols = width / colWidth
	}
	if cols < 1 {
		cols = 1
	}
	if cols > len(words) {
		cols = len(words)
	}
	rows := (len(words) + cols - 1) / cols

	var b strings.Builder
	for r := 0; r < rows; r++ {
		var line strings.Builder
		for c := 0; c < cols; c++ {
			i := c*rows + r
			if i >= len(words) {
				break
			}
			line.WriteString(words[i])
			line.WriteString(strings.Repeat(" ", colWidth-utf8.RuneCountInString(words[i])))
		}
		b.WriteString(strings.TrimRight(line.String(), " "))
		if r < rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
