package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/wordhunt/internal/board"
	"github.com/muurk/wordhunt/internal/ui"
)

// RenderResults draws the results component: nothing until a board has been
// solved, then the solved board beside the list of words found on it.
func RenderResults(words []string, submitted bool, prevBoard string, width int) string {
	if !submitted {
		return ""
	}

	preview := board.Render(board.Board(prevBoard), board.RenderOptions{Cursor: -1})

	header := ResultsHeaderStyle.Render(fmt.Sprintf("%d words found on %s", len(words), prevBoard))
	if len(words) == 1 {
		header = ResultsHeaderStyle.Render(fmt.Sprintf("1 word found on %s", prevBoard))
	}

	listWidth := width - lipgloss.Width(preview) - 2
	list := WordStyle.Render(ui.FormatColumns(words, listWidth))
	if len(words) == 0 {
		list = SubtitleStyle.Render("No words found.")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, preview, "  ", list),
	)
}
