package board

import (
	"unicode"

	"github.com/charmbracelet/lipgloss"
)

var (
	tileColor   = lipgloss.Color("#43BF6D")
	cursorColor = lipgloss.Color("#7D56F4")
	emptyColor  = lipgloss.Color("#626262")
	letterColor = lipgloss.Color("#FFFFFF")

	bigTile = lipgloss.NewStyle().
		Width(5).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(tileColor).
		Foreground(letterColor).
		Bold(true)

	smallTile = lipgloss.NewStyle().
			Width(3).
			Align(lipgloss.Center).
			Foreground(letterColor).
			Background(lipgloss.Color("236"))
)

// RenderOptions controls how a board preview is drawn
type RenderOptions struct {
	// Big draws bordered tiles; otherwise a compact block is drawn
	Big bool

	// Cursor highlights a cell index (0-15). Negative disables highlighting.
	Cursor int
}

// Render draws the board as a 4x4 grid for the terminal.
// Partial boards are drawn with the missing cells shown as empty tiles.
func Render(b Board, opts RenderOptions) string {
	grid := b.Grid()
	rows := make([]string, 0, Size)

	for r := 0; r < Size; r++ {
		tiles := make([]string, 0, Size)
		for c := 0; c < Size; c++ {
			tiles = append(tiles, renderTile(grid[r][c], r*Size+c == opts.Cursor, opts.Big))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, tiles...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderTile(r rune, selected bool, big bool) string {
	label := "·"
	style := smallTile
	if big {
		style = bigTile
	}

	if !isEmpty(r) {
		label = displayLetter(r)
	} else {
		style = style.Foreground(emptyColor)
	}

	if selected {
		if big {
			style = style.BorderForeground(cursorColor)
		} else {
			style = style.Background(cursorColor)
		}
	}

	return style.Render(label)
}

func displayLetter(r rune) string {
	return string(unicode.ToUpper(r))
}
