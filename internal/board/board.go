package board

import (
	"strings"
	"unicode/utf8"
)

const (
	// Size is the number of rows (and columns) in a board
	Size = 4

	// Cells is the number of letters in a complete board string
	Cells = Size * Size
)

// Board is a row-major flattening of a 4x4 letter grid.
// The solving service is the only authority on whether a board is well formed,
// so a Board may hold fewer than 16 letters or non-letter runes.
type Board string

// Cap truncates text to at most Cells runes. This is the only constraint
// applied to user input before it is sent.
func Cap(text string) string {
	if utf8.RuneCountInString(text) <= Cells {
		return text
	}
	runes := []rune(text)
	return string(runes[:Cells])
}

// Len returns the number of runes in the board string
func (b Board) Len() int {
	return utf8.RuneCountInString(string(b))
}

// Complete reports whether every cell has a rune
func (b Board) Complete() bool {
	return b.Len() == Cells
}

// Grid returns the board as rows of cells. Missing cells are zero runes.
func (b Board) Grid() [Size][Size]rune {
	var grid [Size][Size]rune
	i := 0
	for _, r := range string(b) {
		if i >= Cells {
			break
		}
		grid[i/Size][i%Size] = r
		i++
	}
	return grid
}

// At returns the rune at row/col, or 0 if that cell is empty or out of range
func (b Board) At(row, col int) rune {
	if row < 0 || row >= Size || col < 0 || col >= Size {
		return 0
	}
	return b.Grid()[row][col]
}

// Rows returns each row as a string, with empty cells rendered as '.'
func (b Board) Rows() []string {
	grid := b.Grid()
	rows := make([]string, Size)
	for r := 0; r < Size; r++ {
		var sb strings.Builder
		for c := 0; c < Size; c++ {
			if isEmpty(grid[r][c]) {
				sb.WriteRune('.')
			} else {
				sb.WriteRune(grid[r][c])
			}
		}
		rows[r] = sb.String()
	}
	return rows
}

// WithCell returns a copy of the board with cell i set to r.
// Cells before i that are empty are filled with spaces so that positions are kept.
func (b Board) WithCell(i int, r rune) Board {
	if i < 0 || i >= Cells {
		return b
	}
	runes := []rune(string(b))
	for len(runes) <= i {
		runes = append(runes, ' ')
	}
	runes[i] = r
	return Board(strings.TrimRight(string(runes), " "))
}

// WithoutCell returns a copy of the board with cell i cleared
func (b Board) WithoutCell(i int) Board {
	return b.WithCell(i, ' ')
}

// String implements fmt.Stringer
func (b Board) String() string {
	return string(b)
}

func isEmpty(r rune) bool {
	return r == 0 || r == ' '
}
