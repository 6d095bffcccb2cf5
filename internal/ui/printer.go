package ui

import (
	"fmt"
	"io"
	"os"
)

// Printer writes rendered components to a writer. Commands use it instead of
// printing styled strings themselves.
type Printer struct {
	out   io.Writer
	width int
}

// NewPrinter creates a new Printer that writes to the given writer.
// If w is nil, os.Stdout is used.
func NewPrinter(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{
		out:   w,
		width: GetTerminalWidth(),
	}
}

// Width returns the width used for rendering
func (p *Printer) Width() int {
	return p.width
}

// SetWidth overrides the detected terminal width
func (p *Printer) SetWidth(width int) *Printer {
	p.width = width
	return p
}

// Print writes content to the output
func (p *Printer) Print(content string) {
	_, _ = fmt.Fprint(p.out, content)
}

// Println writes content with a newline
func (p *Printer) Println(content string) {
	_, _ = fmt.Fprintln(p.out, content)
}

// Newline prints an empty line
func (p *Printer) Newline() {
	_, _ = fmt.Fprintln(p.out)
}

// PrintHeader prints a command header box
func (p *Printer) PrintHeader(title, command string, params ...Field) {
	p.Println(NewHeader(title, command, params...).SetWidth(p.width).Render())
	p.Newline()
}

// PrintResult prints a result box at the printer's width
func (p *Printer) PrintResult(r *Result) {
	p.Println(r.SetWidth(p.width).Render())
	p.Newline()
}

// PrintWords prints a found-words box with the words in columns.
func (p *Printer) PrintWords(board string, words []string) {
	title := fmt.Sprintf("%d words found", len(words))
	if len(words) == 1 {
		title = "1 word found"
	}
	r := NewSuccessResult(title, Field{Key: "Board", Value: board})
	if len(words) == 0 {
		r.SetBody("No words found.")
	} else {
		r.SetBody(FormatColumns(words, boxWidth(p.width)-12))
	}
	p.PrintResult(r)
}
