// Package ui renders the one-shot output of wordhunt subcommands.
//
// The interactive solver lives in internal/tui. Commands such as
// "wordhunt solve" and "wordhunt scan" instead print a header, do their
// work, and print a single result box before exiting:
//
//	p := ui.NewPrinter(os.Stdout)
//	p.PrintHeader("Solve", "wordhunt solve", ui.Field{Key: "Board", Value: board})
//	p.PrintWords(board, words)
//
// FormatColumns is shared with the TUI so both surfaces lay out word lists
// the same way.
package ui
