// Package tui implements the interactive terminal solver.
//
// The screen is a single Bubble Tea model wrapped around a
// controller.Controller. Key presses edit the draft board (as a line of text
// or cell by cell in grid mode), toggle sort-by-length, and submit. Each
// submission runs as a tea.Cmd so the spinner keeps ticking and the user can
// keep typing; its outcome comes back as a message tagged with the request's
// sequence number, and the controller drops outcomes that are no longer the
// latest.
//
// Usage:
//
//	ctrl := controller.New(true)
//	m := tui.NewModel(ctx, ctrl, solverapi.NewClient(endpoint))
//	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
package tui
