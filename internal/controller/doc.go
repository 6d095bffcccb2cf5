// Package controller holds the state behind the word-hunt form.
//
// A Controller tracks the board draft, the last board that produced results,
// the sort preference and the status of the latest submission. Front ends
// (the terminal UI and the browser session) translate user events into
// controller calls and render from Sections and Snapshot.
//
// A submission is split in two so the network call can run elsewhere:
//
//	req := ctrl.Begin()                     // enters StatusLoading
//	words, err := solver.Solve(ctx, req.Board, req.SortByLength)
//	ctrl.Resolve(req.Seq, words, err)       // ignored unless req is the latest
//
// Only the newest request can change the state, so a slow answer to an older
// submission never overwrites a newer one.
package controller
