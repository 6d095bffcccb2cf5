// Package web serves the browser front end of the solver.
//
// Routes:
//   - GET /         the page; with ?board=...&sort=on it submits synchronously
//   - GET /ws       the page session (websocket)
//   - GET /healthz  liveness probe, always "ok"
//   - GET /static/  embedded CSS and JavaScript
//
// Each websocket connection owns a controller.Controller and a single loop
// goroutine that applies page events ("input", "toggle_sort", "submit") and
// pushes the resulting state back, both as JSON and as rendered HTML. Solves
// run in their own goroutines and hand their outcome back to the loop, which
// drops any outcome that a later submission has superseded.
package web
