// Package logging provides structured logging for wordhunt.
//
// It wraps a package-level zap logger with convenience functions for the few
// events the application cares about: outbound solve requests and their
// outcome, served HTTP requests, and WebSocket page sessions.
//
// # Silent By Default
//
// Nothing is logged unless a level is passed to Initialize or the
// WORDHUNT_LOG_LEVEL environment variable is set. The terminal UI owns the
// screen, so when it runs with logging enabled the output goes to a file:
//
//	if err := logging.InitializeWithOutput("debug", "/tmp/wordhunt.log"); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// # Structured Fields
//
//	logging.LogSolveRequest("ABCDEFGHIJKLMNOP", true, url)
//	logging.LogSolveResult("ABCDEFGHIJKLMNOP", 42, time.Since(start), nil)
//	logging.LogConnection(remoteAddr, "websocket_opened")
//
// All functions are safe for concurrent use.
package logging
