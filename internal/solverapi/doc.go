// Package solverapi provides an HTTP client for the remote word-hunt solving API.
//
// The API finds every dictionary word that can be traced on a 4x4 letter grid.
// This package only calls it; the search itself happens on the server.
//
// # Wire Contract
//
//	GET {endpoint}?board=ABCDEFGHIJKLMNOP&sort=true
//	200 OK
//	{"data": ["CAB", "BAD", "FACE"]}
//
// sort=true orders words by length; sort=false orders them by the position of
// their starting cell, scanning from the top left. A board the API does not
// accept is answered with the single element "Invalid board string" in place
// of the word list.
//
// # Usage Example
//
//	client := solverapi.NewClient("")
//	words, err := client.Solve(ctx, "ABCDEFGHIJKLMNOP", true)
//	switch {
//	case solverapi.IsRejected(err):
//	    fmt.Println("invalid board")
//	case err != nil:
//	    fmt.Println(solverapi.ShortMessage(err))
//	default:
//	    fmt.Println(words)
//	}
//
// # Error Handling
//
// Every failure is a *SolverError carrying an ErrorType. The predicates
// (IsRejected, IsNetworkError, IsHTTPError, IsParseError, IsRetryable) use
// errors.As, so wrapped errors are recognised too.
//
// By default a Solve call issues exactly one request and is bounded by
// DefaultTimeout. Retries are opt-in through MaxRetries and never apply to a
// rejected board.
package solverapi
