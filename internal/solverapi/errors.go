package solverapi

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"strings"
	"syscall"
)

// ErrorType represents the category of a solve failure
type ErrorType int

const (
	// ErrTypeNetwork indicates a network-level error
	ErrTypeNetwork ErrorType = iota
	// ErrTypeTimeout indicates the request did not complete in time
	ErrTypeTimeout
	// ErrTypeConnectionRefused indicates the API host refused the connection
	ErrTypeConnectionRefused
	// ErrTypeDNS indicates the API host name could not be resolved
	ErrTypeDNS
	// ErrTypeCanceled indicates the caller canceled the request
	ErrTypeCanceled
	// ErrTypeHTTP indicates a non-2xx status code
	ErrTypeHTTP
	// ErrTypeParse indicates a body that is not the expected JSON shape
	ErrTypeParse
	// ErrTypeRejected indicates the API reported the board as invalid
	ErrTypeRejected
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeNetwork:
		return "Network Error"
	case ErrTypeTimeout:
		return "Timeout"
	case ErrTypeConnectionRefused:
		return "Connection Refused"
	case ErrTypeDNS:
		return "DNS Error"
	case ErrTypeCanceled:
		return "Canceled"
	case ErrTypeHTTP:
		return "HTTP Error"
	case ErrTypeParse:
		return "Parse Error"
	case ErrTypeRejected:
		return "Invalid Board"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// SolverError describes a failed call to the solving API
type SolverError struct {
	Type       ErrorType // Category of error
	Message    string    // Human-readable error message
	StatusCode int       // HTTP status code (if applicable)
	Err        error     // Underlying error (if any)
	Retryable  bool      // Whether another attempt may succeed
}

// Error implements the error interface
func (e *SolverError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *SolverError) Unwrap() error {
	return e.Err
}

// ClassifyNetworkError maps a transport error to a specific error type
func ClassifyNetworkError(err error) *SolverError {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.Canceled) {
		return &SolverError{Type: ErrTypeCanceled, Message: "Request canceled", Err: err}
	}

	if errors.Is(err, context.DeadlineExceeded) || os.IsTimeout(err) {
		return &SolverError{Type: ErrTypeTimeout, Message: "Request timed out", Err: err, Retryable: true}
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return &SolverError{
			Type:    ErrTypeDNS,
			Message: fmt.Sprintf("DNS resolution failed for %s", dnsErr.Name),
			Err:     err,
		}
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) && errors.Is(opErr.Err, syscall.ECONNREFUSED) {
		return &SolverError{Type: ErrTypeConnectionRefused, Message: "Solver refused connection", Err: err, Retryable: true}
	}

	return &SolverError{Type: ErrTypeNetwork, Message: "Network error occurred", Err: err, Retryable: true}
}

// NewNetworkError creates a network-level error with automatic classification
func NewNetworkError(message string, err error) *SolverError {
	classified := ClassifyNetworkError(err)
	if classified == nil {
		return &SolverError{Type: ErrTypeNetwork, Message: message, Retryable: true}
	}
	classified.Message = message
	return classified
}

// NewHTTPError creates an HTTP-level error. Server errors are retryable.
func NewHTTPError(statusCode int, message string) *SolverError {
	return &SolverError{
		Type:       ErrTypeHTTP,
		Message:    message,
		StatusCode: statusCode,
		Retryable:  statusCode >= 500,
	}
}

// NewParseError creates a parsing error
func NewParseError(message string, err error) *SolverError {
	return &SolverError{Type: ErrTypeParse, Message: message, Err: err}
}

// NewRejectedError creates the error reported when the API answers with the invalid-board sentinel
func NewRejectedError() *SolverError {
	return &SolverError{Type: ErrTypeRejected, Message: InvalidBoardSentinel}
}

func typeOf(err error) (ErrorType, bool) {
	var solverErr *SolverError
	if errors.As(err, &solverErr) {
		return solverErr.Type, true
	}
	return 0, false
}

// IsRejected checks if an error is the API's invalid-board answer
func IsRejected(err error) bool {
	t, ok := typeOf(err)
	return ok && t == ErrTypeRejected
}

// IsNetworkError checks if an error is a network error (including timeout, connection refused and DNS)
func IsNetworkError(err error) bool {
	t, ok := typeOf(err)
	if !ok {
		return false
	}
	return t == ErrTypeNetwork ||
		t == ErrTypeTimeout ||
		t == ErrTypeConnectionRefused ||
		t == ErrTypeDNS
}

// IsHTTPError checks if an error is an HTTP status error
func IsHTTPError(err error) bool {
	t, ok := typeOf(err)
	return ok && t == ErrTypeHTTP
}

// IsParseError checks if an error is a parse error
func IsParseError(err error) bool {
	t, ok := typeOf(err)
	return ok && t == ErrTypeParse
}

// IsCanceled checks if the caller canceled the request
func IsCanceled(err error) bool {
	t, ok := typeOf(err)
	return ok && t == ErrTypeCanceled
}

// IsRetryable checks if an error should be retried
func IsRetryable(err error) bool {
	var solverErr *SolverError
	if errors.As(err, &solverErr) {
		return solverErr.Retryable
	}
	return false
}

// ShortMessage returns a concise, user-friendly error message
func ShortMessage(err error) string {
	if err == nil {
		return ""
	}

	var solverErr *SolverError
	if !errors.As(err, &solverErr) {
		return err.Error()
	}

	switch solverErr.Type {
	case ErrTypeTimeout:
		return "Solver not responding (timeout)"
	case ErrTypeConnectionRefused:
		return "Solver refused connection"
	case ErrTypeDNS:
		return "Cannot resolve solver hostname"
	case ErrTypeNetwork:
		return "Network error - check connection"
	case ErrTypeCanceled:
		return "Request canceled"
	case ErrTypeHTTP:
		return fmt.Sprintf("Solver error (HTTP %d)", solverErr.StatusCode)
	case ErrTypeParse:
		return "Failed to parse solver response"
	case ErrTypeRejected:
		return "Invalid Board submitted. Please try again."
	default:
		return solverErr.Message
	}
}

// TroubleshootingHint returns user-facing advice for an error
func TroubleshootingHint(err error) string {
	var solverErr *SolverError
	if !errors.As(err, &solverErr) {
		return "An unexpected error occurred. Please try again."
	}

	switch {
	case IsRejected(err):
		return strings.Join([]string{
			"The solver did not accept the board.",
			"  • Enter exactly 16 letters, row by row from the top left",
			"  • Do not separate the letters with spaces or commas",
		}, "\n")

	case solverErr.Type == ErrTypeTimeout:
		return strings.Join([]string{
			"The solver did not respond in time.",
			"  • Check your internet connection",
			"  • Try again, or raise the timeout with --solver-timeout or WORDHUNT_TIMEOUT",
		}, "\n")

	case IsNetworkError(err):
		return strings.Join([]string{
			"Could not reach the solver.",
			"  • Check your internet connection",
			"  • Verify the endpoint with 'wordhunt config show'",
			"  • Override it with --endpoint or WORDHUNT_ENDPOINT",
		}, "\n")

	case IsHTTPError(err):
		if solverErr.StatusCode >= 500 {
			return fmt.Sprintf("The solver returned an error (HTTP %d). It may be temporarily down.", solverErr.StatusCode)
		}
		return fmt.Sprintf("The solver returned HTTP %d. Check the endpoint URL.", solverErr.StatusCode)

	case IsParseError(err):
		return "The solver answered with an unexpected format. Check the endpoint URL."

	case IsCanceled(err):
		return "The request was canceled before the solver answered."

	default:
		return "An error occurred. Please check the error message for details."
	}
}
