package solverapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/muurk/wordhunt/internal/logging"
)

const (
	// DefaultEndpoint is the public word-hunt solving API
	DefaultEndpoint = "https://api.whsolver.ajayganesh.com/solve"

	// InvalidBoardSentinel is returned by the API as data[0] when it rejects a board
	InvalidBoardSentinel = "Invalid board string"

	// DefaultTimeout bounds every solve request
	DefaultTimeout = 30 * time.Second

	// DefaultMaxRetries is zero: a submission issues exactly one request
	DefaultMaxRetries = 0

	// DefaultRetryDelay is the initial delay between retry attempts (when retries are enabled)
	DefaultRetryDelay = 1 * time.Second

	// DefaultMaxRetryDelay is the maximum delay for exponential backoff
	DefaultMaxRetryDelay = 10 * time.Second

	// maxBodySize caps how much of a response is read
	maxBodySize = 4 << 20
)

// Client is an HTTP client for the remote word-hunt solving API
type Client struct {
	// Endpoint is the solve URL without query parameters
	Endpoint string

	// HTTPClient is the underlying HTTP client
	HTTPClient *http.Client

	// MaxRetries is the number of extra attempts made for retryable failures
	MaxRetries int

	// RetryDelay is the initial delay between retry attempts
	RetryDelay time.Duration

	// MaxRetryDelay caps the exponential backoff delay
	MaxRetryDelay time.Duration
}

// response is the JSON body returned by the API
type response struct {
	Data *[]string `json:"data"`
}

// NewClient creates a client for the given endpoint.
// An empty endpoint selects DefaultEndpoint.
func NewClient(endpoint string) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	return &Client{
		Endpoint:      endpoint,
		HTTPClient:    &http.Client{Timeout: DefaultTimeout},
		MaxRetries:    DefaultMaxRetries,
		RetryDelay:    DefaultRetryDelay,
		MaxRetryDelay: DefaultMaxRetryDelay,
	}
}

// SetTimeout sets the HTTP request timeout
func (c *Client) SetTimeout(timeout time.Duration) {
	c.HTTPClient.Timeout = timeout
}

// SetRetry configures retry behavior
func (c *Client) SetRetry(maxRetries int, retryDelay time.Duration) {
	c.MaxRetries = maxRetries
	c.RetryDelay = retryDelay
}

// RequestURL builds the solve URL for a board and sort preference
func (c *Client) RequestURL(board string, sortByLength bool) (string, error) {
	u, err := url.Parse(c.Endpoint)
	if err != nil {
		return "", fmt.Errorf("invalid endpoint %q: %w", c.Endpoint, err)
	}

	q := u.Query()
	q.Set("board", board)
	q.Set("sort", strconv.FormatBool(sortByLength))
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// Solve asks the API for the words that can be formed on board.
// With sortByLength the API orders words by length, otherwise by the
// position of each word's starting cell (top-left first).
//
// A rejected board is reported as a *SolverError for which IsRejected is true.
func (c *Client) Solve(ctx context.Context, board string, sortByLength bool) ([]string, error) {
	reqURL, err := c.RequestURL(board, sortByLength)
	if err != nil {
		return nil, NewParseError("failed to build request URL", err)
	}

	logging.LogSolveRequest(board, sortByLength, reqURL)
	start := time.Now()

	var lastErr error
	currentDelay := c.RetryDelay

	for attempt := 0; attempt <= c.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(currentDelay):
			case <-ctx.Done():
				return nil, ClassifyNetworkError(ctx.Err())
			}

			currentDelay *= 2
			if currentDelay > c.MaxRetryDelay {
				currentDelay = c.MaxRetryDelay
			}
		}

		words, err := c.solveAttempt(ctx, reqURL)
		if err == nil {
			logging.LogSolveResult(board, len(words), time.Since(start), nil)
			return words, nil
		}

		lastErr = err
		if IsCanceled(err) {
			logging.Debug("Solve canceled", zap.String("board", board))
			return nil, err
		}
		logging.Debug("Solve attempt failed",
			zap.Int("attempt", attempt+1),
			zap.Error(err),
		)

		if !IsRetryable(err) {
			break
		}
	}

	logging.LogSolveResult(board, 0, time.Since(start), lastErr)
	return nil, lastErr
}

// solveAttempt performs a single GET and interprets the body
func (c *Client) solveAttempt(ctx context.Context, reqURL string) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, NewNetworkError("failed to create GET request", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, NewNetworkError("GET request failed", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, NewNetworkError("failed to read response body", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, NewHTTPError(resp.StatusCode, fmt.Sprintf("unexpected status code: %d", resp.StatusCode))
	}

	return ParseResponse(body)
}

// ParseResponse decodes an API body into a word list.
// The sentinel in the first element turns the response into a rejection.
func ParseResponse(body []byte) ([]string, error) {
	var r response
	if err := json.Unmarshal(body, &r); err != nil {
		return nil, NewParseError("failed to parse JSON response", err)
	}

	if r.Data == nil {
		return nil, NewParseError("response has no data field", nil)
	}

	words := *r.Data
	if len(words) > 0 && words[0] == InvalidBoardSentinel {
		return nil, NewRejectedError()
	}

	if words == nil {
		words = []string{}
	}
	return words, nil
}
