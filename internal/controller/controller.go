package controller

import (
	"context"

	"github.com/muurk/wordhunt/internal/board"
	"github.com/muurk/wordhunt/internal/solverapi"
)

// Solver finds the words on a board. *solverapi.Client satisfies it.
type Solver interface {
	Solve(ctx context.Context, board string, sortByLength bool) ([]string, error)
}

// Status is the state of the most recent submission
type Status int

const (
	// StatusIdle means nothing has been submitted yet
	StatusIdle Status = iota
	// StatusLoading means a request is in flight
	StatusLoading
	// StatusSuccess means the latest request returned a word list
	StatusSuccess
	// StatusRejected means the solver reported the board as invalid
	StatusRejected
	// StatusFailed means the request failed before an answer arrived
	StatusFailed
)

// String returns the status name
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusRejected:
		return "rejected"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// InputMode selects how the board draft is edited
type InputMode int

const (
	// ModeText edits the draft as a single 16-character string
	ModeText InputMode = iota
	// ModeGrid edits the draft one cell at a time on a 4x4 grid
	ModeGrid
)

// String returns the mode name
func (m InputMode) String() string {
	if m == ModeGrid {
		return "grid"
	}
	return "text"
}

// ParseInputMode maps "grid" to ModeGrid and anything else to ModeText
func ParseInputMode(s string) InputMode {
	if s == "grid" {
		return ModeGrid
	}
	return ModeText
}

// Request is one submission handed to a solver
type Request struct {
	Seq          uint64
	Board        string
	SortByLength bool
}

// Sections lists which parts of the page are shown for the current state
type Sections struct {
	ErrorBanner   bool `json:"error_banner"`
	FailureBanner bool `json:"failure_banner"`
	Results       bool `json:"results"`
	Spinner       bool `json:"spinner"`
	BoardPreview  bool `json:"board_preview"`
}

// Controller holds the state of one page session.
// It is not safe for concurrent use; every front end drives it from a single
// goroutine (the Bubble Tea update loop or a WebSocket session loop).
type Controller struct {
	input        string
	prevBoard    string
	sortByLength bool
	mode         InputMode

	status  Status
	results []string
	err     error

	seq      uint64
	inflight Request
}

// New creates an idle controller with the given initial sort preference
func New(sortByLength bool) *Controller {
	return &Controller{
		sortByLength: sortByLength,
		mode:         ModeText,
		status:       StatusIdle,
		results:      []string{},
	}
}

// UpdateInput replaces the board draft. Only the 16-character cap is applied.
func (c *Controller) UpdateInput(text string) {
	c.input = board.Cap(text)
}

// SetCell sets one cell of the draft (grid input)
func (c *Controller) SetCell(i int, r rune) {
	c.input = string(board.Board(c.input).WithCell(i, r))
}

// ClearCell clears one cell of the draft (grid input)
func (c *Controller) ClearCell(i int) {
	c.input = string(board.Board(c.input).WithoutCell(i))
}

// ToggleSort flips the sort preference. It applies to the next submission only.
func (c *Controller) ToggleSort() {
	c.sortByLength = !c.sortByLength
}

// SetSort sets the sort preference for the next submission
func (c *Controller) SetSort(sortByLength bool) {
	c.sortByLength = sortByLength
}

// SetInputMode switches between text and grid input
func (c *Controller) SetInputMode(mode InputMode) {
	c.mode = mode
}

// ToggleInputMode switches to the other input mode
func (c *Controller) ToggleInputMode() {
	if c.mode == ModeText {
		c.mode = ModeGrid
	} else {
		c.mode = ModeText
	}
}

// Begin starts a submission of the current draft. Previous results are
// cleared and the returned request carries a new sequence number.
func (c *Controller) Begin() Request {
	c.seq++
	c.status = StatusLoading
	c.results = []string{}
	c.err = nil
	c.inflight = Request{
		Seq:          c.seq,
		Board:        c.input,
		SortByLength: c.sortByLength,
	}
	return c.inflight
}

// Resolve applies the outcome of request seq. Outcomes of any request other
// than the latest are discarded and Resolve returns false.
func (c *Controller) Resolve(seq uint64, words []string, err error) bool {
	if seq != c.seq || c.status != StatusLoading {
		return false
	}

	switch {
	case err == nil:
		c.status = StatusSuccess
		c.prevBoard = c.inflight.Board
		c.input = ""
		c.err = nil
		if words == nil {
			words = []string{}
		}
		c.results = words

	case solverapi.IsRejected(err):
		c.status = StatusRejected
		c.err = err
		c.results = []string{}

	default:
		c.status = StatusFailed
		c.err = err
		c.results = []string{}
	}

	return true
}

// Submit runs a whole submission synchronously against solver
func (c *Controller) Submit(ctx context.Context, solver Solver) Request {
	req := c.Begin()
	words, err := solver.Solve(ctx, req.Board, req.SortByLength)
	c.Resolve(req.Seq, words, err)
	return req
}

// Input returns the current draft
func (c *Controller) Input() string { return c.input }

// PrevBoard returns the last successfully submitted board
func (c *Controller) PrevBoard() string { return c.prevBoard }

// SortByLength returns the sort preference for the next submission
func (c *Controller) SortByLength() bool { return c.sortByLength }

// Mode returns the input mode
func (c *Controller) Mode() InputMode { return c.mode }

// Status returns the submission status
func (c *Controller) Status() Status { return c.status }

// Results returns the words of the latest successful submission
func (c *Controller) Results() []string { return c.results }

// Err returns the rejection or failure of the latest submission
func (c *Controller) Err() error { return c.err }

// Seq returns the sequence number of the latest request
func (c *Controller) Seq() uint64 { return c.seq }

// Loading reports whether a request is in flight
func (c *Controller) Loading() bool { return c.status == StatusLoading }

// Submitted reports whether the latest request returned a word list
func (c *Controller) Submitted() bool { return c.status == StatusSuccess }

// Error reports whether the solver rejected the latest board
func (c *Controller) Error() bool { return c.status == StatusRejected }

// Failed reports whether the latest request failed in transport
func (c *Controller) Failed() bool { return c.status == StatusFailed }

// Sections selects which parts of the page to show
func (c *Controller) Sections() Sections {
	return Sections{
		ErrorBanner:   c.Error(),
		FailureBanner: c.Failed(),
		Results:       true,
		Spinner:       c.Loading(),
		BoardPreview:  c.input != "" && c.mode == ModeText,
	}
}
