package controller

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/muurk/wordhunt/internal/solverapi"
)

// fakeSolver records calls and returns a canned answer
type fakeSolver struct {
	mu    sync.Mutex
	calls []Request
	words []string
	err   error

	// seenLoading records whether the controller was loading during Solve
	ctrl        *Controller
	seenLoading bool
}

func (f *fakeSolver) Solve(ctx context.Context, b string, sortByLength bool) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, Request{Board: b, SortByLength: sortByLength})
	if f.ctrl != nil {
		f.seenLoading = f.ctrl.Loading()
	}
	return f.words, f.err
}

func equalWords(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestNew(t *testing.T) {
	c := New(true)

	if c.Status() != StatusIdle {
		t.Errorf("Status() = %v, want idle", c.Status())
	}
	if !c.SortByLength() {
		t.Error("SortByLength() should be true")
	}
	if c.Loading() || c.Submitted() || c.Error() || c.Failed() {
		t.Error("new controller should have no flags set")
	}
	if c.Results() == nil || len(c.Results()) != 0 {
		t.Errorf("Results() = %v, want empty", c.Results())
	}
}

func TestUpdateInputCapsAt16(t *testing.T) {
	c := New(true)

	c.UpdateInput("abc1!")
	if c.Input() != "abc1!" {
		t.Errorf("Input() = %q, characters should not be validated", c.Input())
	}

	c.UpdateInput("ABCDEFGHIJKLMNOPQRSTUV")
	if c.Input() != "ABCDEFGHIJKLMNOP" {
		t.Errorf("Input() = %q, want 16-character cap", c.Input())
	}
}

func TestSubmitSuccess(t *testing.T) {
	c := New(true)
	solver := &fakeSolver{words: []string{"CAB", "BAD", "FACE"}}
	solver.ctrl = c

	c.UpdateInput("ABCDEFGHIJKLMNOP")
	req := c.Submit(context.Background(), solver)

	if len(solver.calls) != 1 {
		t.Fatalf("solver called %d times, want 1", len(solver.calls))
	}
	if solver.calls[0].Board != "ABCDEFGHIJKLMNOP" || !solver.calls[0].SortByLength {
		t.Errorf("solver call = %+v, want board ABCDEFGHIJKLMNOP sort true", solver.calls[0])
	}
	if !solver.seenLoading {
		t.Error("controller should be loading while the request is in flight")
	}

	if req.Seq != 1 {
		t.Errorf("Seq = %d, want 1", req.Seq)
	}
	if c.Loading() {
		t.Error("Loading() should be false after resolve")
	}
	if !c.Submitted() || c.Error() || c.Failed() {
		t.Errorf("flags: submitted=%v error=%v failed=%v, want true/false/false", c.Submitted(), c.Error(), c.Failed())
	}
	if !equalWords(c.Results(), []string{"CAB", "BAD", "FACE"}) {
		t.Errorf("Results() = %v", c.Results())
	}
	if c.PrevBoard() != "ABCDEFGHIJKLMNOP" {
		t.Errorf("PrevBoard() = %q, want submitted board", c.PrevBoard())
	}
	if c.Input() != "" {
		t.Errorf("Input() = %q, draft should be cleared", c.Input())
	}
}

func TestSubmitRejected(t *testing.T) {
	c := New(true)
	solver := &fakeSolver{err: solverapi.NewRejectedError()}
	solver.ctrl = c

	c.UpdateInput("ABCDEFGHIJKLMNOP")
	c.Submit(context.Background(), solver)

	if !solver.seenLoading {
		t.Error("controller should be loading while the request is in flight")
	}
	if c.Loading() {
		t.Error("Loading() should be false after rejection")
	}
	if !c.Error() || c.Submitted() {
		t.Errorf("flags: error=%v submitted=%v, want true/false", c.Error(), c.Submitted())
	}
	if len(c.Results()) != 0 {
		t.Errorf("Results() = %v, want empty", c.Results())
	}
	if c.Input() != "ABCDEFGHIJKLMNOP" {
		t.Errorf("Input() = %q, draft should be kept after rejection", c.Input())
	}
	if !c.Sections().ErrorBanner {
		t.Error("error banner should be shown")
	}
}

func TestSubmitRejectedAfterSuccessKeepsPrevBoard(t *testing.T) {
	c := New(true)

	c.UpdateInput("ABCDEFGHIJKLMNOP")
	c.Submit(context.Background(), &fakeSolver{words: []string{"CAB"}})

	c.UpdateInput("XYZ")
	c.Submit(context.Background(), &fakeSolver{err: solverapi.NewRejectedError()})

	if c.PrevBoard() != "ABCDEFGHIJKLMNOP" {
		t.Errorf("PrevBoard() = %q, rejection should not replace it", c.PrevBoard())
	}
	if len(c.Results()) != 0 {
		t.Errorf("Results() = %v, want empty after rejection", c.Results())
	}
}

func TestSubmitTransportFailure(t *testing.T) {
	c := New(false)
	c.UpdateInput("ABCDEFGHIJKLMNOP")
	c.Submit(context.Background(), &fakeSolver{err: solverapi.NewHTTPError(502, "bad gateway")})

	if c.Status() != StatusFailed {
		t.Fatalf("Status() = %v, want failed", c.Status())
	}
	if c.Loading() || c.Submitted() || c.Error() {
		t.Error("failure must be a terminal state distinct from loading, success and rejection")
	}

	sections := c.Sections()
	if !sections.FailureBanner || sections.ErrorBanner || sections.Spinner {
		t.Errorf("Sections() = %+v, want only failure banner", sections)
	}
	if msg := c.Snapshot().Message; msg != "Solver error (HTTP 502)" {
		t.Errorf("Snapshot().Message = %q", msg)
	}
}

func TestToggleSortAppliesToNextSubmissionOnly(t *testing.T) {
	c := New(true)
	solver := &fakeSolver{words: []string{"FACE", "CAB"}}

	c.UpdateInput("ABCDEFGHIJKLMNOP")
	c.Submit(context.Background(), solver)

	c.ToggleSort()
	if !equalWords(c.Results(), []string{"FACE", "CAB"}) {
		t.Errorf("toggling sort changed displayed results: %v", c.Results())
	}
	if len(solver.calls) != 1 {
		t.Errorf("toggling sort issued a request")
	}

	c.UpdateInput("ABCDEFGHIJKLMNOP")
	c.Submit(context.Background(), solver)
	if solver.calls[1].SortByLength {
		t.Error("second request should carry sort=false")
	}
}

func TestStaleResponsesAreDiscarded(t *testing.T) {
	c := New(true)

	c.UpdateInput("AAAAAAAAAAAAAAAA")
	first := c.Begin()

	c.UpdateInput("BBBBBBBBBBBBBBBB")
	second := c.Begin()

	if c.Resolve(first.Seq, []string{"OLD"}, nil) {
		t.Error("Resolve() of an older request should report false")
	}
	if !c.Loading() {
		t.Error("stale response should not end loading")
	}

	if !c.Resolve(second.Seq, []string{"NEW"}, nil) {
		t.Fatal("Resolve() of the latest request should apply")
	}
	if !equalWords(c.Results(), []string{"NEW"}) {
		t.Errorf("Results() = %v, want [NEW]", c.Results())
	}
	if c.PrevBoard() != "BBBBBBBBBBBBBBBB" {
		t.Errorf("PrevBoard() = %q, want second board", c.PrevBoard())
	}

	if c.Resolve(second.Seq, []string{"AGAIN"}, nil) {
		t.Error("Resolve() should not apply twice")
	}
}

func TestBeginClearsPreviousResults(t *testing.T) {
	c := New(true)
	c.UpdateInput("ABCDEFGHIJKLMNOP")
	c.Submit(context.Background(), &fakeSolver{words: []string{"CAB"}})

	c.UpdateInput("ABCDEFGHIJKLMNOP")
	c.Begin()

	if len(c.Results()) != 0 {
		t.Errorf("Results() = %v, want cleared on submit", c.Results())
	}
	if c.Submitted() {
		t.Error("Submitted() should be false while loading")
	}
	if !c.Sections().Spinner {
		t.Error("spinner should be shown while loading")
	}
}

func TestSections(t *testing.T) {
	c := New(true)

	s := c.Sections()
	if !s.Results || s.Spinner || s.ErrorBanner || s.BoardPreview {
		t.Errorf("idle Sections() = %+v", s)
	}

	c.UpdateInput("ABC")
	if !c.Sections().BoardPreview {
		t.Error("board preview should show for a non-empty draft in text mode")
	}

	c.SetInputMode(ModeGrid)
	if c.Sections().BoardPreview {
		t.Error("board preview should be hidden in grid mode")
	}
}

func TestGridEditing(t *testing.T) {
	c := New(true)
	c.SetInputMode(ModeGrid)

	c.SetCell(0, 'A')
	c.SetCell(3, 'D')
	if c.Input() != "A  D" {
		t.Errorf("Input() = %q, want %q", c.Input(), "A  D")
	}

	c.ClearCell(3)
	if c.Input() != "A" {
		t.Errorf("Input() = %q, want %q", c.Input(), "A")
	}

	c.ToggleInputMode()
	if c.Mode() != ModeText {
		t.Errorf("Mode() = %v, want text", c.Mode())
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	c := New(true)
	c.UpdateInput("ABCDEFGHIJKLMNOP")
	c.Submit(context.Background(), &fakeSolver{words: []string{"CAB"}})

	snap := c.Snapshot()
	snap.Results[0] = "XXX"

	if c.Results()[0] != "CAB" {
		t.Error("modifying a snapshot should not change the controller")
	}
	if snap.Status != "success" || !snap.Submitted || snap.PrevBoard != "ABCDEFGHIJKLMNOP" {
		t.Errorf("Snapshot() = %+v", snap)
	}
}

func TestSubmitAgainstHTTPSolver(t *testing.T) {
	tests := []struct {
		name         string
		sort         bool
		body         string
		wantQuery    string
		wantResults  []string
		wantStatus   Status
		wantPrev     string
	}{
		{
			name:        "word list",
			sort:        true,
			body:        `{"data":["CAB","BAD","FACE"]}`,
			wantQuery:   "board=ABCDEFGHIJKLMNOP&sort=true",
			wantResults: []string{"CAB", "BAD", "FACE"},
			wantStatus:  StatusSuccess,
			wantPrev:    "ABCDEFGHIJKLMNOP",
		},
		{
			name:        "sentinel",
			sort:        false,
			body:        `{"data":["Invalid board string"]}`,
			wantQuery:   "board=ABCDEFGHIJKLMNOP&sort=false",
			wantResults: []string{},
			wantStatus:  StatusRejected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var queries []string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				queries = append(queries, r.URL.RawQuery)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			c := New(tt.sort)
			c.UpdateInput("ABCDEFGHIJKLMNOP")
			c.Submit(context.Background(), solverapi.NewClient(server.URL))

			if len(queries) != 1 {
				t.Fatalf("got %d requests, want 1", len(queries))
			}
			if queries[0] != tt.wantQuery {
				t.Errorf("query = %s, want %s", queries[0], tt.wantQuery)
			}
			if c.Status() != tt.wantStatus {
				t.Errorf("Status() = %v, want %v", c.Status(), tt.wantStatus)
			}
			if !equalWords(c.Results(), tt.wantResults) {
				t.Errorf("Results() = %v, want %v", c.Results(), tt.wantResults)
			}
			if c.PrevBoard() != tt.wantPrev {
				t.Errorf("PrevBoard() = %q, want %q", c.PrevBoard(), tt.wantPrev)
			}
		})
	}
}

func TestResolveNilWordsBecomesEmpty(t *testing.T) {
	c := New(true)
	req := c.Begin()
	c.Resolve(req.Seq, nil, nil)

	if c.Results() == nil {
		t.Error("Results() should be an empty slice, not nil")
	}
}

func TestResolveWrappedRejection(t *testing.T) {
	c := New(true)
	req := c.Begin()
	c.Resolve(req.Seq, nil, errors.Join(errors.New("context"), solverapi.NewRejectedError()))

	if !c.Error() {
		t.Error("a wrapped rejection should still count as rejection")
	}
}
