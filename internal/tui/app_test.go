package tui

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/wordhunt/internal/controller"
	"github.com/muurk/wordhunt/internal/solverapi"
)

type fakeSolver struct {
	mu    sync.Mutex
	calls []controller.Request
	words []string
	err   error
}

func (f *fakeSolver) Solve(_ context.Context, board string, sortByLength bool) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, controller.Request{Board: board, SortByLength: sortByLength})
	return f.words, f.err
}

func newTestModel(solver controller.Solver) Model {
	m := NewModel(context.Background(), controller.New(true), solver)
	m.Width = 100
	m.Height = 40
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm, cmd
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return m
}

func TestTypingUpdatesDraft(t *testing.T) {
	m := newTestModel(&fakeSolver{})
	m = typeText(t, m, "ABCDEFGHIJKLMNOPQRS")

	if got := m.Ctrl.Input(); got != "ABCDEFGHIJKLMNOP" {
		t.Errorf("draft = %q, want first 16 letters", got)
	}
	if !m.Ctrl.Sections().BoardPreview {
		t.Error("expected board preview while draft is non-empty")
	}
}

func TestSubmitSuccess(t *testing.T) {
	solver := &fakeSolver{words: []string{"FAKE", "JOKE"}}
	m := newTestModel(solver)
	m = typeText(t, m, "ABCDEFGHIJKLMNOP")

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command from submit")
	}
	if !m.Ctrl.Loading() {
		t.Fatal("expected loading after submit")
	}
	if !strings.Contains(m.buildContent(), "Solving...") {
		t.Error("expected spinner while loading")
	}

	msg := solveCmd(context.Background(), solver, controller.Request{Seq: m.Ctrl.Seq(), Board: "ABCDEFGHIJKLMNOP", SortByLength: true})()
	m, _ = update(t, m, msg)

	if !m.Ctrl.Submitted() {
		t.Fatalf("status = %v, want success", m.Ctrl.Status())
	}
	if m.Input.Value() != "" {
		t.Errorf("text field = %q, want cleared", m.Input.Value())
	}
	content := m.buildContent()
	for _, want := range []string{"2 words found on ABCDEFGHIJKLMNOP", "FAKE", "JOKE"} {
		if !strings.Contains(content, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSubmitRejected(t *testing.T) {
	m := newTestModel(&fakeSolver{})
	m = typeText(t, m, "XYZ")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, solveCompleteMsg{seq: m.Ctrl.Seq(), err: solverapi.NewRejectedError()})

	if !m.Ctrl.Error() {
		t.Fatalf("status = %v, want rejected", m.Ctrl.Status())
	}
	if m.Input.Value() != "XYZ" {
		t.Errorf("text field = %q, want draft kept", m.Input.Value())
	}
	if !strings.Contains(m.buildContent(), "Invalid Board submitted. Please try again.") {
		t.Error("expected rejection banner")
	}
}

func TestSubmitFailure(t *testing.T) {
	m := newTestModel(&fakeSolver{})
	m = typeText(t, m, "ABCDEFGHIJKLMNOP")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, solveCompleteMsg{seq: m.Ctrl.Seq(), err: solverapi.NewHTTPError(502, "bad gateway")})

	if !m.Ctrl.Failed() {
		t.Fatalf("status = %v, want failed", m.Ctrl.Status())
	}
	content := m.buildContent()
	if strings.Contains(content, "Invalid Board submitted") {
		t.Error("transport failure must not show the rejection banner")
	}
	if !strings.Contains(content, "HTTP 502") {
		t.Errorf("expected failure banner, got:\n%s", content)
	}
}

func TestStaleOutcomeIgnored(t *testing.T) {
	m := newTestModel(&fakeSolver{})
	m = typeText(t, m, "ABCDEFGHIJKLMNOP")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	first := m.Ctrl.Seq()
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m, _ = update(t, m, solveCompleteMsg{seq: first, words: []string{"OLD"}})
	if !m.Ctrl.Loading() {
		t.Fatal("stale outcome should not end loading")
	}

	m, _ = update(t, m, solveCompleteMsg{seq: m.Ctrl.Seq(), words: []string{"NEW"}})
	if got := m.Ctrl.Results(); len(got) != 1 || got[0] != "NEW" {
		t.Errorf("results = %v, want [NEW]", got)
	}
}

func TestToggleSort(t *testing.T) {
	m := newTestModel(&fakeSolver{})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if m.Ctrl.SortByLength() {
		t.Error("expected sort off after toggle")
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if !m.Ctrl.SortByLength() {
		t.Error("expected sort on after second toggle")
	}
}

func TestGridEditing(t *testing.T) {
	m := newTestModel(&fakeSolver{})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlG})
	if m.Ctrl.Mode() != controller.ModeGrid {
		t.Fatal("expected grid mode")
	}

	m = typeText(t, m, "ab")
	if got := m.Ctrl.Input(); got != "AB" {
		t.Errorf("draft = %q, want AB", got)
	}
	if m.Cursor != 2 {
		t.Errorf("cursor = %d, want 2", m.Cursor)
	}
	if m.Ctrl.Sections().BoardPreview {
		t.Error("board preview should be hidden in grid mode")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	if got := m.Ctrl.Input(); got != "A" {
		t.Errorf("draft after clear = %q, want A", got)
	}
	if m.Cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.Cursor)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.Cursor != 0 {
		t.Errorf("cursor moved off the grid: %d", m.Cursor)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlG})
	if m.Input.Value() != "A" {
		t.Errorf("text field = %q, want A", m.Input.Value())
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(&fakeSolver{})
	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestSolveCmdCarriesError(t *testing.T) {
	solver := &fakeSolver{err: errors.New("boom")}
	msg := solveCmd(context.Background(), solver, controller.Request{Seq: 7, Board: "ABC"})()

	done, ok := msg.(solveCompleteMsg)
	if !ok {
		t.Fatalf("msg = %T, want solveCompleteMsg", msg)
	}
	if done.seq != 7 || done.err == nil {
		t.Errorf("msg = %+v", done)
	}
	if len(solver.calls) != 1 || solver.calls[0].Board != "ABC" {
		t.Errorf("calls = %+v", solver.calls)
	}
}
