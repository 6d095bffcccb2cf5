package tui

import (
	"context"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/wordhunt/internal/board"
	"github.com/muurk/wordhunt/internal/controller"
	"github.com/muurk/wordhunt/internal/solverapi"
)

// solveCompleteMsg carries the outcome of one solve request back to Update
type solveCompleteMsg struct {
	seq   uint64
	words []string
	err   error
}

// Model is the Bubble Tea model for the solver screen
type Model struct {
	Ctrl   *controller.Controller
	Solver controller.Solver

	// Components
	Input   textinput.Model
	Spinner spinner.Model
	Help    help.Model
	Keys    keyMap

	// Cursor is the focused cell in grid input mode (0-15)
	Cursor int

	// UI state
	Width  int
	Height int

	ctx context.Context
}

// NewModel creates the solver screen around a controller
func NewModel(ctx context.Context, ctrl *controller.Controller, solver controller.Solver) Model {
	input := textinput.New()
	input.Placeholder = "ABCDEFGHIJKLMNOP"
	input.CharLimit = board.Cells
	input.Width = board.Cells + 1
	input.Prompt = "› "
	input.SetValue(ctrl.Input())
	input.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle

	keys := newKeyMap()
	keys.grid = ctrl.Mode() == controller.ModeGrid

	return Model{
		Ctrl:    ctrl,
		Solver:  solver,
		Input:   input,
		Spinner: s,
		Help:    help.New(),
		Keys:    keys,
		Width:   DefaultWidth,
		Height:  DefaultHeight,
		ctx:     ctx,
	}
}

// Init initializes the screen
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Help.Width = msg.Width
		return m, nil

	case solveCompleteMsg:
		if m.Ctrl.Resolve(msg.seq, msg.words, msg.err) {
			m.syncInput()
		}
		return m, nil

	case spinner.TickMsg:
		if !m.Ctrl.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.Keys.Submit):
		return m.submit()

	case key.Matches(msg, m.Keys.ToggleSort):
		m.Ctrl.ToggleSort()
		return m, nil

	case key.Matches(msg, m.Keys.ToggleMode):
		m.Ctrl.ToggleInputMode()
		m.Keys.grid = m.Ctrl.Mode() == controller.ModeGrid
		if m.Keys.grid {
			m.Input.Blur()
			m.Cursor = 0
		} else {
			m.Ctrl.UpdateInput(strings.TrimRight(m.Ctrl.Input(), " "))
			m.syncInput()
			m.Input.Focus()
		}
		return m, nil
	}

	if m.Ctrl.Mode() == controller.ModeGrid {
		return m.handleGridKey(msg)
	}

	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	m.Ctrl.UpdateInput(m.Input.Value())
	return m, cmd
}

// handleGridKey edits the draft one cell at a time
func (m Model) handleGridKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyLeft:
		m.moveCursor(-1)
	case tea.KeyRight:
		m.moveCursor(1)
	case tea.KeyUp:
		m.moveCursor(-board.Size)
	case tea.KeyDown:
		m.moveCursor(board.Size)
	case tea.KeyBackspace:
		m.Ctrl.ClearCell(m.Cursor)
		m.moveCursor(-1)
	case tea.KeyDelete:
		m.Ctrl.ClearCell(m.Cursor)
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if unicode.IsSpace(r) {
				continue
			}
			m.Ctrl.SetCell(m.Cursor, unicode.ToUpper(r))
			m.moveCursor(1)
		}
	}
	m.syncInput()
	return m, nil
}

func (m *Model) moveCursor(delta int) {
	next := m.Cursor + delta
	if next < 0 || next >= board.Cells {
		return
	}
	m.Cursor = next
}

// submit starts a request for the current draft. The UI stays responsive while
// it runs; a later submission supersedes this one.
func (m Model) submit() (tea.Model, tea.Cmd) {
	req := m.Ctrl.Begin()
	return m, tea.Batch(solveCmd(m.ctx, m.Solver, req), m.Spinner.Tick)
}

// solveCmd performs the request off the update loop
func solveCmd(ctx context.Context, solver controller.Solver, req controller.Request) tea.Cmd {
	return func() tea.Msg {
		words, err := solver.Solve(ctx, req.Board, req.SortByLength)
		return solveCompleteMsg{seq: req.Seq, words: words, err: err}
	}
}

// syncInput copies the controller draft into the text field
func (m *Model) syncInput() {
	if m.Input.Value() != m.Ctrl.Input() {
		m.Input.SetValue(m.Ctrl.Input())
		m.Input.CursorEnd()
	}
}

// View renders the screen
func (m Model) View() string {
	return RenderApplicationContainer(m.buildContent(), m.Help.View(m.Keys), m.Width, m.Height)
}

func (m Model) buildContent() string {
	var b strings.Builder
	sections := m.Ctrl.Sections()

	b.WriteString(TitleStyle.Render("Word Hunt Solver"))
	b.WriteString("\n")
	b.WriteString(SubtitleStyle.Render("Finds the words that can be made from a 4x4 grid of letters."))
	b.WriteString("\n\n")

	b.WriteString(m.renderForm())
	b.WriteString("\n\n")

	if sections.BoardPreview {
		b.WriteString(board.Render(board.Board(m.Ctrl.Input()), board.RenderOptions{Big: true, Cursor: -1}))
		b.WriteString("\n\n")
	}

	if sections.ErrorBanner {
		b.WriteString(ErrorBoxStyle.Render("Invalid Board submitted. Please try again."))
		b.WriteString("\n\n")
	}

	if sections.FailureBanner {
		b.WriteString(WarningBoxStyle.Render(m.failureText()))
		b.WriteString("\n\n")
	}

	if sections.Results {
		if results := RenderResults(m.Ctrl.Results(), m.Ctrl.Submitted(), m.Ctrl.PrevBoard(), m.Width-8); results != "" {
			b.WriteString(results)
			b.WriteString("\n")
		}
	}

	if sections.Spinner {
		b.WriteString(m.Spinner.View())
		b.WriteString(" Solving...")
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) renderForm() string {
	var input string
	if m.Ctrl.Mode() == controller.ModeGrid {
		input = lipgloss.JoinVertical(lipgloss.Left,
			LabelStyle.Render("Enter your board below:"),
			board.Render(board.Board(m.Ctrl.Input()), board.RenderOptions{Big: true, Cursor: m.Cursor}),
		)
	} else {
		input = lipgloss.JoinVertical(lipgloss.Left,
			LabelStyle.Render("Enter your board as a string of 16 non-separated letters:"),
			m.Input.View(),
		)
	}

	toggle := lipgloss.JoinHorizontal(lipgloss.Center,
		LabelStyle.Render("Sort results by length: "),
		RenderToggle(m.Ctrl.SortByLength()),
	)

	return lipgloss.JoinVertical(lipgloss.Left, input, "", toggle)
}

func (m Model) failureText() string {
	err := m.Ctrl.Err()
	if err == nil {
		return "Request failed."
	}
	return solverapi.ShortMessage(err) + "\n\n" + solverapi.TroubleshootingHint(err)
}
