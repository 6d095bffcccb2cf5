package web

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/muurk/wordhunt/internal/controller"
	"github.com/muurk/wordhunt/internal/logging"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period (must be less than pongWait)
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 4096
)

// Client event types
const (
	eventInput      = "input"
	eventToggleSort = "toggle_sort"
	eventSubmit     = "submit"
)

// event is a message from the page. Input events carry an increasing Seq
// that the page uses to match pushed states to its own keystrokes.
type event struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
	Seq  uint64 `json:"seq,omitempty"`
}

// stateMessage is pushed to the page after every change. Ack is the Seq of
// the last input event applied; the page only takes the draft from a state
// that acknowledges its latest keystroke.
type stateMessage struct {
	Type  string              `json:"type"`
	State controller.Snapshot `json:"state"`
	HTML  string              `json:"html"`
	Ack   uint64              `json:"ack"`
}

// outcome is a finished solve, posted back to the session loop
type outcome struct {
	seq   uint64
	words []string
	err   error
}

// session is one page's connection. Its run loop is the only goroutine that
// touches ctrl or writes to conn.
type session struct {
	server *Server
	conn   *websocket.Conn
	ctrl   *controller.Controller
	remote string
	ack    uint64

	events   chan event
	outcomes chan outcome
}

func newSession(s *Server, conn *websocket.Conn) *session {
	return &session{
		server:   s,
		conn:     conn,
		ctrl:     controller.New(s.config.SortByLength),
		remote:   conn.RemoteAddr().String(),
		events:   make(chan event),
		outcomes: make(chan outcome),
	}
}

// run serves the session until the page goes away or ctx ends
func (ss *session) run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	logging.LogConnection(ss.remote, "session_opened")
	defer func() {
		_ = ss.conn.Close()
		logging.LogConnection(ss.remote, "session_closed")
	}()

	go ss.readLoop(ctx)

	ping := time.NewTicker(pingPeriod)
	defer ping.Stop()

	if err := ss.push(); err != nil {
		return
	}

	for {
		select {
		case ev, ok := <-ss.events:
			if !ok {
				return
			}
			if !ss.apply(ctx, ev) {
				continue
			}
			if err := ss.push(); err != nil {
				return
			}

		case o := <-ss.outcomes:
			if !ss.ctrl.Resolve(o.seq, o.words, o.err) {
				logging.Debug("Dropped stale solve outcome",
					zap.String("remote_addr", ss.remote),
					zap.Uint64("seq", o.seq),
				)
				continue
			}
			if err := ss.push(); err != nil {
				return
			}

		case <-ping.C:
			_ = ss.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := ss.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-ctx.Done():
			_ = ss.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
				time.Now().Add(writeWait))
			return
		}
	}
}

// apply handles one page event and reports whether the state changed
func (ss *session) apply(ctx context.Context, ev event) bool {
	switch ev.Type {
	case eventInput:
		ss.ctrl.UpdateInput(ev.Text)
		ss.ack = ev.Seq
	case eventToggleSort:
		ss.ctrl.ToggleSort()
	case eventSubmit:
		ss.submit(ctx)
	default:
		logging.Warn("Unknown session event",
			zap.String("remote_addr", ss.remote),
			zap.String("type", ev.Type),
		)
		return false
	}
	return true
}

// submit starts a solve in the background. Its outcome re-enters the loop
// through ss.outcomes so the controller is never touched concurrently.
func (ss *session) submit(ctx context.Context) {
	req := ss.ctrl.Begin()
	go func() {
		words, err := ss.server.solver.Solve(ctx, req.Board, req.SortByLength)
		select {
		case ss.outcomes <- outcome{seq: req.Seq, words: words, err: err}:
		case <-ctx.Done():
		}
	}()
}

// push sends the current state to the page
func (ss *session) push() error {
	html, err := ss.server.renderDynamic(ss.ctrl)
	if err != nil {
		logging.Error("Failed to render session state", zap.Error(err))
		return err
	}

	msg := stateMessage{Type: "state", State: ss.ctrl.Snapshot(), HTML: html, Ack: ss.ack}
	_ = ss.conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := ss.conn.WriteJSON(msg); err != nil {
		logging.Info("Failed to write session state",
			zap.String("remote_addr", ss.remote),
			zap.Error(err),
		)
		return err
	}
	return nil
}

// readLoop decodes page events until the connection fails. It closes
// ss.events on exit, which ends run.
func (ss *session) readLoop(ctx context.Context) {
	defer close(ss.events)

	ss.conn.SetReadLimit(maxMessageSize)
	_ = ss.conn.SetReadDeadline(time.Now().Add(pongWait))
	ss.conn.SetPongHandler(func(string) error {
		return ss.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := ss.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logging.Info("Session read error",
					zap.String("remote_addr", ss.remote),
					zap.Error(err),
				)
			}
			return
		}

		var ev event
		if err := json.Unmarshal(data, &ev); err != nil {
			logging.Warn("Malformed session event",
				zap.String("remote_addr", ss.remote),
				zap.Error(err),
			)
			continue
		}

		select {
		case ss.events <- ev:
		case <-ctx.Done():
			return
		}
	}
}
