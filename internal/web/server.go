package web

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/muurk/wordhunt/internal/controller"
	"github.com/muurk/wordhunt/internal/discovery"
	"github.com/muurk/wordhunt/internal/logging"
	"github.com/muurk/wordhunt/internal/version"
)

// DefaultShutdownTimeout bounds how long Start waits for sessions to close
const DefaultShutdownTimeout = 10 * time.Second

// Config holds web server configuration
type Config struct {
	Addr string

	// Advertise registers the server over mDNS as InstanceName
	Advertise    bool
	InstanceName string

	// SortByLength is the toggle state of a fresh page
	SortByLength bool

	// Endpoint is shown on the page; requests go through the Solver
	Endpoint string

	ShutdownTimeout time.Duration
}

// Server is the browser front end. Every page holds its own controller over
// a websocket, so state never leaks between visitors.
type Server struct {
	config   Config
	solver   controller.Solver
	tmpl     *template.Template
	upgrader websocket.Upgrader

	httpServer *http.Server

	// ctx is cancelled on shutdown and ends every session
	ctx    context.Context
	cancel context.CancelFunc

	mu       sync.Mutex
	sessions map[*session]struct{}
	wg       sync.WaitGroup
}

// New creates a new web server
func New(config Config, solver controller.Solver) *Server {
	if config.ShutdownTimeout == 0 {
		config.ShutdownTimeout = DefaultShutdownTimeout
	}
	if config.InstanceName == "" {
		host, _ := os.Hostname()
		config.InstanceName = "wordhunt on " + host
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		config: config,
		solver: solver,
		tmpl:   Templates(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
		ctx:      ctx,
		cancel:   cancel,
		sessions: make(map[*session]struct{}),
	}
}

// Handler returns the HTTP handler with all routes and request logging
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(StaticFS())))
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /ws", s.handleSession)
	mux.HandleFunc("GET /{$}", s.handleIndex)
	return requestLogger(mux)
}

// handleSession upgrades the request and serves the page session until it ends
func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written an error response
		logging.Warn("WebSocket upgrade failed",
			zap.String("remote_addr", r.RemoteAddr),
			zap.Error(err),
		)
		return
	}

	ss := newSession(s, conn)

	s.mu.Lock()
	if s.ctx.Err() != nil {
		s.mu.Unlock()
		_ = conn.Close()
		return
	}
	s.sessions[ss] = struct{}{}
	s.wg.Add(1)
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.sessions, ss)
		s.mu.Unlock()
		s.wg.Done()
	}()

	ss.run(s.ctx)
}

// ActiveSessions returns the number of open page sessions
func (s *Server) ActiveSessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Start listens on the configured address and serves until ctx is done, an
// interrupt or SIGTERM arrives, or serving fails.
func (s *Server) Start(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.config.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.config.Addr, err)
	}
	return s.Serve(ctx, listener)
}

// Serve is Start on an existing listener
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	s.httpServer = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	logging.Info("Web server listening",
		zap.String("addr", listener.Addr().String()),
		zap.String("endpoint", s.config.Endpoint),
	)

	if s.config.Advertise {
		ad, err := discovery.Advertise(s.config.InstanceName, discovery.ListenPort(listener.Addr()), version.Version)
		if err != nil {
			logging.Warn("mDNS advertisement failed, continuing without it", zap.Error(err))
		}
		defer ad.Shutdown()
	}

	// Set up signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	errChan := make(chan error, 1)
	go func() {
		errChan <- s.httpServer.Serve(listener)
	}()

	select {
	case <-sigChan:
		logging.Info("Shutdown signal received, stopping server...")
	case <-ctx.Done():
	case err := <-errChan:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()
	return s.Shutdown(shutdownCtx)
}

// Shutdown stops accepting requests, ends every session, and waits for them
// to finish or for ctx to expire.
func (s *Server) Shutdown(ctx context.Context) error {
	logging.Info("Shutting down web server...", zap.Int("sessions", s.ActiveSessions()))

	s.mu.Lock()
	s.cancel()
	s.mu.Unlock()

	var err error
	if s.httpServer != nil {
		err = s.httpServer.Shutdown(ctx)
	}

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		logging.Info("All sessions closed gracefully")
	case <-ctx.Done():
		logging.Warn("Shutdown timeout, closing remaining sessions")
		s.mu.Lock()
		for ss := range s.sessions {
			_ = ss.conn.Close()
		}
		s.mu.Unlock()
	}

	logging.Sync()
	return err
}
