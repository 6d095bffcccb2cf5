package web

import (
	"bytes"
	"net/http"

	"go.uber.org/zap"

	"github.com/muurk/wordhunt/internal/controller"
	"github.com/muurk/wordhunt/internal/logging"
	"github.com/muurk/wordhunt/internal/solverapi"
	"github.com/muurk/wordhunt/internal/urls"
	"github.com/muurk/wordhunt/internal/version"
)

// boardView is one rendered grid
type boardView struct {
	Class   string
	Letters string
}

// pageView is what the templates render
type pageView struct {
	State    controller.Snapshot
	Hint     string
	Preview  boardView
	Solved   boardView
	Endpoint string
	Version  string

	BackendSource  string
	FrontendSource string
	Project        string
}

func (s *Server) newView(ctrl *controller.Controller) pageView {
	state := ctrl.Snapshot()
	v := pageView{
		State:    state,
		Preview:  boardView{Class: "big", Letters: state.Input},
		Solved:   boardView{Class: "small", Letters: state.PrevBoard},
		Endpoint: s.config.Endpoint,
		Version:  version.Version,

		BackendSource:  urls.SolverBackendSource,
		FrontendSource: urls.SolverFrontendSource,
		Project:        urls.ProjectRepository,
	}
	if ctrl.Failed() {
		v.Hint = solverapi.TroubleshootingHint(ctrl.Err())
	}
	return v
}

// renderDynamic renders the part of the page that changes with the session
func (s *Server) renderDynamic(ctrl *controller.Controller) (string, error) {
	var buf bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&buf, "dynamic", s.newView(ctrl)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// handleIndex renders the page. A board query parameter submits it
// synchronously, which is how the form works without JavaScript.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	ctrl := controller.New(s.config.SortByLength)
	if q.Has("board") {
		ctrl.SetSort(parseCheckbox(q.Get("sort")))
		ctrl.UpdateInput(q.Get("board"))
		ctrl.Submit(r.Context(), s.solver)
	}

	var buf bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&buf, "index.tmpl", s.newView(ctrl)); err != nil {
		logging.Error("Failed to render page", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

// parseCheckbox reads an HTML checkbox value; browsers omit unchecked boxes
func parseCheckbox(v string) bool {
	switch v {
	case "on", "true", "1":
		return true
	}
	return false
}
