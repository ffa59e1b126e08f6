// Package server implements the gridframe dev server: a small HTTP surface
// that serves the generated stylesheet and per-region resolution results
// for a theme, re-reading a hot-swappable theme on every request so a file
// watcher can push updates without restarting.
package server

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/gridframe/pkg/breakpoint"
	"github.com/matzehuels/gridframe/pkg/buildinfo"
	"github.com/matzehuels/gridframe/pkg/errors"
	"github.com/matzehuels/gridframe/pkg/render/css"
	"github.com/matzehuels/gridframe/pkg/theme"
)

// Server serves a theme's resolved layout over HTTP. The theme can be
// swapped at runtime (serve --watch); requests always see a complete theme,
// never a partially reloaded one.
type Server struct {
	mu     sync.RWMutex
	theme  *theme.Theme
	logger *log.Logger
}

// New creates a Server for the given theme. A nil logger falls back to
// log.Default().
func New(th *theme.Theme, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{theme: th, logger: logger}
}

// SetTheme atomically replaces the served theme.
func (s *Server) SetTheme(th *theme.Theme) {
	s.mu.Lock()
	s.theme = th
	s.mu.Unlock()
}

// Theme returns the currently served theme.
func (s *Server) Theme() *theme.Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

// Handler builds the HTTP handler with all routes registered.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Get("/stylesheet.css", s.handleStylesheet)
	r.Get("/theme", s.handleTheme)
	r.Get("/regions/{name}", s.handleRegion)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"app":     "gridframe",
		"version": buildinfo.Version,
	})
}

func (s *Server) handleStylesheet(w http.ResponseWriter, r *http.Request) {
	sheet, err := css.RenderStylesheet(s.Theme())
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Write([]byte(sheet))
}

// handleTheme reports the theme's shape: breakpoint scale and region names.
func (s *Server) handleTheme(w http.ResponseWriter, r *http.Request) {
	th := s.Theme()

	type bpInfo struct {
		Name     string `json:"name"`
		MinWidth int    `json:"min_width"`
	}
	breakpoints := make([]bpInfo, len(th.Breakpoints))
	for i, def := range th.Breakpoints {
		breakpoints[i] = bpInfo{Name: def.Name, MinWidth: def.MinWidth}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"layout_max":  th.LayoutMax,
		"breakpoints": breakpoints,
		"regions":     th.RegionNames(),
	})
}

// handleRegion resolves one region at the breakpoint given by the
// ?breakpoint= query parameter (default: the smallest breakpoint).
func (s *Server) handleRegion(w http.ResponseWriter, r *http.Request) {
	th := s.Theme()
	name := chi.URLParam(r, "name")

	bp := breakpoint.Breakpoint(r.URL.Query().Get("breakpoint"))
	if bp == "" {
		bp = th.Order()[0]
	}

	res, err := th.ResolveRegion(name, bp)
	if err != nil {
		s.writeError(w, err)
		return
	}

	data, err := css.RenderJSON(name, bp, res)
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

// writeError maps structured error codes onto HTTP statuses: unknown
// names are 404, configuration and resolution problems are 400, anything
// else is a 500.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidRegion, errors.ErrCodeFileNotFound:
		status = http.StatusNotFound
	case errors.ErrCodeInvalidBreakpoint, errors.ErrCodeInvalidConfig,
		errors.ErrCodeInvalidFormat, errors.ErrCodeLineNotFound,
		errors.ErrCodeUnresolvedGap, errors.ErrCodeUnresolvedColumns:
		status = http.StatusBadRequest
	}
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err)
	}
	writeJSON(w, status, map[string]string{
		"error": errors.UserMessage(err),
		"code":  string(errors.GetCode(err)),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
