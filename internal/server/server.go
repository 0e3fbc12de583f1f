// Package server implements the demo web service used as a deployment
// fixture. It has exactly three fixed routes and no validation logic.
package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/yuin/goldmark"
)

// Server is the fixture HTTP server.
type Server struct {
	router        chi.Router
	changelogPath string
	log           *slog.Logger
}

// New creates and configures the fixture server. The /changelog route
// renders the file at changelogPath as HTML.
func New(changelogPath string, log *slog.Logger) *Server {
	s := &Server{
		changelogPath: changelogPath,
		log:           log,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Get("/healthz", s.handleHealth)
	r.Get("/changelog", s.handleChangelog)

	s.router = r
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, "<html><body><h1>changelint</h1><p>Demo fixture. See <a href=%q>/changelog</a>.</p></body></html>\n", "/changelog")
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) handleChangelog(w http.ResponseWriter, r *http.Request) {
	src, err := os.ReadFile(s.changelogPath)
	if err != nil {
		s.log.Error("reading changelog", "path", s.changelogPath, "error", err)
		http.Error(w, "changelog not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, "<html><head><title>%s</title></head><body>\n", filepath.Base(s.changelogPath))
	if err := goldmark.Convert(src, w); err != nil {
		s.log.Error("rendering changelog", "error", err)
	}
	fmt.Fprint(w, "</body></html>\n")
}
