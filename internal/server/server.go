// Package server serves the rendered analysis report over HTTP for
// local viewing.
package server

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

//go:embed templates/report.html
var templateFS embed.FS

// The report is table-heavy, so pipe tables need GFM.
var md = goldmark.New(goldmark.WithExtensions(extension.GFM))

// Server renders a single markdown report as HTML.
type Server struct {
	page *template.Template
	body template.HTML
	mux  *http.ServeMux
	log  zerolog.Logger
}

// New creates a server for the given markdown report.
func New(markdown string, logger zerolog.Logger) (*Server, error) {
	page, err := template.ParseFS(templateFS, "templates/report.html")
	if err != nil {
		return nil, fmt.Errorf("parsing report template: %w", err)
	}

	s := &Server{
		page: page,
		body: renderMarkdown(markdown),
		mux:  http.NewServeMux(),
		log:  logger,
	}
	s.mux.HandleFunc("/", s.handleReport)
	return s, nil
}

// Handler returns the HTTP handler for the server.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.page.Execute(w, map[string]any{"Body": s.body}); err != nil {
		s.log.Error().Err(err).Msg("rendering report page")
	}
}

func renderMarkdown(text string) template.HTML {
	var buf bytes.Buffer
	if err := md.Convert([]byte(text), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(text))
	}
	return template.HTML(buf.String()) //nolint: gosec
}

// Serve starts the HTTP server on the given port.
func Serve(markdown string, port int, logger zerolog.Logger) error {
	srv, err := New(markdown, logger)
	if err != nil {
		return err
	}

	addr := fmt.Sprintf("127.0.0.1:%d", port)
	logger.Info().Str("addr", "http://"+addr).Msg("report server listening")
	return http.ListenAndServe(addr, srv.Handler())
}
