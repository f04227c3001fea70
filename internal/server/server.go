// Package server provides the web front end: a small form for submitting
// an article URL and a convert endpoint that runs the full extraction,
// analysis, and composition pipeline.
package server

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/pagefold/pagefold"
	"github.com/pagefold/pagefold/extract"
	"github.com/pagefold/pagefold/internal/config"
	"github.com/pagefold/pagefold/render"
	"github.com/pagefold/pagefold/types"
)

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>Pagefold</title></head>
<body>
<h1>Pagefold</h1>
<p>Convert an article into a print-ready editorial layout.</p>
<form method="post" action="/convert">
<p><label>Article URL <input type="url" name="url" size="60" required></label></p>
<p><label>Style
<select name="style">
<option value="magazine"{{if eq .Style "magazine"}} selected{{end}}>Magazine</option>
<option value="minimal"{{if eq .Style "minimal"}} selected{{end}}>Minimal</option>
</select></label></p>
<p><label>Pull quotes <input type="number" name="quotes" min="0" max="10" value="{{.PullQuotes}}"></label></p>
<p><label><input type="checkbox" name="images" checked> Include images</label></p>
<p><button type="submit">Convert</button></p>
</form>
</body>
</html>
`))

// Server handles the pagefold web interface.
type Server struct {
	cfg    config.Config
	logger *slog.Logger
}

// New creates a Server with the given defaults.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return &Server{cfg: cfg, logger: logger}
}

// Handler returns the routed handler wrapped in logging and panic
// recovery middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /convert", s.handleConvert)
	return Chain(s.logger)(mux)
}

// ListenAndServe runs the server until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	s.logger.Info("web interface listening", "addr", addr)
	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, s.cfg); err != nil {
		s.logger.Error("rendering index", "error", err)
	}
}

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	articleURL := r.PostFormValue("url")
	if articleURL == "" {
		http.Error(w, "missing article URL", http.StatusBadRequest)
		return
	}

	options := s.cfg.LayoutOptions()
	if style := r.PostFormValue("style"); style != "" {
		options.Style = types.Style(style)
	}
	if err := options.Normalize(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	options.IncludeImages = r.PostFormValue("images") != ""

	quotes := s.cfg.PullQuotes
	if value := r.PostFormValue("quotes"); value != "" {
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			http.Error(w, "invalid pull quote count", http.StatusBadRequest)
			return
		}
		quotes = n
	}
	options.IncludePullQuotes = quotes > 0

	page, err := s.convert(r.Context(), articleURL, quotes, options)
	if err != nil {
		s.logger.Error("conversion failed", "url", articleURL, "error", err)
		http.Error(w, fmt.Sprintf("conversion failed: %v", err), http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write([]byte(page)); err != nil {
		s.logger.Error("writing response", "error", err)
	}
}

func (s *Server) convert(ctx context.Context, articleURL string, quotes int, options types.LayoutOptions) (string, error) {
	extractor := extract.New(
		extract.WithTimeout(s.cfg.Timeout()),
		extract.WithImages(options.IncludeImages),
		extract.WithLogger(s.logger),
	)

	content, err := extractor.ExtractFromURL(ctx, articleURL)
	if err != nil {
		return "", err
	}
	analyzed, err := pagefold.Analyze(content, quotes)
	if err != nil {
		return "", err
	}
	doc, err := pagefold.Compose(analyzed, options)
	if err != nil {
		return "", err
	}
	return render.Render(analyzed, doc)
}
