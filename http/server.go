// Package http serves the comparison form and a JSON compare endpoint.
package http

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"html/template"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/miraflynn/textcompare"
)

// DefaultAddr is the listen address used when none is configured.
const DefaultAddr = ":8080"

// maxBodySize bounds request bodies for both compare endpoints.
const maxBodySize = 1 << 20

// shutdownTimeout bounds the graceful shutdown after the context is done.
const shutdownTimeout = 5 * time.Second

//go:embed style.css
var stylesheet []byte

//go:embed index.html
var indexHTML string

var indexTemplate = template.Must(template.New("index").Parse(indexHTML))

// CompareRequest is the body accepted by POST /api/compare.
type CompareRequest struct {
	Text1 string `json:"text1"`
	Text2 string `json:"text2"`
}

// CompareResponse is the body returned by POST /api/compare.
type CompareResponse struct {
	Side1 string `json:"side1"`
	Side2 string `json:"side2"`
}

// pageData feeds the index template.
type pageData struct {
	Text1, Text2 string
	Side1, Side2 template.HTML
	Compared     bool
}

// Server serves comparisons over HTTP. Handlers share one Comparer and never
// persist results. The Comparer's renderer must escape segment text, since
// results are embedded into the page as markup.
type Server struct {
	Comparer *textcompare.Comparer
	Logger   *slog.Logger

	mux *http.ServeMux
}

// NewServer creates a Server around comparer. A nil logger discards output.
func NewServer(comparer *textcompare.Comparer, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Server{
		Comparer: comparer,
		Logger:   logger,
		mux:      http.NewServeMux(),
	}
	s.mux.HandleFunc("/", s.handleIndex)
	s.mux.HandleFunc("/style.css", s.handleStylesheet)
	s.mux.HandleFunc("/compare", s.handleCompareForm)
	s.mux.HandleFunc("/api/compare", s.handleCompareAPI)
	return s
}

// ServeHTTP implements http.Handler and logs every request.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

	s.mux.ServeHTTP(rec, r)

	s.Logger.Info("request",
		"method", r.Method,
		"path", r.URL.Path,
		"status", rec.status,
		"duration", time.Since(start))
}

// ListenAndServe serves on addr until ctx is done, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()
	s.Logger.Info("listening", "addr", ln.Addr().String())

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		methodNotAllowed(w, http.MethodGet, http.MethodHead)
		return
	}
	s.renderPage(w, pageData{})
}

func (s *Server) handleStylesheet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		methodNotAllowed(w, http.MethodGet, http.MethodHead)
		return
	}
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	_, _ = w.Write(stylesheet)
}

func (s *Server) handleCompareForm(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, http.MethodPost)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form: "+err.Error(), http.StatusBadRequest)
		return
	}

	text1, text2 := r.PostForm.Get("str1"), r.PostForm.Get("str2")
	result, err := s.Comparer.Compare(text1, text2, nil)
	if err != nil {
		s.Logger.Error("compare failed", "path", r.URL.Path, "error", err)
		http.Error(w, "comparison failed", http.StatusInternalServerError)
		return
	}

	s.renderPage(w, pageData{
		Text1:    text1,
		Text2:    text2,
		Side1:    template.HTML(result.Side1),
		Side2:    template.HTML(result.Side2),
		Compared: true,
	})
}

func (s *Server) handleCompareAPI(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, http.MethodPost)
		return
	}

	var req CompareRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	result, err := s.Comparer.Compare(req.Text1, req.Text2, nil)
	if err != nil {
		s.Logger.Error("compare failed", "path", r.URL.Path, "error", err)
		http.Error(w, "comparison failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(CompareResponse{Side1: result.Side1, Side2: result.Side2}); err != nil {
		s.Logger.Error("encode response", "error", err)
	}
}

func (s *Server) renderPage(w http.ResponseWriter, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, data); err != nil {
		s.Logger.Error("render page", "error", err)
	}
}

func methodNotAllowed(w http.ResponseWriter, allowed ...string) {
	for _, m := range allowed {
		w.Header().Add("Allow", m)
	}
	http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
}

// statusRecorder captures the response status for request logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
